package clients_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/clients"
	"github.com/KirkDiggler/rpg-quest/internal/testutils"
)

func TestRepairRedis(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)
	cfg := &clients.Config{
		Client:    client,
		SessionID: "lobby",
		Clock:     clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}

	repo, err := clients.NewRedisRepository(cfg)
	require.NoError(t, err)
	_, err = repo.Add(ctx, &clients.AddInput{Client: &entities.Client{ID: "alice"}})
	require.NoError(t, err)

	_, err = mr.ZAdd("quest:lobby:clients", 5, "ghost")
	require.NoError(t, err)
	_, err = mr.ZAdd("quest:lobby:clients", 6, "garbled")
	require.NoError(t, err)
	mr.HSet("quest:lobby:client_data", "stray", `{"id":"stray"}`)
	mr.HSet("quest:lobby:client_data", "garbled", `not json`)

	report, err := clients.RepairRedis(ctx, cfg, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost"}, report.Orphans)
	assert.Equal(t, []string{"stray"}, report.Strays)
	assert.Equal(t, []string{"garbled"}, report.Corrupted)
	assert.False(t, report.Fixed)

	members, err := mr.ZMembers("quest:lobby:clients")
	require.NoError(t, err)
	assert.Len(t, members, 3, "dry run leaves the registry alone")

	report, err = clients.RepairRedis(ctx, cfg, false)
	require.NoError(t, err)
	assert.True(t, report.Fixed)

	members, err = mr.ZMembers("quest:lobby:clients")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, members)
	fields, err := mr.HKeys("quest:lobby:client_data")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, fields)

	report, err = clients.RepairRedis(ctx, cfg, false)
	require.NoError(t, err)
	assert.True(t, report.Clean())
	assert.False(t, report.Fixed)
}

func TestSessionsWithRegistry(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)

	_, err := mr.ZAdd("quest:crypt:clients", 1, "alice")
	require.NoError(t, err)
	_, err = mr.ZAdd("quest:lobby:clients", 1, "bob")
	require.NoError(t, err)
	require.NoError(t, mr.Set("quest:lobby:snapshot", "{}"))

	sessions, err := clients.SessionsWithRegistry(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, []string{"crypt", "lobby"}, sessions)
}

func TestRepairRedis_InvalidConfig(t *testing.T) {
	_, err := clients.RepairRedis(context.Background(), nil, true)
	assert.Error(t, err)

	_, err = clients.RepairRedis(context.Background(), &clients.Config{}, true)
	assert.Error(t, err)
}
