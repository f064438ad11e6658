package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/redis"
)

func TestNewClient_RequiresEndpoint(t *testing.T) {
	client, err := redis.NewClient("", nil)
	assert.Nil(t, client)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "quest:test", "ok", 0).Err())

	_, err = client.Get(ctx, "quest:missing").Result()
	assert.ErrorIs(t, err, redis.Nil)
}
