package broadcast_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-quest/internal/broadcast"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
)

func TestMemory_DeferredOrdering(t *testing.T) {
	ctx := context.Background()
	m := broadcast.NewMemory(nil)

	require.NoError(t, m.Broadcast(ctx, broadcast.EventQuestAdvance, nil, broadcast.Options{AfterNextSnapshot: true}))
	require.NoError(t, m.Broadcast(ctx, broadcast.EventEnemyAction, &entities.EnemyAction{EnemyID: "enemy_1"}, broadcast.Options{}))
	assert.Equal(t, []string{broadcast.EventEnemyAction}, m.Events())

	require.NoError(t, m.PublishSnapshot(ctx, &entities.Snapshot{Version: 3}))
	assert.Equal(t, []string{broadcast.EventEnemyAction, broadcast.KindSnapshot, broadcast.EventQuestAdvance}, m.Events())
	assert.Equal(t, uint64(3), m.Latest().Version)

	require.NoError(t, m.SendChat(ctx, broadcast.ServerChat{Tag: "game", Text: "over"}))
	assert.Equal(t, []broadcast.ServerChat{{Tag: "game", Text: "over"}}, m.Chats())

	m.Reset()
	assert.Empty(t, m.Messages())
	assert.Nil(t, m.Latest())
}

func TestMemory_Retention(t *testing.T) {
	ctx := context.Background()
	m := broadcast.NewMemory(nil, broadcast.WithRetention(2))

	require.NoError(t, m.Broadcast(ctx, broadcast.EventQuestStart, nil, broadcast.Options{AfterNextSnapshot: true}))
	require.NoError(t, m.Broadcast(ctx, broadcast.EventEnemyAction, nil, broadcast.Options{}))
	require.NoError(t, m.PublishSnapshot(ctx, &entities.Snapshot{Version: 1}))

	assert.Equal(t, []string{broadcast.KindSnapshot, broadcast.EventQuestStart}, m.Events())
}
