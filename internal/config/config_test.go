package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-quest/internal/config"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

// unsetForTest clears key for the duration of the test. t.Setenv records the
// original value so cleanup restores it even after godotenv writes the key.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"QUEST_GRPC_PORT", "QUEST_SESSION_ID", "QUEST_ENEMY_TURN_DELAY",
		"QUEST_CATALOG_PATH", "QUEST_SEED", "LOG_LEVEL", "REDIS_ADDR",
	} {
		unsetForTest(t, key)
	}

	cfg, err := config.Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, "lobby", cfg.SessionID)
	assert.Equal(t, 1500*time.Millisecond, cfg.EnemyTurnDelay)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.CatalogPath)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 10, cfg.Redis.PoolSize)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("QUEST_GRPC_PORT", "6000")
	t.Setenv("QUEST_SESSION_ID", "crypt")
	t.Setenv("QUEST_ENEMY_TURN_DELAY", "250ms")
	t.Setenv("QUEST_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TLS", "true")

	cfg, err := config.Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, "crypt", cfg.SessionID)
	assert.Equal(t, 250*time.Millisecond, cfg.EnemyTurnDelay)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Redis.Enabled())

	opts := cfg.Redis.Options()
	assert.True(t, opts.UseTLS)
	assert.Equal(t, 3, opts.MaxRetries)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_EnvFile(t *testing.T) {
	unsetForTest(t, "QUEST_SESSION_ID")
	t.Setenv("QUEST_GRPC_PORT", "7000")

	path := filepath.Join(t.TempDir(), "quest.env")
	require.NoError(t, os.WriteFile(path, []byte("QUEST_SESSION_ID=tavern\nQUEST_GRPC_PORT=1\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tavern", cfg.SessionID)
	assert.Equal(t, 7000, cfg.GRPCPort, "environment wins over the file")
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "QUEST_GRPC_PORT", value: "70000"},
		{name: "port not a number", key: "QUEST_GRPC_PORT", value: "abc"},
		{name: "negative delay", key: "QUEST_ENEMY_TURN_DELAY", value: "-1s"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "chatty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load(missingFile(t))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}
