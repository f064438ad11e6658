// Package config loads server settings from the environment
package config

import (
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/redis"
)

// Config holds everything the quest server reads at startup
type Config struct {
	GRPCPort        int           `env:"QUEST_GRPC_PORT"         envDefault:"50051"`
	SessionID       string        `env:"QUEST_SESSION_ID"        envDefault:"lobby"`
	EnemyTurnDelay  time.Duration `env:"QUEST_ENEMY_TURN_DELAY"  envDefault:"1500ms"`
	ShutdownTimeout time.Duration `env:"QUEST_SHUTDOWN_TIMEOUT"  envDefault:"30s"`
	// CatalogPath points at a quest catalog YAML; empty uses the built-in one
	CatalogPath string `env:"QUEST_CATALOG_PATH"`
	// Seed makes room generation and combat reproducible; 0 seeds from the clock
	Seed     int64  `env:"QUEST_SEED"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Redis RedisConfig `envPrefix:"REDIS_"`
}

// RedisConfig selects the Redis backend. An empty Addr keeps everything in memory.
type RedisConfig struct {
	Addr        string        `env:"ADDR"`
	PoolSize    int           `env:"POOL_SIZE"    envDefault:"10"`
	MaxRetries  int           `env:"MAX_RETRIES"  envDefault:"3"`
	DialTimeout time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	UseTLS      bool          `env:"TLS"`
}

// Enabled reports whether a Redis address was configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// Options converts the settings for redis.NewClient
func (r RedisConfig) Options() *redis.Options {
	return &redis.Options{
		PoolSize:    r.PoolSize,
		MaxRetries:  r.MaxRetries,
		DialTimeout: r.DialTimeout,
		UseTLS:      r.UseTLS,
	}
}

// Load reads the given .env files (".env" when none are named), then parses
// the environment. Variables already set win over file values and missing
// files are skipped.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to load %s", file)
		}
		slog.Debug("Loaded env file", "file", file)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	errors.ValidateRequired("SessionID", c.SessionID, vb)
	if c.EnemyTurnDelay < 0 {
		vb.Field("EnemyTurnDelay", "must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		vb.Field("ShutdownTimeout", "must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	return vb.Build()
}

// SlogLevel parses LogLevel (debug, info, warn, error)
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
