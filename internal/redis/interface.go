package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the quest server depends on. Keeping it
// an interface lets tests swap in redismock clients.
type Client interface {
	redis.Cmdable
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
	Close() error
}

// Nil is returned by Get style commands when the key does not exist
const Nil = redis.Nil
