package clients

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-quest/internal/redis"
)

const (
	// Key pattern: quest:{session}:clients (sorted set scored by connection time)
	orderKeyFormat = "quest:%s:clients"
	// Key pattern: quest:{session}:client_data (hash of client id -> json)
	dataKeyFormat = "quest:%s:client_data"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client    redisclient.Client
	SessionID string
	Clock     clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	errors.ValidateRequired("SessionID", c.SessionID, vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client   redisclient.Client
	clock    clock.Clock
	orderKey string
	dataKey  string
}

// NewRedisRepository creates a client registry stored in Redis
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client:   cfg.Client,
		clock:    cfg.Clock,
		orderKey: fmt.Sprintf(orderKeyFormat, cfg.SessionID),
		dataKey:  fmt.Sprintf(dataKeyFormat, cfg.SessionID),
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Add registers a client. ZADD NX decides ownership so concurrent adds of
// the same id cannot both succeed.
func (r *redisRepository) Add(ctx context.Context, input *AddInput) (*AddOutput, error) {
	if input == nil || input.Client == nil {
		return nil, errors.InvalidArgument("client is required")
	}
	if input.Client.ID == "" {
		return nil, errors.InvalidArgument("client ID is required")
	}

	c := *input.Client
	if c.ConnectedAt.IsZero() {
		c.ConnectedAt = r.clock.Now()
	}

	data, err := json.Marshal(&c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal client")
	}

	added, err := r.client.ZAddNX(ctx, r.orderKey, redis.Z{
		Score:  float64(c.ConnectedAt.UnixNano()),
		Member: c.ID,
	}).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to register client")
	}
	if added == 0 {
		return nil, errors.AlreadyExistsf("client %s already connected", c.ID).
			WithMeta("client_id", c.ID)
	}

	if err := r.client.HSet(ctx, r.dataKey, c.ID, string(data)).Err(); err != nil {
		// undo the registration so a retry can succeed
		r.client.ZRem(ctx, r.orderKey, c.ID)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store client")
	}

	return &AddOutput{Client: &c}, nil
}

// Remove forgets a client
func (r *redisRepository) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil || input.ClientID == "" {
		return nil, errors.InvalidArgument("client ID is required")
	}

	var removed *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.ZRem(ctx, r.orderKey, input.ClientID)
		pipe.HDel(ctx, r.dataKey, input.ClientID)
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to remove client")
	}

	return &RemoveOutput{Removed: removed.Val() > 0}, nil
}

// Get retrieves a client by id
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ClientID == "" {
		return nil, errors.InvalidArgument("client ID is required")
	}

	data, err := r.client.HGet(ctx, r.dataKey, input.ClientID).Result()
	if err == redis.Nil {
		return nil, errors.NotFoundf("client %s not found", input.ClientID)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load client")
	}

	var c entities.Client
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal client %s", input.ClientID)
	}

	return &GetOutput{Client: &c}, nil
}

// List returns every client ordered by connection time. Clients connected in
// the same nanosecond are ordered by id.
func (r *redisRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	ids, err := r.client.ZRange(ctx, r.orderKey, 0, -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list clients")
	}
	if len(ids) == 0 {
		return &ListOutput{Clients: []*entities.Client{}}, nil
	}

	values, err := r.client.HMGet(ctx, r.dataKey, ids...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load clients")
	}

	clients := make([]*entities.Client, 0, len(ids))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// registered but data missing; skip rather than fail the listing
			continue
		}

		var c entities.Client
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal client %s", ids[i])
		}
		clients = append(clients, &c)
	}

	return &ListOutput{Clients: clients}, nil
}
