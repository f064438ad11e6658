package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-quest/internal/redis"
)

const (
	snapshotKeyFormat = "quest:%s:snapshot"
	channelFormat     = "quest:%s:events"
)

// SnapshotKey is where the latest snapshot of a session is stored
func SnapshotKey(sessionID string) string {
	return fmt.Sprintf(snapshotKeyFormat, sessionID)
}

// Channel is the pub/sub channel of a session
func Channel(sessionID string) string {
	return fmt.Sprintf(channelFormat, sessionID)
}

// RedisConfig holds the dependencies for a RedisPublisher
type RedisConfig struct {
	Client    redis.Client
	SessionID string
	Clock     clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	errors.ValidateRequired("SessionID", c.SessionID, vb)

	return vb.Build()
}

// RedisPublisher stores snapshots in Redis and fans events out over the
// session channel. Deferred events are flushed right after the next snapshot.
type RedisPublisher struct {
	client    redis.Client
	sessionID string
	clock     clock.Clock

	mu       sync.Mutex
	deferred []*Message
}

// NewRedisPublisher creates a publisher for one session
func NewRedisPublisher(cfg *RedisConfig) (*RedisPublisher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis publisher config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &RedisPublisher{
		client:    cfg.Client,
		sessionID: cfg.SessionID,
		clock:     clk,
	}, nil
}

// Broadcast publishes an event now, or queues it for the next snapshot
func (p *RedisPublisher) Broadcast(ctx context.Context, event string, payload any, opts Options) error {
	msg, err := p.eventMessage(event, payload)
	if err != nil {
		return err
	}

	if opts.AfterNextSnapshot {
		p.mu.Lock()
		p.deferred = append(p.deferred, msg)
		p.mu.Unlock()
		return nil
	}

	return p.publish(ctx, msg)
}

// SendChat broadcasts a server-chat event immediately
func (p *RedisPublisher) SendChat(ctx context.Context, chat ServerChat) error {
	return p.Broadcast(ctx, EventServerChat, chat, Options{})
}

// PublishSnapshot stores and publishes snapshot, then flushes deferred events
// in the order they were queued. If storing fails the deferred events stay
// queued for the next attempt.
func (p *RedisPublisher) PublishSnapshot(ctx context.Context, snapshot *entities.Snapshot) error {
	if snapshot == nil {
		return errors.InvalidArgument("snapshot is required")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot")
	}

	if err := p.client.Set(ctx, SnapshotKey(p.sessionID), string(data), 0).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store snapshot").
			WithMeta("session_id", p.sessionID)
	}

	if err := p.publish(ctx, &Message{
		Kind:    KindSnapshot,
		Version: snapshot.Version,
		Payload: data,
		SentAt:  p.clock.Now(),
	}); err != nil {
		return err
	}

	p.mu.Lock()
	pending := p.deferred
	p.deferred = nil
	p.mu.Unlock()

	for i, msg := range pending {
		if err := p.publish(ctx, msg); err != nil {
			slog.Error("failed to flush deferred event",
				"session_id", p.sessionID,
				"event", msg.Event,
				"dropped", len(pending)-i-1,
				"error", err)
			return err
		}
	}

	return nil
}

// Pending returns how many events wait for the next snapshot
func (p *RedisPublisher) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.deferred)
}

// LatestSnapshot reads the last stored snapshot of the session
func (p *RedisPublisher) LatestSnapshot(ctx context.Context) (*entities.Snapshot, error) {
	data, err := p.client.Get(ctx, SnapshotKey(p.sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errors.NotFoundf("no snapshot for session %s", p.sessionID)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load snapshot")
	}

	var snapshot entities.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to decode snapshot")
	}
	return &snapshot, nil
}

func (p *RedisPublisher) eventMessage(event string, payload any) (*Message, error) {
	if event == "" {
		return nil, errors.InvalidArgument("event name is required")
	}

	msg := &Message{Kind: KindEvent, Event: event, SentAt: p.clock.Now()}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal %s payload", event)
		}
		msg.Payload = data
	}
	return msg, nil
}

func (p *RedisPublisher) publish(ctx context.Context, msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal message")
	}

	if err := p.client.Publish(ctx, Channel(p.sessionID), string(data)).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to publish message").
			WithMeta("session_id", p.sessionID).
			WithMeta("kind", msg.Kind)
	}
	return nil
}
