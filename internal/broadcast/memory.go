package broadcast

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
)

// Memory keeps the session channel in process. It backs single-node runs
// without Redis and lets tests inspect what clients would have received.
type Memory struct {
	clock     clock.Clock
	retention int

	mu       sync.Mutex
	log      []*Message
	deferred []*Message
	latest   *entities.Snapshot
}

// MemoryOption configures a Memory publisher
type MemoryOption func(*Memory)

// WithRetention keeps only the newest n delivered messages. Long-running
// servers without Redis use it to bound memory; 0 keeps everything.
func WithRetention(n int) MemoryOption {
	return func(m *Memory) {
		m.retention = n
	}
}

// NewMemory creates an in-process publisher
func NewMemory(clk clock.Clock, opts ...MemoryOption) *Memory {
	if clk == nil {
		clk = clock.New()
	}
	m := &Memory{clock: clk}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Broadcast records an event now, or queues it for the next snapshot
func (m *Memory) Broadcast(_ context.Context, event string, payload any, opts Options) error {
	if event == "" {
		return errors.InvalidArgument("event name is required")
	}

	msg := &Message{Kind: KindEvent, Event: event, SentAt: m.clock.Now()}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal %s payload", event)
		}
		msg.Payload = data
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if opts.AfterNextSnapshot {
		m.deferred = append(m.deferred, msg)
	} else {
		m.appendLocked(msg)
	}
	return nil
}

// SendChat records a server-chat event
func (m *Memory) SendChat(ctx context.Context, chat ServerChat) error {
	return m.Broadcast(ctx, EventServerChat, chat, Options{})
}

// PublishSnapshot records snapshot followed by the deferred events
func (m *Memory) PublishSnapshot(_ context.Context, snapshot *entities.Snapshot) error {
	if snapshot == nil {
		return errors.InvalidArgument("snapshot is required")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest = snapshot
	m.appendLocked(&Message{
		Kind:    KindSnapshot,
		Version: snapshot.Version,
		Payload: data,
		SentAt:  m.clock.Now(),
	})
	m.appendLocked(m.deferred...)
	m.deferred = nil
	return nil
}

func (m *Memory) appendLocked(msgs ...*Message) {
	m.log = append(m.log, msgs...)
	if m.retention > 0 && len(m.log) > m.retention {
		m.log = append([]*Message(nil), m.log[len(m.log)-m.retention:]...)
	}
}

// Messages returns everything delivered so far, oldest first
func (m *Memory) Messages() []*Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Message(nil), m.log...)
}

// Events returns the names of delivered events in order, with snapshots
// shown as "snapshot"
func (m *Memory) Events() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, len(m.log))
	for i, msg := range m.log {
		if msg.Kind == KindSnapshot {
			names[i] = KindSnapshot
			continue
		}
		names[i] = msg.Event
	}
	return names
}

// Chats returns the server chat messages delivered so far
func (m *Memory) Chats() []ServerChat {
	m.mu.Lock()
	defer m.mu.Unlock()

	var chats []ServerChat
	for _, msg := range m.log {
		if msg.Event != EventServerChat {
			continue
		}
		var chat ServerChat
		if err := json.Unmarshal(msg.Payload, &chat); err == nil {
			chats = append(chats, chat)
		}
	}
	return chats
}

// Latest returns the last published snapshot
func (m *Memory) Latest() *entities.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latest
}

// Reset forgets everything recorded
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = nil
	m.deferred = nil
	m.latest = nil
}
