// Package broadcast delivers quest events, server chat and state snapshots to
// connected clients.
package broadcast

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
)

//go:generate mockgen -destination=mock/mock_broadcast.go -package=broadcastmock github.com/KirkDiggler/rpg-quest/internal/broadcast Broadcaster,ChatSink,Replicator

// Event names sent to clients
const (
	EventQuestStart   = "quest-start"
	EventQuestAdvance = "quest-advance"
	EventServerChat   = "server-chat"
	EventEnemyAction  = "enemy-action"
	EventPlayerAction = "player-action"
	EventRoomCleared  = "room-cleared"
)

// Message kinds on the session channel
const (
	KindEvent    = "event"
	KindSnapshot = "snapshot"
)

// Options tune a single broadcast
type Options struct {
	// AfterNextSnapshot holds the event until the next snapshot has been
	// published, so clients see the state the event refers to first.
	AfterNextSnapshot bool
}

// ServerChat is a message from the server to every client's chat
type ServerChat struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// Broadcaster sends named events to every client of the session
type Broadcaster interface {
	Broadcast(ctx context.Context, event string, payload any, opts Options) error
}

// ChatSink posts server chat messages
type ChatSink interface {
	SendChat(ctx context.Context, chat ServerChat) error
}

// Replicator publishes the authoritative state
type Replicator interface {
	PublishSnapshot(ctx context.Context, snapshot *entities.Snapshot) error
}

// Message is the envelope written to the session channel
type Message struct {
	Kind    string          `json:"kind"`
	Event   string          `json:"event,omitempty"`
	Version uint64          `json:"version,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	SentAt  time.Time       `json:"sent_at"`
}
