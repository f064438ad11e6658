// Package quest implements the quest state machine for a game session: the
// party roster, room progression, battle turn rotation and advance votes.
package quest

//go:generate mockgen -destination=mock/mock_service.go -package=questmock github.com/KirkDiggler/rpg-quest/internal/orchestrators/quest Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-quest/internal/broadcast"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-quest/internal/quests"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/clients"
)

const (
	// DefaultEnemyTurnDelay is how long an enemy waits before acting
	DefaultEnemyTurnDelay = 1500 * time.Millisecond

	// ChatTagGame tags server chat about the game itself
	ChatTagGame = "game"

	partyWipeMessage = "All adventurers have died. The quest is over."
)

// Service defines the interface for quest operations
type Service interface {
	// Start begins the quest at the given catalog index with every connected client
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// JoinPlayer adds a client to the active quest
	JoinPlayer(ctx context.Context, input *JoinPlayerInput) (*JoinPlayerOutput, error)

	// LeavePlayer removes a client from the active quest
	LeavePlayer(ctx context.Context, input *LeavePlayerInput) (*LeavePlayerOutput, error)

	// VoteAdvance records a vote to move to the next room
	VoteAdvance(ctx context.Context, input *VoteAdvanceInput) (*VoteAdvanceOutput, error)

	// ReportDeath marks a player dead
	ReportDeath(ctx context.Context, input *ReportDeathInput) (*ReportDeathOutput, error)

	// EndTurn passes the caller's battle turn on
	EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error)

	// Attack strikes a foe during the caller's battle turn
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// Stop ends the quest and clears the party
	Stop(ctx context.Context, input *StopInput) (*StopOutput, error)

	// GetState returns the current snapshot
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Dispose cancels pending work; the service is unusable afterwards
	Dispose(ctx context.Context, input *DisposeInput) (*DisposeOutput, error)
}

// RoomGenerator builds the room a quest has at an index
type RoomGenerator interface {
	Generate(quest *quests.Quest, index int) (entities.Room, error)
}

// Config holds the dependencies for the quest orchestrator.
// EventBus handlers run while the session is locked and must not call back
// into the Service.
type Config struct {
	Catalog     *quests.Catalog
	Generator   RoomGenerator
	Clients     clients.Repository
	Broadcaster broadcast.Broadcaster
	Chat        broadcast.ChatSink
	Replicator  broadcast.Replicator
	EventBus    events.EventBus
	Clock       clock.Clock
	Roller      dice.Roller

	SessionID      string
	EnemyTurnDelay time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Clients == nil {
		vb.RequiredField("Clients")
	}
	if c.Broadcaster == nil {
		vb.RequiredField("Broadcaster")
	}
	if c.Chat == nil {
		vb.RequiredField("Chat")
	}
	if c.Replicator == nil {
		vb.RequiredField("Replicator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	errors.ValidateRequired("SessionID", c.SessionID, vb)
	if c.EnemyTurnDelay < 0 {
		vb.Field("EnemyTurnDelay", "must not be negative")
	}

	return vb.Build()
}

// state is the quest session. Inactive means name "", roomIndex -1, no
// room, no current turn and an empty roster.
type state struct {
	active      bool
	quest       *quests.Quest
	name        string
	roomIndex   int
	room        entities.Room
	roster      roster
	currentTurn *entities.Turn
}

func inactiveState() state {
	return state{roomIndex: -1}
}

type orchestrator struct {
	catalog     *quests.Catalog
	generator   RoomGenerator
	clients     clients.Repository
	broadcaster broadcast.Broadcaster
	chat        broadcast.ChatSink
	replicator  broadcast.Replicator
	bus         events.EventBus
	clock       clock.Clock
	roller      dice.Roller
	sessionID   string
	enemyDelay  time.Duration

	mu       sync.Mutex
	disposed bool
	version  uint64
	state    state

	// epoch changes on every start, stop and room change so enemy turns
	// scheduled for an older room never run
	epoch      uint64
	enemyTimer clock.Timer

	// notices raised while handling an operation, sent before its snapshot
	notices []broadcast.ServerChat
}

// NewOrchestrator creates a new quest orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	return newOrchestrator(cfg)
}

func newOrchestrator(cfg *Config) (*orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	delay := cfg.EnemyTurnDelay
	if delay == 0 {
		delay = DefaultEnemyTurnDelay
	}

	return &orchestrator{
		catalog:     cfg.Catalog,
		generator:   cfg.Generator,
		clients:     cfg.Clients,
		broadcaster: cfg.Broadcaster,
		chat:        cfg.Chat,
		replicator:  cfg.Replicator,
		bus:         cfg.EventBus,
		clock:       cfg.Clock,
		roller:      cfg.Roller,
		sessionID:   cfg.SessionID,
		enemyDelay:  delay,
		state:       inactiveState(),
	}, nil
}

// Start begins a quest. The roster and first room are built aside and only
// installed once both succeeded, so a failed start leaves the session
// inactive.
func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkUsableLocked(); err != nil {
		return nil, err
	}
	if o.state.active {
		return nil, errors.FailedPreconditionf("quest %s is already active", o.state.name).
			WithMeta("quest_name", o.state.name)
	}

	q, err := o.catalog.Quest(input.QuestIndex)
	if err != nil {
		return nil, err
	}

	listOutput, err := o.clients.List(ctx, &clients.ListInput{})
	if err != nil {
		slog.Error("Failed to list clients for quest start",
			"session_id", o.sessionID,
			"quest_name", q.Name,
			"error", err)
		return nil, errors.Wrap(err, "failed to list connected clients")
	}

	next := inactiveState()
	next.active = true
	next.quest = q
	next.name = q.Name
	for _, c := range listOutput.Clients {
		if next.roster.find(c.ID) != nil {
			continue
		}
		next.roster.add(entities.NewPlayer(c.ID, false, o.onPlayerDeath))
	}

	room, err := o.generator.Generate(q, 0)
	if err != nil {
		slog.Error("Failed to generate first room",
			"session_id", o.sessionID,
			"quest_name", q.Name,
			"error", err)
		return nil, errors.Wrapf(err, "failed to start quest %s", q.Name)
	}

	o.cancelEnemyTurnLocked()
	o.epoch++
	o.state = next

	o.broadcastLocked(ctx, broadcast.EventQuestStart, map[string]any{
		"name":        q.Name,
		"quest_index": input.QuestIndex,
	}, broadcast.Options{AfterNextSnapshot: true})

	o.installRoomLocked(ctx, 0, room)

	slog.Info("Quest started",
		"session_id", o.sessionID,
		"quest_name", q.Name,
		"player_count", len(next.roster.players),
		"room_type", room.Type())

	return &StartOutput{Snapshot: o.commitLocked(ctx)}, nil
}

// JoinPlayer adds a client to the active quest
func (o *orchestrator) JoinPlayer(ctx context.Context, input *JoinPlayerInput) (*JoinPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ClientID == "" {
		return nil, errors.InvalidArgument("client ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkUsableLocked(); err != nil {
		return nil, err
	}
	if !o.state.active {
		return nil, errors.FailedPrecondition("no active quest to join")
	}
	if o.state.roster.find(input.ClientID) != nil {
		return nil, errors.AlreadyExistsf("player %s already in quest", input.ClientID).
			WithMeta("client_id", input.ClientID)
	}

	dead := input.Dead || (input.AsDeadIfFighting && fighting(o.state.room))
	p := entities.NewPlayer(input.ClientID, dead, o.onPlayerDeath)
	o.state.roster.add(p)

	slog.Info("Player joined quest",
		"session_id", o.sessionID,
		"client_id", input.ClientID,
		"dead", dead)

	o.commitLocked(ctx)
	return &JoinPlayerOutput{Player: entities.NewPlayerSnapshot(p)}, nil
}

// fighting reports whether late joiners sit out the current room. A
// cleared battle room still counts until the party moves on.
func fighting(room entities.Room) bool {
	if room == nil {
		return false
	}
	t := room.Type()
	return t == entities.RoomTypeBattle || t == entities.RoomTypeBoss
}

// LeavePlayer removes a client from the quest. A player holding the turn
// passes it on first. The quest stops once no living player is left.
func (o *orchestrator) LeavePlayer(ctx context.Context, input *LeavePlayerInput) (*LeavePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ClientID == "" {
		return nil, errors.InvalidArgument("client ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkUsableLocked(); err != nil {
		return nil, err
	}

	p := o.state.roster.find(input.ClientID)
	if !o.state.active || p == nil {
		return &LeavePlayerOutput{}, nil
	}

	if o.holdsTurnLocked(p) {
		o.nextTurnLocked(ctx)
	}
	o.state.roster.remove(input.ClientID)

	out := &LeavePlayerOutput{Removed: true}
	if len(o.state.roster.alive()) == 0 {
		slog.Info("Last living player left, stopping quest",
			"session_id", o.sessionID,
			"quest_name", o.state.name,
			"remaining_players", len(o.state.roster.players))
		if !o.state.roster.empty() {
			// the dead who stay behind see the same ending as a wipe
			o.notices = append(o.notices, broadcast.ServerChat{Tag: ChatTagGame, Text: partyWipeMessage})
		}
		o.stopLocked()
		out.QuestStopped = true
	}

	o.commitLocked(ctx)
	return out, nil
}

// ReportDeath kills a player. The death callback handles a party wipe.
func (o *orchestrator) ReportDeath(ctx context.Context, input *ReportDeathInput) (*ReportDeathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ClientID == "" {
		return nil, errors.InvalidArgument("client ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.playerLocked(input.ClientID)
	if err != nil {
		return nil, err
	}
	if !p.IsAlive() {
		return &ReportDeathOutput{}, nil
	}

	if o.holdsTurnLocked(p) {
		o.nextTurnLocked(ctx)
	}
	p.Kill()

	o.commitLocked(ctx)
	return &ReportDeathOutput{Killed: true, QuestStopped: !o.state.active}, nil
}

// Stop ends the quest. Stopping an inactive session does nothing.
func (o *orchestrator) Stop(ctx context.Context, _ *StopInput) (*StopOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkUsableLocked(); err != nil {
		return nil, err
	}
	if !o.state.active {
		return &StopOutput{WasActive: false}, nil
	}

	slog.Info("Quest stopped",
		"session_id", o.sessionID,
		"quest_name", o.state.name,
		"room_index", o.state.roomIndex)

	o.stopLocked()
	o.commitLocked(ctx)
	return &StopOutput{WasActive: true}, nil
}

// GetState returns the current snapshot without changing anything
func (o *orchestrator) GetState(_ context.Context, _ *GetStateInput) (*GetStateOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkUsableLocked(); err != nil {
		return nil, err
	}
	return &GetStateOutput{Snapshot: o.snapshotLocked()}, nil
}

// Dispose cancels any pending enemy turn and releases the session
func (o *orchestrator) Dispose(_ context.Context, _ *DisposeInput) (*DisposeOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disposed {
		return &DisposeOutput{}, nil
	}

	o.stopLocked()
	o.notices = nil
	o.disposed = true

	slog.Info("Quest session disposed", "session_id", o.sessionID)
	return &DisposeOutput{}, nil
}

// onPlayerDeath is every player's death callback. It always runs with the
// session locked because deaths only happen inside locked operations.
func (o *orchestrator) onPlayerDeath(p *entities.Player) {
	slog.Info("Player died",
		"session_id", o.sessionID,
		"client_id", p.ClientID,
		"alive_count", len(o.state.roster.alive()))

	if !o.state.active || len(o.state.roster.alive()) > 0 {
		return
	}

	slog.Info("Party wiped, stopping quest",
		"session_id", o.sessionID,
		"quest_name", o.state.name,
		"room_index", o.state.roomIndex)

	o.notices = append(o.notices, broadcast.ServerChat{Tag: ChatTagGame, Text: partyWipeMessage})
	o.stopLocked()
}

// nextRoomLocked generates and installs the following room. On failure the
// current room stays.
func (o *orchestrator) nextRoomLocked(ctx context.Context) error {
	index := o.state.roomIndex + 1

	room, err := o.generator.Generate(o.state.quest, index)
	if err != nil {
		slog.Error("Failed to generate room",
			"session_id", o.sessionID,
			"quest_name", o.state.name,
			"room_index", index,
			"error", err)
		return errors.Wrapf(err, "failed to generate room %d", index)
	}

	o.installRoomLocked(ctx, index, room)
	return nil
}

// installRoomLocked makes room current. Battles open with the roster leader.
func (o *orchestrator) installRoomLocked(ctx context.Context, index int, room entities.Room) {
	o.cancelEnemyTurnLocked()
	o.epoch++

	previous := o.state.currentTurn
	o.state.roomIndex = index
	o.state.room = room
	o.state.currentTurn = nil

	if previous != nil {
		o.publishTurnEventLocked(ctx, events.EventTurnEnd, previous)
	}

	if room.Type() != entities.RoomTypeBattle {
		return
	}
	if leader := o.state.roster.leader(); leader != nil {
		o.state.currentTurn = entities.PlayerTurn(leader)
		o.publishTurnEventLocked(ctx, events.EventTurnStart, o.state.currentTurn)
	}
}

func (o *orchestrator) stopLocked() {
	o.cancelEnemyTurnLocked()
	o.epoch++
	o.state = inactiveState()
}

func (o *orchestrator) checkUsableLocked() error {
	if o.disposed {
		return errors.Unavailable("quest session has been disposed")
	}
	return nil
}

// playerLocked finds a roster member of the active quest
func (o *orchestrator) playerLocked(clientID string) (*entities.Player, error) {
	if err := o.checkUsableLocked(); err != nil {
		return nil, err
	}
	if !o.state.active {
		return nil, errors.FailedPrecondition("no active quest")
	}

	p := o.state.roster.find(clientID)
	if p == nil {
		return nil, errors.NotFoundf("player %s not in quest", clientID).
			WithMeta("client_id", clientID)
	}
	return p, nil
}

func (o *orchestrator) holdsTurnLocked(p *entities.Player) bool {
	return o.state.currentTurn.Same(entities.PlayerTurn(p))
}

// commitLocked delivers pending notices and publishes a new snapshot.
// Delivery failures are logged and never undo the state change.
func (o *orchestrator) commitLocked(ctx context.Context) *entities.Snapshot {
	for _, chat := range o.notices {
		if err := o.chat.SendChat(ctx, chat); err != nil {
			slog.Error("Failed to send server chat",
				"session_id", o.sessionID,
				"tag", chat.Tag,
				"error", err)
		}
	}
	o.notices = nil

	o.version++
	snapshot := o.snapshotLocked()
	if err := o.replicator.PublishSnapshot(ctx, snapshot); err != nil {
		slog.Error("Failed to publish snapshot",
			"session_id", o.sessionID,
			"version", snapshot.Version,
			"error", err)
	}
	return snapshot
}

func (o *orchestrator) snapshotLocked() *entities.Snapshot {
	return &entities.Snapshot{
		SessionID:   o.sessionID,
		Version:     o.version,
		Active:      o.state.active,
		Name:        o.state.name,
		RoomIndex:   o.state.roomIndex,
		Room:        entities.NewRoomSnapshot(o.state.room),
		Players:     o.state.roster.snapshot(),
		CurrentTurn: entities.NewTurnSnapshot(o.state.currentTurn),
		TakenAt:     o.clock.Now(),
	}
}

func (o *orchestrator) broadcastLocked(ctx context.Context, event string, payload any, opts broadcast.Options) {
	if err := o.broadcaster.Broadcast(ctx, event, payload, opts); err != nil {
		slog.Error("Failed to broadcast event",
			"session_id", o.sessionID,
			"event", event,
			"error", err)
	}
}
