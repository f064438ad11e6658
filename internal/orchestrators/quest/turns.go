package quest

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-quest/internal/broadcast"
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

// Event context keys set on turn events
const (
	ContextSessionID = "session_id"
	ContextRoomIndex = "room_index"
)

// EndTurn passes the caller's turn to the next participant
func (o *orchestrator) EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error) {
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
	if !o.holdsTurnLocked(p) {
		return nil, errors.FailedPreconditionf("it is not %s's turn", input.ClientID).
			WithMeta("client_id", input.ClientID)
	}

	o.nextTurnLocked(ctx)
	o.commitLocked(ctx)

	return &EndTurnOutput{CurrentTurn: entities.NewTurnSnapshot(o.state.currentTurn)}, nil
}

// Attack rolls 1d6 against a living foe and ends the caller's turn. Felling
// the last foe clears the room and ends the rotation.
func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ClientID", input.ClientID, vb)
	errors.ValidateRequired("EnemyID", input.EnemyID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.playerLocked(input.ClientID)
	if err != nil {
		return nil, err
	}
	if !o.holdsTurnLocked(p) {
		return nil, errors.FailedPreconditionf("it is not %s's turn", input.ClientID).
			WithMeta("client_id", input.ClientID)
	}

	foe := entities.FindFoe(o.state.room, input.EnemyID)
	if foe == nil {
		return nil, errors.NotFoundf("enemy %s not in this room", input.EnemyID).
			WithMeta("enemy_id", input.EnemyID)
	}
	if !foe.IsAlive() {
		return nil, errors.FailedPreconditionf("enemy %s is already defeated", input.EnemyID).
			WithMeta("enemy_id", input.EnemyID)
	}

	roll, err := o.roller.Roll(6)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll attack")
	}

	action := &entities.PlayerAction{
		PlayerID:    p.ClientID,
		EnemyID:     foe.ID,
		Roll:        roll,
		Damage:      roll,
		EnemyKilled: foe.Hit(roll),
	}
	o.broadcastLocked(ctx, broadcast.EventPlayerAction, action, broadcast.Options{})

	out := &AttackOutput{Action: action}
	if len(entities.LivingFoes(o.state.room)) == 0 {
		o.clearRoomLocked(ctx)
		out.RoomCleared = true
	} else {
		o.nextTurnLocked(ctx)
	}

	o.commitLocked(ctx)
	out.CurrentTurn = entities.NewTurnSnapshot(o.state.currentTurn)
	return out, nil
}

// nextTurnLocked moves currentTurn one step along the room's turn cycle.
// The cycle is rebuilt from the live roster on every call, so players who
// left or died are skipped. Only battle rooms rotate.
func (o *orchestrator) nextTurnLocked(ctx context.Context) {
	if o.state.room == nil || o.state.room.Type() != entities.RoomTypeBattle {
		slog.Error("Cannot advance turn: must be in a battle room",
			"session_id", o.sessionID,
			"room_index", o.state.roomIndex)
		return
	}

	o.cancelEnemyTurnLocked()
	previous := o.state.currentTurn

	cycle := entities.TurnCycle(o.state.roster.players, o.state.room)
	if len(o.state.roster.alive()) == 0 || len(entities.LivingFoes(o.state.room)) == 0 {
		// nobody left on one side; the rotation has nothing to do
		o.state.currentTurn = nil
	} else {
		i := entities.IndexOfTurn(cycle, previous)
		o.state.currentTurn = cycle[(i+1)%len(cycle)]
	}

	if previous != nil {
		o.publishTurnEventLocked(ctx, events.EventTurnEnd, previous)
	}
	current := o.state.currentTurn
	if current == nil {
		return
	}
	o.publishTurnEventLocked(ctx, events.EventTurnStart, current)

	if current.Kind == entities.TurnEnemy {
		o.scheduleEnemyTurnLocked(current)
	}
}

// scheduleEnemyTurnLocked defers turn's action by the enemy delay. The
// callback re-enters through the session lock and does nothing unless the
// room and the turn are unchanged.
func (o *orchestrator) scheduleEnemyTurnLocked(turn *entities.Turn) {
	epoch := o.epoch
	o.enemyTimer = o.clock.AfterFunc(o.enemyDelay, func() {
		o.runEnemyTurn(epoch, turn)
	})
}

func (o *orchestrator) cancelEnemyTurnLocked() {
	if o.enemyTimer != nil {
		o.enemyTimer.Stop()
		o.enemyTimer = nil
	}
}

func (o *orchestrator) runEnemyTurn(epoch uint64, turn *entities.Turn) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disposed || !o.state.active || o.epoch != epoch || !o.state.currentTurn.Same(turn) {
		slog.Debug("Skipping stale enemy turn",
			"session_id", o.sessionID,
			"enemy_id", turn.ID())
		return
	}
	o.enemyTimer = nil

	ctx := context.Background()
	enemy := turn.Enemy
	action, err := enemy.TakeTurn(o.roller, o.state.roster.alive())
	switch {
	case err != nil:
		slog.Error("Enemy turn failed",
			"session_id", o.sessionID,
			"enemy_id", enemy.ID,
			"error", err)
	case action != nil:
		slog.Debug("Enemy attacked",
			"session_id", o.sessionID,
			"enemy_id", action.EnemyID,
			"target_id", action.TargetID,
			"damage", action.Damage,
			"target_killed", action.TargetKilled)
		o.broadcastLocked(ctx, broadcast.EventEnemyAction, action, broadcast.Options{})
	}

	// a killing blow may have wiped the party and stopped the quest
	if o.state.active {
		o.nextTurnLocked(ctx)
	}
	o.commitLocked(ctx)
}

// clearRoomLocked ends the rotation after the last foe fell
func (o *orchestrator) clearRoomLocked(ctx context.Context) {
	o.cancelEnemyTurnLocked()

	previous := o.state.currentTurn
	o.state.currentTurn = nil
	if previous != nil {
		o.publishTurnEventLocked(ctx, events.EventTurnEnd, previous)
	}

	slog.Info("Room cleared",
		"session_id", o.sessionID,
		"room_index", o.state.roomIndex)

	o.broadcastLocked(ctx, broadcast.EventRoomCleared, map[string]any{
		"room_index": o.state.roomIndex,
	}, broadcast.Options{AfterNextSnapshot: true})
}

func (o *orchestrator) publishTurnEventLocked(ctx context.Context, eventType string, turn *entities.Turn) {
	event := events.NewGameEvent(eventType, turn.Entity(), nil)
	event.Context().Set(ContextSessionID, o.sessionID)
	event.Context().Set(ContextRoomIndex, o.state.roomIndex)

	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Error("Failed to publish turn event",
			"session_id", o.sessionID,
			"event_type", eventType,
			"entity_id", turn.ID(),
			"error", err)
	}
}
