package quest

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-quest/internal/broadcast"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

// VoteAdvance records the caller's vote. When every living player has voted
// the party moves to the next room and all votes reset.
func (o *orchestrator) VoteAdvance(ctx context.Context, input *VoteAdvanceInput) (*VoteAdvanceOutput, error) {
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
	p.VotedForAdvance = true

	out := &VoteAdvanceOutput{}
	if o.state.roster.unanimous() {
		if err := o.advanceLocked(ctx); err != nil {
			o.commitLocked(ctx)
			return nil, err
		}
		out.Advanced = true
	}

	o.commitLocked(ctx)
	out.RoomIndex = o.state.roomIndex
	return out, nil
}

// advanceLocked moves to the next room and starts the new room's vote
func (o *orchestrator) advanceLocked(ctx context.Context) error {
	if err := o.nextRoomLocked(ctx); err != nil {
		return err
	}

	o.broadcastLocked(ctx, broadcast.EventQuestAdvance, map[string]any{
		"room_index": o.state.roomIndex,
		"room_type":  o.state.room.Type(),
	}, broadcast.Options{AfterNextSnapshot: true})
	o.state.roster.clearVotes()

	slog.Info("Party advanced",
		"session_id", o.sessionID,
		"quest_name", o.state.name,
		"room_index", o.state.roomIndex,
		"room_type", o.state.room.Type())
	return nil
}
