package quest

import "github.com/KirkDiggler/rpg-quest/internal/entities"

// StartInput defines the request for starting a quest
type StartInput struct {
	QuestIndex int
}

// StartOutput defines the response for starting a quest
type StartOutput struct {
	Snapshot *entities.Snapshot
}

// JoinPlayerInput defines the request for adding a player to the active quest
type JoinPlayerInput struct {
	ClientID string
	// Dead joins the player already dead
	Dead bool
	// AsDeadIfFighting joins the player dead when the current room is a
	// battle or boss room, checked under the quest lock
	AsDeadIfFighting bool
}

// JoinPlayerOutput defines the response for adding a player
type JoinPlayerOutput struct {
	Player entities.PlayerSnapshot
}

// LeavePlayerInput defines the request for removing a player
type LeavePlayerInput struct {
	ClientID string
}

// LeavePlayerOutput defines the response for removing a player
type LeavePlayerOutput struct {
	Removed      bool
	QuestStopped bool
}

// VoteAdvanceInput defines the request for voting to move on
type VoteAdvanceInput struct {
	ClientID string
}

// VoteAdvanceOutput defines the response for a vote
type VoteAdvanceOutput struct {
	Advanced  bool
	RoomIndex int
}

// ReportDeathInput defines the request for marking a player dead
type ReportDeathInput struct {
	ClientID string
}

// ReportDeathOutput defines the response for a reported death
type ReportDeathOutput struct {
	Killed       bool
	QuestStopped bool
}

// EndTurnInput defines the request for ending the caller's turn
type EndTurnInput struct {
	ClientID string
}

// EndTurnOutput defines the response for ending a turn
type EndTurnOutput struct {
	CurrentTurn *entities.TurnSnapshot
}

// AttackInput defines the request for a player attacking a foe
type AttackInput struct {
	ClientID string
	EnemyID  string
}

// AttackOutput defines the response for an attack
type AttackOutput struct {
	Action      *entities.PlayerAction
	RoomCleared bool
	CurrentTurn *entities.TurnSnapshot
}

// StopInput defines the request for stopping the quest
type StopInput struct{}

// StopOutput defines the response for stopping the quest
type StopOutput struct {
	WasActive bool
}

// GetStateInput defines the request for reading the quest state
type GetStateInput struct{}

// GetStateOutput defines the response for reading the quest state
type GetStateOutput struct {
	Snapshot *entities.Snapshot
}

// DisposeInput defines the request for releasing the session
type DisposeInput struct{}

// DisposeOutput defines the response for releasing the session
type DisposeOutput struct{}
