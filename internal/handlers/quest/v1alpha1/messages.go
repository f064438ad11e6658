package v1alpha1

import "github.com/KirkDiggler/rpg-quest/internal/entities"

// ConnectRequest registers a client with the session
type ConnectRequest struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name,omitempty"`
}

// ConnectResponse returns the registered client and the session state
type ConnectResponse struct {
	Client *entities.Client `json:"client"`
	// Player is set when the client joined an active quest
	Player   *entities.PlayerSnapshot `json:"player,omitempty"`
	Snapshot *entities.Snapshot       `json:"snapshot"`
}

// DisconnectRequest removes a client from the session
type DisconnectRequest struct {
	ClientID string `json:"client_id"`
}

// DisconnectResponse reports what the disconnect removed
type DisconnectResponse struct {
	Removed      bool `json:"removed"`
	LeftQuest    bool `json:"left_quest"`
	QuestStopped bool `json:"quest_stopped"`
}

// ListQuestsRequest asks for the quest catalog
type ListQuestsRequest struct{}

// QuestSummary names a catalog entry by its start index
type QuestSummary struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// ListQuestsResponse lists the quests that can be started
type ListQuestsResponse struct {
	Quests []QuestSummary `json:"quests"`
}

// StartQuestRequest starts the quest at a catalog index
type StartQuestRequest struct {
	QuestIndex int `json:"quest_index"`
}

// StartQuestResponse returns the first snapshot of the new quest
type StartQuestResponse struct {
	Snapshot *entities.Snapshot `json:"snapshot"`
}

// StopQuestRequest stops the active quest
type StopQuestRequest struct{}

// StopQuestResponse reports whether a quest was running
type StopQuestResponse struct {
	WasActive bool `json:"was_active"`
}

// VoteAdvanceRequest records a vote to move on
type VoteAdvanceRequest struct {
	ClientID string `json:"client_id"`
}

// VoteAdvanceResponse reports whether the vote moved the party
type VoteAdvanceResponse struct {
	Advanced  bool `json:"advanced"`
	RoomIndex int  `json:"room_index"`
}

// EndTurnRequest passes the caller's turn on
type EndTurnRequest struct {
	ClientID string `json:"client_id"`
}

// EndTurnResponse returns who acts next
type EndTurnResponse struct {
	CurrentTurn *entities.TurnSnapshot `json:"current_turn,omitempty"`
}

// AttackRequest strikes a foe in the current room
type AttackRequest struct {
	ClientID string `json:"client_id"`
	EnemyID  string `json:"enemy_id"`
}

// AttackResponse returns the resolved attack
type AttackResponse struct {
	Action      *entities.PlayerAction `json:"action"`
	RoomCleared bool                   `json:"room_cleared"`
	CurrentTurn *entities.TurnSnapshot `json:"current_turn,omitempty"`
}

// ReportDeathRequest marks a player dead
type ReportDeathRequest struct {
	ClientID string `json:"client_id"`
}

// ReportDeathResponse reports the outcome of a death
type ReportDeathResponse struct {
	Killed       bool `json:"killed"`
	QuestStopped bool `json:"quest_stopped"`
}

// GetQuestStateRequest reads the session state
type GetQuestStateRequest struct{}

// GetQuestStateResponse returns the current snapshot
type GetQuestStateResponse struct {
	Snapshot *entities.Snapshot `json:"snapshot"`
}
