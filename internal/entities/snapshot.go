package entities

import "time"

// Snapshot is the replicated view of a quest session
type Snapshot struct {
	SessionID   string           `json:"session_id"`
	Version     uint64           `json:"version"`
	Active      bool             `json:"active"`
	Name        string           `json:"name"`
	RoomIndex   int              `json:"room_index"`
	Room        *RoomSnapshot    `json:"room,omitempty"`
	Players     []PlayerSnapshot `json:"players"`
	CurrentTurn *TurnSnapshot    `json:"current_turn,omitempty"`
	TakenAt     time.Time        `json:"taken_at"`
}

// RoomSnapshot is the replicated view of a room
type RoomSnapshot struct {
	Type      RoomType      `json:"type"`
	Enemies   []Enemy       `json:"enemies,omitempty"`
	Level     int           `json:"level,omitempty"`
	Inventory []*MarketItem `json:"inventory,omitempty"`
}

// PlayerSnapshot is the replicated view of a player
type PlayerSnapshot struct {
	ClientID        string `json:"client_id"`
	Alive           bool   `json:"alive"`
	HP              int    `json:"hp"`
	MaxHP           int    `json:"max_hp"`
	VotedForAdvance bool   `json:"voted_for_advance"`
}

// TurnSnapshot identifies the participant whose turn it is
type TurnSnapshot struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// NewRoomSnapshot copies room into its replicated form; nil for no room
func NewRoomSnapshot(room Room) *RoomSnapshot {
	if room == nil {
		return nil
	}

	rs := &RoomSnapshot{Type: room.Type()}
	switch r := room.(type) {
	case EncounterRoom:
		for _, e := range r.Foes() {
			rs.Enemies = append(rs.Enemies, *e)
		}
	case *MarketRoom:
		rs.Level = r.Level
		rs.Inventory = r.Inventory
	}
	return rs
}

// NewPlayerSnapshot copies p into its replicated form
func NewPlayerSnapshot(p *Player) PlayerSnapshot {
	return PlayerSnapshot{
		ClientID:        p.ClientID,
		Alive:           p.IsAlive(),
		HP:              p.HP,
		MaxHP:           p.MaxHP,
		VotedForAdvance: p.VotedForAdvance,
	}
}

// NewTurnSnapshot copies t into its replicated form; nil outside battle
func NewTurnSnapshot(t *Turn) *TurnSnapshot {
	if t == nil {
		return nil
	}
	return &TurnSnapshot{Kind: t.Kind.String(), ID: t.ID()}
}
