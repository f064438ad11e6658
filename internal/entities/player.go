// Package entities provides the core quest data structures shared by the
// room generator, the quest orchestrator and the replication layer.
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

const (
	// EntityTypePlayer is the core.Entity type of a party member
	EntityTypePlayer = "player"

	// DefaultPlayerHP is the hit point pool every adventurer starts a quest with
	DefaultPlayerHP = 20
)

// Player is one participant in the active quest
type Player struct {
	ClientID        string
	HP              int
	MaxHP           int
	VotedForAdvance bool

	alive   bool
	onDeath func(*Player)
}

var _ core.Entity = (*Player)(nil)

// NewPlayer creates a player for a connected client. Late joiners are created
// dead so they do not take part in a battle already underway. onDeath runs
// exactly once, when the player goes from alive to dead.
func NewPlayer(clientID string, dead bool, onDeath func(*Player)) *Player {
	p := &Player{
		ClientID: clientID,
		HP:       DefaultPlayerHP,
		MaxHP:    DefaultPlayerHP,
		alive:    !dead,
		onDeath:  onDeath,
	}
	if dead {
		p.HP = 0
	}
	return p
}

// GetID returns the client identifier
func (p *Player) GetID() string {
	return p.ClientID
}

// GetType returns the entity type for rpg-toolkit
func (p *Player) GetType() string {
	return EntityTypePlayer
}

// IsAlive reports whether the player can still act
func (p *Player) IsAlive() bool {
	return p.alive
}

// Kill marks the player dead and fires the death callback. It returns false
// if the player was already dead.
func (p *Player) Kill() bool {
	if !p.alive {
		return false
	}

	p.alive = false
	p.HP = 0
	if p.onDeath != nil {
		p.onDeath(p)
	}
	return true
}

// Damage removes hit points and kills the player at zero. It returns true
// when this hit was the killing blow.
func (p *Player) Damage(amount int) bool {
	if !p.alive || amount <= 0 {
		return false
	}

	p.HP -= amount
	if p.HP <= 0 {
		return p.Kill()
	}
	return false
}

// AlivePlayers returns the living members of players in order
func AlivePlayers(players []*Player) []*Player {
	alive := make([]*Player, 0, len(players))
	for _, p := range players {
		if p.IsAlive() {
			alive = append(alive, p)
		}
	}
	return alive
}

// PlayerAction describes a player's attack on a foe
type PlayerAction struct {
	PlayerID    string `json:"player_id"`
	EnemyID     string `json:"enemy_id"`
	Roll        int    `json:"roll"`
	Damage      int    `json:"damage"`
	EnemyKilled bool   `json:"enemy_killed"`
}
