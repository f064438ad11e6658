package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// EntityTypeEnemy is the core.Entity type of a room foe
const EntityTypeEnemy = "enemy"

// DamageDice is an XdY+Z damage expression
type DamageDice struct {
	Count int `json:"count" yaml:"count"`
	Size  int `json:"size" yaml:"size"`
	Bonus int `json:"bonus,omitempty" yaml:"bonus"`
}

// String renders the notation, e.g. "2d6+1"
func (d DamageDice) String() string {
	if d.Bonus > 0 {
		return fmt.Sprintf("%dd%d+%d", d.Count, d.Size, d.Bonus)
	}
	return fmt.Sprintf("%dd%d", d.Count, d.Size)
}

// Enemy is a non-player participant of a battle or boss room
type Enemy struct {
	ID     string     `json:"id"`
	Kind   string     `json:"kind"`
	Name   string     `json:"name"`
	HP     int        `json:"hp"`
	MaxHP  int        `json:"max_hp"`
	Damage DamageDice `json:"damage"`
}

var _ core.Entity = (*Enemy)(nil)

// EnemyAction describes one autonomous enemy turn
type EnemyAction struct {
	EnemyID      string `json:"enemy_id"`
	TargetID     string `json:"target_id"`
	Rolls        []int  `json:"rolls"`
	Damage       int    `json:"damage"`
	TargetKilled bool   `json:"target_killed"`
}

// GetID returns the enemy instance id
func (e *Enemy) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *Enemy) GetType() string {
	return EntityTypeEnemy
}

// IsAlive reports whether the enemy still has hit points
func (e *Enemy) IsAlive() bool {
	return e.HP > 0
}

// Hit removes hit points and reports whether the enemy fell
func (e *Enemy) Hit(amount int) bool {
	if !e.IsAlive() || amount <= 0 {
		return false
	}

	e.HP -= amount
	if e.HP <= 0 {
		e.HP = 0
		return true
	}
	return false
}

// TakeTurn attacks one of the living targets chosen with the roller and
// applies the rolled damage. It returns nil when there is nobody to attack.
func (e *Enemy) TakeTurn(roller dice.Roller, targets []*Player) (*EnemyAction, error) {
	if len(targets) == 0 {
		return nil, nil
	}

	idx := 0
	if len(targets) > 1 {
		pick, err := roller.Roll(len(targets))
		if err != nil {
			return nil, fmt.Errorf("failed to pick target: %w", err)
		}
		idx = pick - 1
	}
	target := targets[idx]

	rolls, err := roller.RollN(e.Damage.Count, e.Damage.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to roll %s: %w", e.Damage, err)
	}

	total := e.Damage.Bonus
	for _, r := range rolls {
		total += r
	}

	return &EnemyAction{
		EnemyID:      e.ID,
		TargetID:     target.ClientID,
		Rolls:        rolls,
		Damage:       total,
		TargetKilled: target.Damage(total),
	}, nil
}
