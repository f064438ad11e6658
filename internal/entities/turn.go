package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// TurnKind says who holds a turn
type TurnKind int

// Turn kinds
const (
	TurnPlayer TurnKind = iota
	TurnEnemy
)

// String returns a human-readable kind
func (k TurnKind) String() string {
	switch k {
	case TurnPlayer:
		return EntityTypePlayer
	case TurnEnemy:
		return EntityTypeEnemy
	default:
		return "unknown"
	}
}

// Turn is one slot of a turn cycle. Exactly one of Player and Enemy is set,
// matching Kind.
type Turn struct {
	Kind   TurnKind
	Player *Player
	Enemy  *Enemy
}

// PlayerTurn wraps a player slot
func PlayerTurn(p *Player) *Turn {
	return &Turn{Kind: TurnPlayer, Player: p}
}

// EnemyTurn wraps an enemy slot
func EnemyTurn(e *Enemy) *Turn {
	return &Turn{Kind: TurnEnemy, Enemy: e}
}

// Entity returns the participant as an rpg-toolkit entity
func (t *Turn) Entity() core.Entity {
	if t == nil {
		return nil
	}
	if t.Kind == TurnEnemy {
		return t.Enemy
	}
	return t.Player
}

// ID returns the participant id, "" for a nil turn
func (t *Turn) ID() string {
	if e := t.Entity(); e != nil {
		return e.GetID()
	}
	return ""
}

// Same reports whether both turns point at the same participant
func (t *Turn) Same(other *Turn) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	return t.Kind == other.Kind && t.ID() == other.ID()
}

// TurnCycle builds the rotation for room: living players in roster order,
// then the room's living foes. Rooms without foes have no cycle.
func TurnCycle(players []*Player, room Room) []*Turn {
	if _, ok := room.(EncounterRoom); !ok {
		return nil
	}

	var cycle []*Turn
	for _, p := range AlivePlayers(players) {
		cycle = append(cycle, PlayerTurn(p))
	}
	for _, e := range LivingFoes(room) {
		cycle = append(cycle, EnemyTurn(e))
	}
	return cycle
}

// IndexOfTurn returns the position of turn in cycle, or -1
func IndexOfTurn(cycle []*Turn, turn *Turn) int {
	if turn == nil {
		return -1
	}
	for i, t := range cycle {
		if t.Same(turn) {
			return i
		}
	}
	return -1
}
