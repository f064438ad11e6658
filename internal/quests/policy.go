package quests

import (
	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

// RoomTemplate describes a room before its enemies are instantiated
type RoomTemplate struct {
	Type entities.RoomType

	// Battle rooms use Enemies, or Draw when the composition is rolled
	Enemies []string
	Draw    *Draw

	// Boss rooms
	Boss    string
	Minions []string

	// Market rooms
	Level int
}

// Draw rolls a battle composition from a pool of enemy kinds
type Draw struct {
	Pool []string
	Min  int
	Max  int
}

// Policy decides which room a quest has at a given index
type Policy interface {
	RoomAt(index int) (RoomTemplate, error)

	// Kinds lists every enemy kind the policy can produce
	Kinds() []string
}

// Sequence is a fixed list of rooms. Indexes past the end wrap around.
type Sequence struct {
	Rooms []RoomTemplate
}

// RoomAt returns the template at index modulo the sequence length
func (s *Sequence) RoomAt(index int) (RoomTemplate, error) {
	if len(s.Rooms) == 0 {
		return RoomTemplate{}, errors.FailedPrecondition("sequence has no rooms")
	}
	if index < 0 {
		return RoomTemplate{}, errors.OutOfRangef("room index %d is negative", index)
	}
	return s.Rooms[index%len(s.Rooms)], nil
}

// Kinds lists the enemy kinds used by the sequence
func (s *Sequence) Kinds() []string {
	var kinds []string
	for _, r := range s.Rooms {
		kinds = append(kinds, templateKinds(r)...)
	}
	return kinds
}

// Interval alternates battles with a market every MarketEvery rooms and a
// boss every BossEvery rooms. A boss takes precedence when both land on the
// same room. Battles draw their enemies from Draw.
type Interval struct {
	MarketEvery int
	BossEvery   int
	Draw        Draw
	Boss        string
	Minions     []string
}

// RoomAt returns the template for the room at index
func (p *Interval) RoomAt(index int) (RoomTemplate, error) {
	if index < 0 {
		return RoomTemplate{}, errors.OutOfRangef("room index %d is negative", index)
	}

	n := index + 1
	switch {
	case p.BossEvery > 0 && n%p.BossEvery == 0:
		return RoomTemplate{Type: entities.RoomTypeBoss, Boss: p.Boss, Minions: p.Minions}, nil
	case p.MarketEvery > 0 && n%p.MarketEvery == 0:
		return RoomTemplate{Type: entities.RoomTypeMarket, Level: n/p.MarketEvery - 1}, nil
	default:
		draw := p.Draw
		return RoomTemplate{Type: entities.RoomTypeBattle, Draw: &draw}, nil
	}
}

// Kinds lists the enemy kinds the interval can produce
func (p *Interval) Kinds() []string {
	kinds := append([]string{}, p.Draw.Pool...)
	if p.Boss != "" {
		kinds = append(kinds, p.Boss)
	}
	return append(kinds, p.Minions...)
}

func templateKinds(t RoomTemplate) []string {
	var kinds []string
	kinds = append(kinds, t.Enemies...)
	if t.Draw != nil {
		kinds = append(kinds, t.Draw.Pool...)
	}
	if t.Boss != "" {
		kinds = append(kinds, t.Boss)
	}
	return append(kinds, t.Minions...)
}
