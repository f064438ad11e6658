package entities

// RoomType tags the room variants
type RoomType string

// Room types a quest can generate
const (
	RoomTypeBattle RoomType = "battle"
	RoomTypeMarket RoomType = "market"
	RoomTypeBoss   RoomType = "boss"
)

// Room is one stage of a quest
type Room interface {
	Type() RoomType
}

// EncounterRoom is a room with foes that take part in a turn cycle
type EncounterRoom interface {
	Room
	Foes() []*Enemy
}

// BattleRoom holds a group of regular enemies
type BattleRoom struct {
	Enemies []*Enemy
}

// Type returns RoomTypeBattle
func (r *BattleRoom) Type() RoomType {
	return RoomTypeBattle
}

// Foes returns the room's enemies in generation order
func (r *BattleRoom) Foes() []*Enemy {
	return r.Enemies
}

// BossRoom holds a boss and its optional minions
type BossRoom struct {
	Boss    *Enemy
	Minions []*Enemy
}

// Type returns RoomTypeBoss
func (r *BossRoom) Type() RoomType {
	return RoomTypeBoss
}

// Foes returns the boss followed by its minions
func (r *BossRoom) Foes() []*Enemy {
	foes := make([]*Enemy, 0, len(r.Minions)+1)
	if r.Boss != nil {
		foes = append(foes, r.Boss)
	}
	return append(foes, r.Minions...)
}

// MarketItem is one entry of a market's stock
type MarketItem struct {
	Key   string `json:"key" yaml:"key"`
	Name  string `json:"name" yaml:"name"`
	Price int    `json:"price" yaml:"price"`
}

// MarketRoom offers the stock for its level
type MarketRoom struct {
	Level     int
	Inventory []*MarketItem
}

// Type returns RoomTypeMarket
func (r *MarketRoom) Type() RoomType {
	return RoomTypeMarket
}

// LivingFoes returns the foes of room that are still standing; nil for rooms
// without foes.
func LivingFoes(room Room) []*Enemy {
	encounter, ok := room.(EncounterRoom)
	if !ok {
		return nil
	}

	var alive []*Enemy
	for _, e := range encounter.Foes() {
		if e.IsAlive() {
			alive = append(alive, e)
		}
	}
	return alive
}

// FindFoe looks up a foe of room by id
func FindFoe(room Room, enemyID string) *Enemy {
	encounter, ok := room.(EncounterRoom)
	if !ok {
		return nil
	}

	for _, e := range encounter.Foes() {
		if e.ID == enemyID {
			return e
		}
	}
	return nil
}
