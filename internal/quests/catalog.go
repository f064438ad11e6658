// Package quests defines the quest catalog and turns room templates into
// playable rooms.
package quests

import (
	"sort"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

// Monster is a bestiary entry that enemies are instantiated from
type Monster struct {
	Kind   string
	Name   string
	HP     int
	Damage entities.DamageDice
}

// Quest is a named room progression
type Quest struct {
	Name   string
	Policy Policy
}

// Catalog is the read-only set of quests, monsters and market stock the
// server was started with
type Catalog struct {
	quests   []*Quest
	bestiary map[string]*Monster
	markets  map[int][]*entities.MarketItem
}

// NewCatalog validates the parts and builds a catalog. Every enemy kind a
// quest can produce must exist in the bestiary.
func NewCatalog(quests []*Quest, bestiary []*Monster, markets map[int][]*entities.MarketItem) (*Catalog, error) {
	c := &Catalog{
		quests:   quests,
		bestiary: make(map[string]*Monster, len(bestiary)),
		markets:  markets,
	}
	if c.markets == nil {
		c.markets = map[int][]*entities.MarketItem{}
	}

	for _, m := range bestiary {
		if m.Kind == "" {
			return nil, errors.InvalidArgument("monster kind is required")
		}
		if m.HP <= 0 {
			return nil, errors.InvalidArgumentf("monster %s must have positive hp", m.Kind)
		}
		if _, dup := c.bestiary[m.Kind]; dup {
			return nil, errors.AlreadyExistsf("monster %s defined twice", m.Kind)
		}
		c.bestiary[m.Kind] = m
	}

	for i, q := range quests {
		if q.Name == "" {
			return nil, errors.InvalidArgumentf("quest %d has no name", i)
		}
		if q.Policy == nil {
			return nil, errors.InvalidArgumentf("quest %s has no room policy", q.Name)
		}
		for _, kind := range q.Policy.Kinds() {
			if _, ok := c.bestiary[kind]; !ok {
				return nil, errors.NotFoundf("quest %s references unknown enemy kind %s", q.Name, kind).
					WithMeta("quest", q.Name)
			}
		}
	}

	return c, nil
}

// Len returns the number of quests
func (c *Catalog) Len() int {
	return len(c.quests)
}

// Quest returns the quest at index
func (c *Catalog) Quest(index int) (*Quest, error) {
	if index < 0 || index >= len(c.quests) {
		return nil, errors.OutOfRangef("quest index %d out of range [0, %d)", index, len(c.quests)).
			WithMeta("quest_index", index)
	}
	return c.quests[index], nil
}

// Names lists the quest names in catalog order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.quests))
	for i, q := range c.quests {
		names[i] = q.Name
	}
	return names
}

// Monster looks up a bestiary entry
func (c *Catalog) Monster(kind string) (*Monster, bool) {
	m, ok := c.bestiary[kind]
	return m, ok
}

// Stock returns the market inventory for level. Levels past the highest
// configured one use the highest stock.
func (c *Catalog) Stock(level int) []*entities.MarketItem {
	if items, ok := c.markets[level]; ok {
		return items
	}

	levels := make([]int, 0, len(c.markets))
	for l := range c.markets {
		if l <= level {
			levels = append(levels, l)
		}
	}
	if len(levels) == 0 {
		return nil
	}
	sort.Ints(levels)
	return c.markets[levels[len(levels)-1]]
}
