package quests

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/idgen"
)

// GeneratorConfig holds the dependencies for a Generator
type GeneratorConfig struct {
	Catalog *Catalog
	IDGen   idgen.Generator
	Roller  dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *GeneratorConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Generator instantiates the rooms of a quest
type Generator struct {
	catalog *Catalog
	idGen   idgen.Generator
	roller  dice.Roller
}

// NewGenerator creates a room generator
func NewGenerator(cfg *GeneratorConfig) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid generator config")
	}

	return &Generator{
		catalog: cfg.Catalog,
		idGen:   cfg.IDGen,
		roller:  cfg.Roller,
	}, nil
}

// Generate builds a fresh room for quest at index. Every call creates new
// enemy instances, so revisiting a wrapped sequence index never shares state
// with an earlier room.
func (g *Generator) Generate(quest *Quest, index int) (entities.Room, error) {
	if quest == nil {
		return nil, errors.InvalidArgument("quest is required")
	}

	tmpl, err := quest.Policy.RoomAt(index)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select room %d of %s", index, quest.Name)
	}

	switch tmpl.Type {
	case entities.RoomTypeBattle:
		kinds := tmpl.Enemies
		if tmpl.Draw != nil {
			kinds, err = g.draw(tmpl.Draw)
			if err != nil {
				return nil, err
			}
		}
		enemies, err := g.spawnAll(kinds)
		if err != nil {
			return nil, err
		}
		return &entities.BattleRoom{Enemies: enemies}, nil

	case entities.RoomTypeBoss:
		boss, err := g.spawn(tmpl.Boss)
		if err != nil {
			return nil, err
		}
		minions, err := g.spawnAll(tmpl.Minions)
		if err != nil {
			return nil, err
		}
		return &entities.BossRoom{Boss: boss, Minions: minions}, nil

	case entities.RoomTypeMarket:
		return &entities.MarketRoom{
			Level:     tmpl.Level,
			Inventory: g.catalog.Stock(tmpl.Level),
		}, nil

	default:
		return nil, errors.Internalf("unknown room type %q", tmpl.Type)
	}
}

func (g *Generator) draw(d *Draw) ([]string, error) {
	count := d.Min
	if d.Max > d.Min {
		extra, err := g.roller.Roll(d.Max - d.Min + 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll enemy count")
		}
		count += extra - 1
	}

	kinds := make([]string, count)
	for i := range kinds {
		pick, err := g.roller.Roll(len(d.Pool))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll enemy kind")
		}
		kinds[i] = d.Pool[pick-1]
	}
	return kinds, nil
}

func (g *Generator) spawnAll(kinds []string) ([]*entities.Enemy, error) {
	enemies := make([]*entities.Enemy, 0, len(kinds))
	for _, kind := range kinds {
		e, err := g.spawn(kind)
		if err != nil {
			return nil, err
		}
		enemies = append(enemies, e)
	}
	return enemies, nil
}

func (g *Generator) spawn(kind string) (*entities.Enemy, error) {
	m, ok := g.catalog.Monster(kind)
	if !ok {
		return nil, errors.NotFoundf("unknown enemy kind %s", kind).WithMeta("kind", kind)
	}

	return &entities.Enemy{
		ID:     g.idGen.Generate(),
		Kind:   m.Kind,
		Name:   m.Name,
		HP:     m.HP,
		MaxHP:  m.HP,
		Damage: m.Damage,
	}, nil
}
