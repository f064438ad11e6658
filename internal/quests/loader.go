package quests

import (
	_ "embed"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

//go:embed quests.yaml
var defaultCatalog []byte

type catalogFile struct {
	Bestiary map[string]monsterFile `yaml:"bestiary"`
	Markets  []marketFile           `yaml:"markets"`
	Quests   []questFile            `yaml:"quests"`
}

type monsterFile struct {
	Name   string `yaml:"name"`
	HP     int    `yaml:"hp"`
	Damage string `yaml:"damage"`
}

type marketFile struct {
	Level int                    `yaml:"level"`
	Items []*entities.MarketItem `yaml:"items"`
}

type questFile struct {
	Name     string        `yaml:"name"`
	Rooms    []roomFile    `yaml:"rooms"`
	Interval *intervalFile `yaml:"interval"`
}

type roomFile struct {
	Type    string   `yaml:"type"`
	Enemies []string `yaml:"enemies"`
	Boss    string   `yaml:"boss"`
	Minions []string `yaml:"minions"`
	Level   int      `yaml:"level"`
}

type intervalFile struct {
	MarketEvery int      `yaml:"market_every"`
	BossEvery   int      `yaml:"boss_every"`
	Pool        []string `yaml:"pool"`
	MinEnemies  int      `yaml:"min_enemies"`
	MaxEnemies  int      `yaml:"max_enemies"`
	Boss        string   `yaml:"boss"`
	Minions     []string `yaml:"minions"`
}

// DefaultCatalog returns the catalog compiled into the binary
func DefaultCatalog() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}
	return c, nil
}

// Parse builds a catalog from YAML
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}

	kinds := make([]string, 0, len(file.Bestiary))
	for kind := range file.Bestiary {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	bestiary := make([]*Monster, 0, len(kinds))
	for _, kind := range kinds {
		m := file.Bestiary[kind]
		damage, err := ParseDamage(m.Damage)
		if err != nil {
			return nil, errors.Wrapf(err, "monster %s", kind)
		}
		name := m.Name
		if name == "" {
			name = kind
		}
		bestiary = append(bestiary, &Monster{Kind: kind, Name: name, HP: m.HP, Damage: damage})
	}

	markets := make(map[int][]*entities.MarketItem, len(file.Markets))
	for _, m := range file.Markets {
		if _, dup := markets[m.Level]; dup {
			return nil, errors.AlreadyExistsf("market level %d defined twice", m.Level)
		}
		markets[m.Level] = m.Items
	}

	quests := make([]*Quest, 0, len(file.Quests))
	for _, q := range file.Quests {
		policy, err := q.policy()
		if err != nil {
			return nil, errors.Wrapf(err, "quest %s", q.Name)
		}
		quests = append(quests, &Quest{Name: q.Name, Policy: policy})
	}

	return NewCatalog(quests, bestiary, markets)
}

func (q questFile) policy() (Policy, error) {
	switch {
	case q.Interval != nil && len(q.Rooms) > 0:
		return nil, errors.InvalidArgument("rooms and interval are mutually exclusive")
	case q.Interval != nil:
		return q.Interval.policy()
	case len(q.Rooms) == 0:
		return nil, errors.InvalidArgument("quest has no rooms")
	}

	seq := &Sequence{Rooms: make([]RoomTemplate, 0, len(q.Rooms))}
	for i, r := range q.Rooms {
		t := RoomTemplate{
			Type:    entities.RoomType(r.Type),
			Enemies: r.Enemies,
			Boss:    r.Boss,
			Minions: r.Minions,
			Level:   r.Level,
		}

		switch t.Type {
		case entities.RoomTypeBattle:
			if len(t.Enemies) == 0 {
				return nil, errors.InvalidArgumentf("battle room %d has no enemies", i)
			}
		case entities.RoomTypeBoss:
			if t.Boss == "" {
				return nil, errors.InvalidArgumentf("boss room %d has no boss", i)
			}
		case entities.RoomTypeMarket:
		default:
			return nil, errors.InvalidArgumentf("room %d has unknown type %q", i, r.Type)
		}
		seq.Rooms = append(seq.Rooms, t)
	}
	return seq, nil
}

func (f *intervalFile) policy() (Policy, error) {
	vb := errors.NewValidationBuilder()
	if len(f.Pool) == 0 {
		vb.Field("pool", "at least one enemy kind is required")
	}
	if f.MinEnemies < 1 {
		vb.Field("min_enemies", "must be at least 1")
	}
	if f.MaxEnemies < f.MinEnemies {
		vb.Field("max_enemies", "must not be less than min_enemies")
	}
	if f.BossEvery > 0 && f.Boss == "" {
		vb.Field("boss", "is required when boss_every is set")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &Interval{
		MarketEvery: f.MarketEvery,
		BossEvery:   f.BossEvery,
		Draw:        Draw{Pool: f.Pool, Min: f.MinEnemies, Max: f.MaxEnemies},
		Boss:        f.Boss,
		Minions:     f.Minions,
	}, nil
}
