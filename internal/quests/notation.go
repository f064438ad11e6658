package quests

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
)

var damageNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)(?:\+(\d+))?$`)

// ParseDamage parses dice notation like "2d6" or "1d8+2"
func ParseDamage(notation string) (entities.DamageDice, error) {
	matches := damageNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 4 {
		return entities.DamageDice{}, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY or XdY+Z)", notation)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return entities.DamageDice{}, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err := strconv.Atoi(matches[2])
	if err != nil {
		return entities.DamageDice{}, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return entities.DamageDice{}, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	bonus := 0
	if matches[3] != "" {
		bonus, err = strconv.Atoi(matches[3])
		if err != nil {
			return entities.DamageDice{}, errors.InvalidArgumentf("invalid bonus in notation: %s", notation)
		}
	}

	return entities.DamageDice{Count: count, Size: size, Bonus: bonus}, nil
}
