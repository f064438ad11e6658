package quests

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// SeededRoller is a dice.Roller with a fixed seed, so a catalog replayed
// with the same seed produces the same rooms
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ dice.Roller = (*SeededRoller)(nil)

// NewSeededRoller creates a roller for seed
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- game dice, not crypto
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(size) + 1, nil
}

// RollN rolls count dice of size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}

	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}
