package bot

import (
	"fmt"
	"math/rand"
)

// NewBrain creates a strategy for the given difficulty tier. The rng drives
// the easy bot's randomness; passing a seeded source makes its play
// reproducible.
func NewBrain(difficulty string, rng *rand.Rand) (Brain, error) {
	switch difficulty {
	case DifficultyEasy:
		return &EasyBot{rng: rng}, nil
	case DifficultyMedium:
		return &MediumBot{}, nil
	case DifficultyHard:
		return &HardBot{tuning: DefaultTuning}, nil
	default:
		return nil, fmt.Errorf("unknown bot difficulty: %q", difficulty)
	}
}
