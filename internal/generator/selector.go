package generator

import (
	"math/rand/v2"

	"github.com/meltforce/fitplan/internal/models"
)

// RNG draws a uniform index in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type RNG interface {
	IntN(n int) int
}

// NewSeededRNG returns a deterministic source for reproducible plans.
func NewSeededRNG(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRNG returns a non-deterministic source. Each call gets its own
// generator, so concurrent generations never share state.
func NewRNG() RNG {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Select samples up to count exercises from pool without replacement. When
// the pool holds fewer than count items, all of them are returned in random
// order; the caller detects the shortfall from the length. pool is not
// modified.
func Select(pool []models.ExerciseDefinition, count int, rng RNG) []models.ExerciseDefinition {
	if count <= 0 || len(pool) == 0 {
		return nil
	}
	remaining := make([]models.ExerciseDefinition, len(pool))
	copy(remaining, pool)

	n := min(count, len(remaining))
	selected := make([]models.ExerciseDefinition, 0, n)
	for len(selected) < n {
		i := rng.IntN(len(remaining))
		selected = append(selected, remaining[i])
		remaining[i] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
	return selected
}
