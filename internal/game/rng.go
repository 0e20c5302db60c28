package game

import (
	"math/rand/v2"
)

// RNG abstracts random number generation, so tests can pin the shuffles.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

type randRNG struct {
	r *rand.Rand
}

func (r randRNG) Intn(n int) int { return r.r.IntN(n) }

// NewRNG returns an RNG seeded from the runtime's random source.
func NewRNG() RNG {
	return randRNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRNG returns a reproducible RNG: the same seed yields the same batches.
func NewSeededRNG(seed uint64) RNG {
	return randRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle returns a uniformly permuted copy of items (Fisher-Yates).
func Shuffle[T any](rng RNG, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
