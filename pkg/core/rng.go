package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillDensity fills the buffer with 0/1 values, setting each entry to 1
// independently with probability density. Density at or below 0 leaves
// every entry 0; 1 or above sets every entry.
func FillDensity(r *rand.Rand, buf []uint8, density float64) {
	for i := range buf {
		buf[i] = 0
		if density >= 1 || r.Float64() < density {
			buf[i] = 1
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
