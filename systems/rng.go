// Package systems contains the simulation systems for the world.
package systems

// WorldSeed is the fixed seed used for world generation. Every world built
// from the same seed and dimensions has an identical initial layout.
const WorldSeed uint32 = 42

// LCG constants (Numerical Recipes).
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// LCG is a small linear-congruential generator producing a reproducible
// stream of floats in [0, 1). Not cryptographically secure; uniformity only
// needs to be good enough for visually plausible scatter.
type LCG struct {
	seed  uint32
	state uint32
}

// NewLCG creates a generator with the given seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{seed: seed, state: seed}
}

// Reset restores the generator to its initial seed.
func (r *LCG) Reset() {
	r.state = r.seed
}

// Next returns the next float32 in [0, 1).
func (r *LCG) Next() float32 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	// Top 24 bits keep the value strictly below 1 after float conversion.
	return float32(r.state>>8) * (1.0 / 16777216.0)
}

// Range returns a float32 in [min, max), scaling Next linearly.
// Callers must not assume independence from rounding at the boundaries.
func (r *LCG) Range(min, max float32) float32 {
	return min + r.Next()*(max-min)
}

// Intn returns an int in [0, n). Panics if n is not positive.
func (r *LCG) Intn(n int) int {
	if n <= 0 {
		panic("systems: Intn called with non-positive n")
	}
	return int(r.Next() * float32(n))
}

// IntRange returns an int in [min, max].
func (r *LCG) IntRange(min, max int) int {
	return min + r.Intn(max-min+1)
}

// Chance returns true with probability p.
func (r *LCG) Chance(p float32) bool {
	return r.Next() < p
}
