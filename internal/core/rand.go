package core

import "math/rand"

// Rand is the randomness source games draw from. *rand.Rand satisfies it;
// tests substitute fixed sequences to assert exact outcomes.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRand returns a seeded pseudo-random source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
