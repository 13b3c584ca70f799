package core

import "math/rand"

// RandSource is the randomness capability injected into game engines.
// *rand.Rand satisfies it; tests substitute scripted sources.
type RandSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// NewRand returns a seeded RandSource.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}
