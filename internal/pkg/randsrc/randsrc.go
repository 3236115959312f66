// Package randsrc provides the seeded pseudo-random source used by the generator.
package randsrc

import (
	"math/rand/v2"
)

// Source is a deterministic PCG-backed generator.
// It is not safe for concurrent use; a generation run owns one Source.
type Source struct {
	seed uint64
	rnd  *rand.Rand
}

// New returns a Source seeded with seed. The same seed always yields the same sequence.
func New(seed uint64) *Source {
	return &Source{
		seed: seed,
		rnd:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.rnd.IntN(n)
}

// Float64 returns a uniform float in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.rnd.Float64()
}
