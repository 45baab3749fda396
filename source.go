package dumbuno

import "math/rand/v2"

// Source supplies initial hand sizes.
type Source interface {
	// IntRange returns an integer uniformly distributed in [min, max].
	IntRange(min, max int) int
}

// RandSource is a Source backed by a pseudo-random generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a randomly seeded source.
func NewRandSource() *RandSource {
	return &RandSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource creates a deterministic source.
func NewSeededSource(seed uint64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// IntRange returns an integer uniformly distributed in [min, max].
// If max < min, it returns min.
func (s *RandSource) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return s.rng.IntN(max-min+1) + min
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(min, max int) int

// IntRange calls f(min, max).
func (f SourceFunc) IntRange(min, max int) int {
	return f(min, max)
}
