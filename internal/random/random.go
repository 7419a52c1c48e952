// Package random provides an abstraction over random draws to enable
// deterministic testing.
package random

import "math/rand/v2"

// Source provides the random draws the excuse engine consumes.
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// Float64 returns a uniformly distributed value in [0, 1).
	Float64() float64

	// IntN returns a uniformly distributed value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// PCGSource implements Source using math/rand/v2's PCG generator.
type PCGSource struct {
	rng *rand.Rand
}

// NewSeeded creates a PCGSource whose sequence is fully determined by seed.
func NewSeeded(seed uint64) *PCGSource {
	return &PCGSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// New creates a PCGSource seeded from the runtime's random state.
func New() *PCGSource {
	return &PCGSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Float64 returns a uniformly distributed value in [0, 1).
func (s *PCGSource) Float64() float64 {
	return s.rng.Float64()
}

// IntN returns a uniformly distributed value in [0, n).
func (s *PCGSource) IntN(n int) int {
	return s.rng.IntN(n)
}

// FakeSource implements Source by replaying scripted values for testing.
// Once a script is exhausted its last value repeats; an empty script
// yields zero.
type FakeSource struct {
	floats []float64
	ints   []int

	FloatCalls int
	IntCalls   int
}

// NewFakeSource creates a FakeSource that replays floats from Float64 and
// ints from IntN.
func NewFakeSource(floats []float64, ints []int) *FakeSource {
	return &FakeSource{floats: floats, ints: ints}
}

// Float64 returns the next scripted float.
func (s *FakeSource) Float64() float64 {
	s.FloatCalls++
	return next(s.floats, s.FloatCalls-1)
}

// IntN returns the next scripted int reduced modulo n.
func (s *FakeSource) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	s.IntCalls++
	return next(s.ints, s.IntCalls-1) % n
}

func next[T any](script []T, i int) T {
	var zero T
	if len(script) == 0 {
		return zero
	}
	if i >= len(script) {
		return script[len(script)-1]
	}
	return script[i]
}
