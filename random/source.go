// SPDX-License-Identifier: MIT
// Package: random
//
// source.go: Source: seed + generator, guarded by a mutex.
//
// Determinism:
//   • The generator is rand.New(rand.NewSource(seed)); a fixed seed yields a
//     fixed stream for any fixed sequence of calls.
//   • SetSeed swaps seed and generator together under the lock, so no draw
//     can observe a new seed paired with the old stream.

package random

import (
	"math"
	"math/rand"
	"strconv"
	"sync"
)

// Source is a seedable uniform random source. Safe for concurrent use.
type Source struct {
	mu   sync.Mutex
	seed int64      // last seed applied
	rng  *rand.Rand // generator derived from seed; replaced on SetSeed
}

// New returns a Source seeded per opts (clock seed by default).
func New(opts ...Option) *Source {
	cfg := newSourceConfig(opts...)

	return &Source{
		seed: cfg.seed,
		rng:  newGenerator(cfg.seed),
	}
}

// newGenerator is the single place the generator algorithm is chosen.
func newGenerator(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SetSeed replaces the seed and the generator with a fresh one seeded by s.
// Subsequent draws reflect only the new stream.
func (s *Source) SetSeed(seed int64) {
	rng := newGenerator(seed) // build outside the lock

	s.mu.Lock()
	s.seed = seed
	s.rng = rng
	s.mu.Unlock()
}

// Seed returns the last seed applied. It does not consume randomness.
func (s *Source) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seed
}

// Uniform returns a float64 drawn uniformly from [0, 1).
func (s *Source) Uniform() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}

// UniformInt returns an int32 drawn uniformly from [0, n).
// Returns ErrInvalidArgument when n <= 0.
func (s *Source) UniformInt(n int32) (int32, error) {
	if n <= 0 {
		return 0, randomErrorf(opUniformInt, strconv.FormatInt(int64(n), 10), ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Int31n(n), nil
}

// UniformInt64 returns an int64 drawn uniformly from [0, n) with no modulo
// bias. Returns ErrInvalidArgument when n <= 0. See int64n for the algorithm.
func (s *Source) UniformInt64(n int64) (int64, error) {
	if n <= 0 {
		return 0, randomErrorf(opUniformInt64, strconv.FormatInt(n, 10), ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return int64n(s.rng, n), nil
}

// UniformRange returns a float64 drawn uniformly from [a, b) as a + u*(b-a).
// Returns ErrInvalidArgument unless a < b and both endpoints are finite.
//
// When b-a overflows, the draw is computed as a*(1-u) + b*u instead. A result
// rounded up to b (possible for intervals a few ULPs wide) is replaced by the
// largest float64 below b.
func (s *Source) UniformRange(a, b float64) (float64, error) {
	if !(a < b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0, randomErrorf(opUniformRange, formatRange(a, b), ErrInvalidArgument)
	}

	u := s.Uniform()
	var v float64
	if w := b - a; !math.IsInf(w, 0) {
		v = a + u*w
	} else {
		v = a*(1-u) + b*u
	}
	if v >= b {
		v = math.Nextafter(b, a)
	}

	return v, nil
}

// formatRange renders both interval endpoints for error messages.
func formatRange(a, b float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64) + ", " + strconv.FormatFloat(b, 'g', -1, 64)
}
