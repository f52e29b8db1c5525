// SPDX-License-Identifier: MIT

// Package random provides a seedable, reproducible uniform random source.
//
// What & Why:
//
//	Source pairs a seed with a math/rand generator derived from it. For a fixed
//	seed every sampling sequence is reproducible, which is what tests, fixtures
//	and simulations need. Reseeding replaces the generator wholesale; nothing is
//	carried over from the previous stream.
//
// Sampling primitives:
//
//   - Uniform     : float64 in [0, 1).
//   - UniformInt  : int32 in [0, n), delegated to the generator's Int31n.
//   - UniformInt64: int64 in [0, n) without modulo bias: a bitmask when n is a
//     power of two, rejection sampling otherwise (expected draws < 2).
//   - UniformRange: float64 in [a, b).
//
// Concurrency:
//
//	A *Source guards its seed and generator with a mutex, so it may be shared.
//	The package-level functions (SetSeed, Uniform, ...) operate on a single
//	clock-seeded default Source; prefer an explicit Source for reproducible
//	code paths.
//
// Errors:
//
//	Invalid bounds return ErrInvalidArgument wrapped with the offending value(s);
//	match with errors.Is.
package random
