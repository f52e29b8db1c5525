// SPDX-License-Identifier: MIT
// Package: random
//
// bounded.go: unbiased int64 sampling in [0, n).
//
// Algorithm:
//   • Power of two (n&(n-1) == 0): mask one full-width draw with n-1.
//     Masking keeps the low bits, each of which is uniform, so the result
//     is exactly uniform.
//   • Otherwise: u = draw>>1 is uniform in [0, 2^63). r = u % n is accepted
//     unless u falls in the final, incomplete block of n values below 2^63,
//     i.e. unless (u - r) + (n - 1) > MaxInt64. Rejected draws are replaced.
//     At most half of [0, 2^63) is ever rejected, so the expected number of
//     draws is below 2.
//
// The acceptance test is evaluated in uint64: u-r <= MaxInt64 and
// n-1 < MaxInt64, so the comparison never wraps.

package random

import "math"

// source64 is the full-width bit source int64n needs (*rand.Rand satisfies it).
type source64 interface {
	Uint64() uint64
}

// int64n returns a uniform value in [0, n). n must be > 0 (checked by callers).
// Complexity: O(1) expected; each iteration succeeds with probability > 1/2.
func int64n(src source64, n int64) int64 {
	un := uint64(n)

	// Fast path: power of two.
	if un&(un-1) == 0 {
		return int64(src.Uint64() & (un - 1))
	}

	// Largest multiple-of-n block start that still fits a full block below 2^63.
	limit := uint64(math.MaxInt64) - (un - 1)

	u := src.Uint64() >> 1
	r := u % un
	for u-r > limit { // biased tail: redraw
		u = src.Uint64() >> 1
		r = u % un
	}

	return int64(r)
}
