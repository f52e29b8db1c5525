// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_random.go: matrices with independently sampled uniform cells.

package matrix

import "github.com/katalvlaran/randmat/random"

// Random returns a rows×cols matrix whose cells are drawn independently from
// src.Uniform(), in row-major order (cell (i,j) is draw number i*cols+j).
// A nil src, including a nil *random.Source, uses random.Default(), the
// package-level shared source.
//
// Determinism:
//   - For a *random.Source with a fixed seed, the result is reproducible.
//
// Errors:
//   - ErrInvalidDimensions for any shape NewDense rejects (nothing is drawn).
//
// Complexity:
//   - Time O(r*c), Space O(r*c); exactly r*c draws.
func Random(rows, cols int, src Sampler) (*Dense, error) {
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	if s, ok := src.(*random.Source); src == nil || (ok && s == nil) {
		src = random.Default()
	}
	for idx := range res.data {
		res.data[idx] = src.Uniform()
	}

	return res, nil
}
