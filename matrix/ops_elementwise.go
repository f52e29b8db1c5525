// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) shared by public ops.
//   - Keep all loops deterministic with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels); callers validate non-nil.
//   - Fixed loop orders (i→j or flat 0..n-1). One output allocation, O(r*c).

package matrix

import "math"

// ewShift computes out[i,j] = X[i,j] + delta.
// Time: O(r*c). Space: O(r*c).
func ewShift(X Matrix, delta float64) (*Dense, error) {
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = v + delta
		}
		return out, nil
	}

	// Generic fallback via At.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, e
			}
			out.data[i*c+j] = v + delta
		}
	}
	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; AllClose rejects non-finite ones.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough reports |a-b| ≤ atol + rtol*|b|. Exact equality always passes,
// so equal infinities compare close; any NaN compares not close.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
