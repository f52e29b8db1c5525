// Package matrix provides dense 2-D float64 matrices and the basic linear
// algebra used around them.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked At/Set that return errors
//     instead of panicking.
//   - Constructors: NewDense (zeros), NewDenseFrom (copy of [][]float64),
//     NewIdentity, and Random (cells drawn from a uniform sampler).
//   - Operations: Add, Sub, SubScalar, Dot, Transpose, AllClose.
//
// Every operation allocates a fresh result; operands are never mutated.
// Shape errors are reported with ErrDimensionMismatch and are never repaired.
//
// All kernels take a flat-slice fast path when operands are *Dense and fall
// back to At/Set for any other Matrix implementation.
package matrix
