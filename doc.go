// Package randmat is a small toolkit for reproducible randomness and dense
// matrix arithmetic.
//
// What is inside?
//
//	random/: seedable uniform source: Uniform, UniformInt, UniformInt64
//	          (unbiased, rejection-sampled), UniformRange; explicit *Source
//	          values plus mutex-guarded package-level functions.
//	matrix/: row-major Dense matrices: NewDense, NewDenseFrom, NewIdentity,
//	          Random, Add, Sub, SubScalar, Dot, Transpose, AllClose.
//
// Quick example:
//
//	src := random.New(random.WithSeed(42))
//	a, _ := matrix.Random(3, 3, src)
//	i, _ := matrix.NewIdentity(3)
//	p, _ := matrix.Dot(i, a) // p == a
//
// Every operation returns errors (never panics on user input) and allocates
// a fresh result.
//
//	go get github.com/katalvlaran/randmat
package randmat
