package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/randmat/matrix"
	"github.com/katalvlaran/randmat/random"
)

func ExampleDot() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFrom([][]float64{{5, 6}, {7, 8}})

	sum, _ := matrix.Add(a, b)
	prod, _ := matrix.Dot(a, b)
	fmt.Print(sum)
	fmt.Print(prod)

	c, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}})
	_, err := matrix.Dot(c, a)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// [6, 8]
	// [10, 12]
	// [19, 22]
	// [43, 50]
	// true
}

func ExampleRandom() {
	m, _ := matrix.Random(2, 3, random.New(random.WithSeed(7)))
	t, _ := matrix.Transpose(m)
	fmt.Println(t.Rows(), t.Cols())
	// Output: 3 2
}

func ExampleSubScalar() {
	m, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	r, _ := matrix.SubScalar(1, m)
	fmt.Print(r)
	// Output:
	// [0, 1]
	// [2, 3]
}
