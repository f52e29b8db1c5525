package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/randmat/matrix"
	"github.com/katalvlaran/randmat/random"
	"github.com/stretchr/testify/require"
)

// counter is a Sampler returning 0, 0.125, 0.25, ... to expose draw order.
type counter struct{ n int }

func (c *counter) Uniform() float64 {
	v := float64(c.n) / 8
	c.n++
	return v
}

func TestRandom_RowMajorDrawOrder(t *testing.T) {
	t.Parallel()

	src := &counter{}
	M, err := matrix.Random(2, 3, src)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0.125, 0.25}, {0.375, 0.5, 0.625}}, M)
	require.Equal(t, 6, src.n)
}

func TestRandom_SeededReproducible(t *testing.T) {
	t.Parallel()

	a, err := matrix.Random(4, 7, random.New(random.WithSeed(42)))
	require.NoError(t, err)
	b, err := matrix.Random(4, 7, random.New(random.WithSeed(42)))
	require.NoError(t, err)
	require.Equal(t, a.RawRows(), b.RawRows())

	// Same cells as drawing Uniform() by hand.
	ref := random.New(random.WithSeed(42))
	for i := 0; i < 4; i++ {
		for j := 0; j < 7; j++ {
			v := MustAt(t, a, i, j)
			require.Equal(t, ref.Uniform(), v)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}

	c, err := matrix.Random(4, 7, random.New(random.WithSeed(43)))
	require.NoError(t, err)
	require.NotEqual(t, a.RawRows(), c.RawRows())
}

func TestRandom_InvalidDimensionsDrawNothing(t *testing.T) {
	t.Parallel()

	src := &counter{}
	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {-2, 2}, {math.MaxInt/2 + 1, 2}, {math.MaxInt, math.MaxInt}} {
		_, err := matrix.Random(tc.r, tc.c, src)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
	require.Zero(t, src.n)
}

func TestRandom_NilSourceUsesDefault(t *testing.T) {
	t.Parallel()

	var nilSource *random.Source
	for _, src := range []matrix.Sampler{nil, nilSource} {
		M, err := matrix.Random(2, 2, src)
		require.NoError(t, err)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				v := MustAt(t, M, i, j)
				require.GreaterOrEqual(t, v, 0.0)
				require.Less(t, v, 1.0)
			}
		}
	}
}
