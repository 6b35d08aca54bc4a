// SPDX-License-Identifier: MIT

package gonumconv_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynamat/gonumconv"
	"github.com/katalvlaran/dynamat/matrix"
	"github.com/katalvlaran/dynamat/vector"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

// randMatrix fills an n×n matrix deterministically from seed.
func randMatrix(t *testing.T, n int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.New[float64](n)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

func TestDenseRoundTrip(t *testing.T) {
	t.Parallel()

	m := matrix.Must(matrix.FromRows([][]float64{{1, 2}, {3, 4}}))

	d, err := gonumconv.ToDense(m)
	require.NoError(t, err)
	require.Equal(t, 3.0, d.At(1, 0))

	d.Set(1, 0, 30) // conversions copy
	require.Equal(t, 3.0, *m.Row(1).Index(0))

	back, err := gonumconv.FromDense[float64](d)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {30, 4}}, back.Slices())
}

func TestFromDense_Errors(t *testing.T) {
	t.Parallel()

	_, err := gonumconv.FromDense[float64](mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = gonumconv.FromDense[float64](&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrInvalidSize)
}

func TestToDense_Empty(t *testing.T) {
	t.Parallel()

	m := matrix.Must(matrix.New[float64](2))
	_ = m.Transfer()
	_, err := gonumconv.ToDense(m)
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestVecRoundTrip(t *testing.T) {
	t.Parallel()

	v := vector.Must(vector.Of[float32](1.5, -2, 4))

	d, err := gonumconv.ToVecDense(v)
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())

	back, err := gonumconv.FromVector[float32](d)
	require.NoError(t, err)
	require.True(t, back.Equal(v))

	_, err = gonumconv.ToVecDense[float64](nil)
	require.ErrorIs(t, err, vector.ErrEmpty)
}

// gonum's BLAS-backed products are an independent oracle for Mul and MulVec.
func TestMul_MatchesGonum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 8, 17} {
		a := randMatrix(t, n, int64(n))
		b := randMatrix(t, n, int64(100+n))

		got, err := a.Mul(b)
		require.NoError(t, err)

		da, err := gonumconv.ToDense(a)
		require.NoError(t, err)
		db, err := gonumconv.ToDense(b)
		require.NoError(t, err)
		var want mat.Dense
		want.Mul(da, db)

		dg, err := gonumconv.ToDense(got)
		require.NoError(t, err)
		require.True(t, floats.EqualApprox(dg.RawMatrix().Data, want.RawMatrix().Data, tol), "n=%d", n)
	}
}

func TestMulVec_MatchesGonum(t *testing.T) {
	t.Parallel()

	a := randMatrix(t, 9, 7)
	x := a.Row(3).Clone()

	got, err := a.MulVec(x)
	require.NoError(t, err)

	da, err := gonumconv.ToDense(a)
	require.NoError(t, err)
	dx, err := gonumconv.ToVecDense(x)
	require.NoError(t, err)
	var want mat.VecDense
	want.MulVec(da, dx)

	require.True(t, floats.EqualApprox(got.Slice(), want.RawVector().Data, tol))
}

func TestToDense_JaggedRow(t *testing.T) {
	t.Parallel()

	m := matrix.Must(matrix.New[float64](2))
	require.NoError(t, m.Row(0).Assign(vector.Must(vector.Of(1.0, 2.0, 3.0))))

	_, err := gonumconv.ToDense(m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
