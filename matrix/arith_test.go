// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dynamat/matrix"
	"github.com/katalvlaran/dynamat/vector"
	"github.com/stretchr/testify/require"
)

func TestAddSub_EqualSize(t *testing.T) {
	t.Parallel()

	m1 := mustNew(t, 2)
	*m1.Row(0).Index(0) = 6
	*m1.Row(1).Index(1) = 12
	m2 := mustNew(t, 2)
	*m2.Row(0).Index(0) = 4
	*m2.Row(1).Index(1) = 8

	sum, err := m1.Add(m2)
	require.NoError(t, err)
	require.Equal(t, 10, at(sum, 0, 0))
	require.Equal(t, 20, at(sum, 1, 1))

	m := mustRows(t, [][]int{{15, 0}, {0, 30}})
	d := mustRows(t, [][]int{{5, 0}, {0, 10}})
	diff, err := m.Sub(d)
	require.NoError(t, err)
	require.Equal(t, [][]int{{10, 0}, {0, 20}}, diff.Slices())

	back, err := sum.Sub(m2)
	require.NoError(t, err)
	require.True(t, back.Equal(m1))
}

func TestBinaryOps_DimensionMismatch(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 3)
	m1 := mustNew(t, 4)

	_, err := m.Add(m1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.Sub(m1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.Mul(m1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	v := vector.Must(vector.New[int](4))
	_, err = m.MulVec(v)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch) // shared sentinel
}

func TestBinaryOps_NilAndEmpty(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 2)
	_, err := m.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.MulVec(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	moved := mustNew(t, 2)
	_ = moved.Transfer()
	_, err = m.Mul(moved)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	require.Equal(t, 0, moved.MulScalar(3).Size())
}

func TestMulScalar(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]int{{1, 2}, {3, 4}})
	got := m.MulScalar(3)
	require.Equal(t, [][]int{{3, 6}, {9, 12}}, got.Slices())
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Slices()) // source unmodified
}

func TestMulVec(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]int{{1, 2}, {3, 4}})

	got, err := m.MulVec(vector.Must(vector.Of(1, 0)))
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, got.Slice()) // column 0

	got, err = m.MulVec(vector.Must(vector.Of(5, 6)))
	require.NoError(t, err)
	require.Equal(t, []int{17, 39}, got.Slice())
}

func TestMulVec_UnitVectorSelectsColumn(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	for j := 0; j < 3; j++ {
		e := vector.Must(vector.New[int](3))
		*e.Index(j) = 1
		got, err := m.MulVec(e)
		require.NoError(t, err)
		require.Equal(t, []int{at(m, 0, j), at(m, 1, j), at(m, 2, j)}, got.Slice(), "column %d", j)
	}
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{5, 6}, {7, 8}})

	got, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{19, 22}, {43, 50}}, got.Slices())

	// Not commutative.
	rev, err := b.Mul(a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{23, 34}, {31, 46}}, rev.Slices())
}

func TestMul_Identity(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{2, -1, 0}, {4, 3, 1}, {0, 7, 5}})
	id := matrix.Must(matrix.Identity[int](3))

	left, err := id.Mul(a)
	require.NoError(t, err)
	require.True(t, left.Equal(a))

	right, err := a.Mul(id)
	require.NoError(t, err)
	require.True(t, right.Equal(a))
}

func TestMul_AscendingAccumulation(t *testing.T) {
	t.Parallel()

	// Row [1, 1e16, -1e16] times a column of ones: index-order summation gives 0.
	a, err := matrix.FromRows([][]float64{
		{1, 1e16, -1e16},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	ones, err := matrix.FromRows([][]float64{{1, 0, 0}, {1, 0, 0}, {1, 0, 0}})
	require.NoError(t, err)

	got, err := a.Mul(ones)
	require.NoError(t, err)
	require.Equal(t, 0.0, at(got, 0, 0))
}

func TestBinaryOps_JaggedRow(t *testing.T) {
	t.Parallel()

	jagged := func(t *testing.T) *matrix.Matrix[int] {
		m := mustRows(t, [][]int{{1, 2}, {3, 4}})
		require.NoError(t, m.Row(0).Assign(vector.Must(vector.Of(1))))
		return m
	}
	square := mustRows(t, [][]int{{1, 0}, {0, 1}})
	x := vector.Must(vector.Of(1, 1))

	cases := []struct {
		name string
		op   func(m *matrix.Matrix[int]) error
	}{
		{"mul", func(m *matrix.Matrix[int]) error {
			_, err := m.Mul(square)

			return err
		}},
		{"mul rhs", func(m *matrix.Matrix[int]) error {
			_, err := square.Mul(m)

			return err
		}},
		{"add", func(m *matrix.Matrix[int]) error {
			_, err := m.Add(square)

			return err
		}},
		{"sub rhs", func(m *matrix.Matrix[int]) error {
			_, err := square.Sub(m)

			return err
		}},
		{"mulvec", func(m *matrix.Matrix[int]) error {
			_, err := m.MulVec(x)

			return err
		}},
		{"shape", func(m *matrix.Matrix[int]) error { return m.ValidateShape() }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := jagged(t)
			var err error
			require.NotPanics(t, func() { err = tc.op(m) })
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}
}

func TestAtSet_JaggedRow(t *testing.T) {
	t.Parallel()

	m := mustNew(t, 3)
	require.NoError(t, m.Row(2).Assign(vector.Must(vector.Of(1, 2))))

	_, err := m.At(2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 2, 9), matrix.ErrOutOfRange)

	x, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 2, x)
}
