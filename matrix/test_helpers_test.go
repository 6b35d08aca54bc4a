// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dynamat/matrix"
	"github.com/stretchr/testify/require"
)

// mustNew allocates an n×n int matrix or fails the test.
func mustNew(t testing.TB, n int) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.New[int](n)
	require.NoError(t, err)

	return m
}

// mustRows builds a matrix from row-major literals or fails the test.
func mustRows(t testing.TB, rows [][]int) *matrix.Matrix[int] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// at reads (i, j) through the nested row accessor.
func at[T int | float64](m *matrix.Matrix[T], i, j int) T {
	return *m.Row(i).Index(j)
}
