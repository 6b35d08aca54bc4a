// SPDX-License-Identifier: MIT

package gonumconv

import (
	"fmt"

	"github.com/katalvlaran/dynamat/internal/guard"
	"github.com/katalvlaran/dynamat/matrix"
	"github.com/katalvlaran/dynamat/vector"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies m into a new n×n *mat.Dense.
//
// Errors:
//   - matrix.ErrEmpty if m is nil or moved-from,
//   - matrix.ErrDimensionMismatch if a row of m was reassigned to another length.
func ToDense[T vector.Floats](m *matrix.Matrix[T]) (*mat.Dense, error) {
	n := m.Size()
	if err := guard.ValidateNotEmpty(n); err != nil {
		return nil, fmt.Errorf("gonumconv.ToDense: %w", err)
	}
	if err := m.ValidateShape(); err != nil {
		return nil, fmt.Errorf("gonumconv.ToDense: %w", err)
	}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		row := m.Row(i)
		for j := 0; j < n; j++ {
			data[i*n+j] = float64(*row.Index(j))
		}
	}

	return mat.NewDense(n, n, data), nil
}

// FromDense copies a square gonum matrix into a new Matrix.
//
// Errors:
//   - matrix.ErrDimensionMismatch if a is not square,
//   - matrix.ErrInvalidSize if a is empty or larger than matrix.MaxSize.
func FromDense[T vector.Floats](a mat.Matrix) (*matrix.Matrix[T], error) {
	r, c := a.Dims()
	if err := guard.ValidateSameLen(r, c); err != nil {
		return nil, fmt.Errorf("gonumconv.FromDense(%dx%d): %w", r, c, err)
	}
	m, err := matrix.New[T](r)
	if err != nil {
		return nil, fmt.Errorf("gonumconv.FromDense: %w", err)
	}
	for i := 0; i < r; i++ {
		row := m.Row(i)
		for j := 0; j < c; j++ {
			*row.Index(j) = T(a.At(i, j))
		}
	}

	return m, nil
}

// ToVecDense copies v into a new *mat.VecDense.
//
// Errors: vector.ErrEmpty if v is nil or moved-from.
func ToVecDense[T vector.Floats](v *vector.Vector[T]) (*mat.VecDense, error) {
	n := v.Size()
	if err := guard.ValidateNotEmpty(n); err != nil {
		return nil, fmt.Errorf("gonumconv.ToVecDense: %w", err)
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(*v.Index(i))
	}

	return mat.NewVecDense(n, data), nil
}

// FromVector copies a gonum vector into a new Vector.
//
// Errors: vector.ErrInvalidSize if a is empty or longer than vector.MaxSize.
func FromVector[T vector.Floats](a mat.Vector) (*vector.Vector[T], error) {
	v, err := vector.New[T](a.Len())
	if err != nil {
		return nil, fmt.Errorf("gonumconv.FromVector: %w", err)
	}
	for i := 0; i < v.Size(); i++ {
		*v.Index(i) = T(a.AtVec(i))
	}

	return v, nil
}
