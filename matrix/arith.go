// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynamat/internal/guard"
	"github.com/katalvlaran/dynamat/vector"
)

// checkBinary validates operand sizes in priority order: nil -> empty -> mismatch.
// Row lengths of matrix operands are checked separately by checkShapes.
func checkBinary(op string, a, b int, aNil, bNil bool) error {
	if aNil || bNil {
		return fmt.Errorf("Matrix.%s: %w", op, ErrNilMatrix)
	}
	if err := guard.ValidateNotEmpty(a); err != nil {
		return binaryErrorf(op, a, b, err)
	}
	if err := guard.ValidateNotEmpty(b); err != nil {
		return binaryErrorf(op, a, b, err)
	}
	if err := guard.ValidateSameLen(a, b); err != nil {
		return binaryErrorf(op, a, b, err)
	}

	return nil
}

// checkShapes rejects jagged operands so every binary op fails the same way
// instead of indexing past a shortened row.
func checkShapes[T vector.Number](op string, ms ...*Matrix[T]) error {
	for _, m := range ms {
		if err := m.ValidateShape(); err != nil {
			return fmt.Errorf("Matrix.%s: %w", op, err)
		}
	}

	return nil
}

// MulScalar returns a new matrix with every entry multiplied by s.
// A moved-from matrix yields another empty matrix.
func (m *Matrix[T]) MulScalar(s T) *Matrix[T] {
	rows := make([]vector.Vector[T], m.Size())
	for i := range rows {
		rows[i] = *m.rows[i].MulScalar(s)
	}

	return &Matrix[T]{rows: rows}
}

// MulVec returns the matrix-vector product: out[i] = Row(i) · v.
//
// Errors: ErrDimensionMismatch if v.Size() != m.Size().
// Complexity: O(n²).
func (m *Matrix[T]) MulVec(v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := checkBinary(opMulVec, m.Size(), v.Size(), m == nil, v == nil); err != nil {
		return nil, err
	}
	if err := checkShapes(opMulVec, m); err != nil {
		return nil, err
	}
	out, err := vector.New[T](len(m.rows))
	if err != nil {
		return nil, fmt.Errorf("Matrix.%s: %w", opMulVec, err)
	}
	for i := range m.rows {
		d, err := m.rows[i].Dot(v)
		if err != nil {
			return nil, fmt.Errorf("Matrix.%s: row %d: %w", opMulVec, i, err)
		}
		*out.Index(i) = d
	}

	return out, nil
}

// rowwise applies a row-level binary vector operation to matching rows.
func (m *Matrix[T]) rowwise(op string, other *Matrix[T], f func(a, b *vector.Vector[T]) (*vector.Vector[T], error)) (*Matrix[T], error) {
	if err := checkBinary(op, m.Size(), other.Size(), m == nil, other == nil); err != nil {
		return nil, err
	}
	if err := checkShapes(op, m, other); err != nil {
		return nil, err
	}
	rows := make([]vector.Vector[T], len(m.rows))
	for i := range rows {
		r, err := f(&m.rows[i], &other.rows[i])
		if err != nil {
			return nil, fmt.Errorf("Matrix.%s: row %d: %w", op, i, err)
		}
		rows[i] = *r
	}

	return &Matrix[T]{rows: rows}, nil
}

// Add returns m + other elementwise.
// Errors: ErrDimensionMismatch if sizes differ.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return m.rowwise(opAdd, other, (*vector.Vector[T]).Add)
}

// Sub returns m - other elementwise.
// Errors: ErrDimensionMismatch if sizes differ.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return m.rowwise(opSub, other, (*vector.Vector[T]).Sub)
}

// Mul returns the matrix product m × other.
// Each entry out[i][j] = Σ_k m[i][k]·other[k][j] is accumulated from zero in
// ascending k, so floating-point results are reproducible.
//
// Errors: ErrDimensionMismatch if sizes differ.
// Complexity: O(n³).
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if err := checkBinary(opMul, m.Size(), other.Size(), m == nil, other == nil); err != nil {
		return nil, err
	}
	if err := checkShapes(opMul, m, other); err != nil {
		return nil, err
	}
	n := len(m.rows)
	out, err := New[T](n)
	if err != nil {
		return nil, fmt.Errorf("Matrix.%s: %w", opMul, err)
	}
	for i := 0; i < n; i++ {
		a := &m.rows[i]
		dst := &out.rows[i]
		for j := 0; j < n; j++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += *a.Index(k) * *other.rows[k].Index(j)
			}
			*dst.Index(j) = sum
		}
	}

	return out, nil
}
