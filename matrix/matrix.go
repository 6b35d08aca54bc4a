// SPDX-License-Identifier: MIT

// Package matrix - square storage as a sequence of owned row vectors.
//
// Complexity quicksheet:
//   - New/Clone/Equal: O(n²); Transfer/Swap: O(1); Row/RowAt/At/Set: O(1).
package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynamat/internal/guard"
	"github.com/katalvlaran/dynamat/vector"
)

// Matrix is a dense n×n matrix of T stored as n row vectors of length n.
// A Matrix is not safe for concurrent mutation; callers serialize access.
type Matrix[T vector.Number] struct {
	rows []vector.Vector[T] // exclusively owned; nil only after a transfer
}

var _ fmt.Stringer = (*Matrix[int])(nil)

const panicNilSwap = "matrix: Swap requires two non-nil matrices"

// New returns a size×size zero matrix.
//
// Errors:
//   - ErrInvalidSize if size <= 0 or size > MaxSize.
//
// Complexity: O(size²) time and memory.
func New[T vector.Number](size int) (*Matrix[T], error) {
	if err := guard.ValidateSize(size, MaxSize); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opNew, size, err)
	}
	rows := make([]vector.Vector[T], size)
	for i := range rows {
		row, err := vector.New[T](size)
		if err != nil {
			return nil, fmt.Errorf("%s(%d): row %d: %w", opNew, size, i, err)
		}
		rows[i] = *row
	}

	return &Matrix[T]{rows: rows}, nil
}

// FromRows builds a matrix holding a copy of the given row-major literals.
//
// Errors:
//   - ErrInvalidSize if len(rows) is 0 or exceeds MaxSize,
//   - ErrDimensionMismatch if any row length differs from len(rows).
func FromRows[T vector.Number](rows [][]T) (*Matrix[T], error) {
	n := len(rows)
	if err := guard.ValidateSize(n, MaxSize); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opFromRows, n, err)
	}
	out := make([]vector.Vector[T], n)
	for i, r := range rows {
		if err := guard.ValidateSameLen(len(r), n); err != nil {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w", opFromRows, i, len(r), n, err)
		}
		row, err := vector.NewFrom(r, n)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opFromRows, i, err)
		}
		out[i] = *row
	}

	return &Matrix[T]{rows: out}, nil
}

// Identity returns the size×size identity matrix.
func Identity[T vector.Number](size int) (*Matrix[T], error) {
	m, err := New[T](size)
	if err != nil {
		return nil, err
	}
	for i := range m.rows {
		*m.rows[i].Index(i) = 1
	}

	return m, nil
}

// Must returns m or panics if err is non-nil. Intended for literals in
// examples and tests.
func Must[T vector.Number](m *Matrix[T], err error) *Matrix[T] {
	if err != nil {
		panic(err)
	}

	return m
}

// Size returns the side length. A moved-from (or nil) matrix has size 0.
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Row returns row i without a bounds check of its own; an invalid i panics
// with a runtime index error. Nested access reads as m.Row(i).Index(j).
func (m *Matrix[T]) Row(i int) *vector.Vector[T] {
	return &m.rows[i]
}

// RowAt returns row i.
// Errors: ErrOutOfRange if i < 0 or i >= Size().
func (m *Matrix[T]) RowAt(i int) (*vector.Vector[T], error) {
	if err := guard.ValidateIndex(i, m.Size()); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", opRowAt, i, err)
	}

	return &m.rows[i], nil
}

// At returns the element at (i, j).
// Errors: ErrOutOfRange if either index is outside [0, Size()) or past the
// end of a reassigned row.
func (m *Matrix[T]) At(i, j int) (T, error) {
	var zero T
	if err := m.checkCell(i, j); err != nil {
		return zero, matrixErrorf(opAt, i, j, err)
	}

	return *m.rows[i].Index(j), nil
}

// Set assigns x at (i, j).
// Errors: ErrOutOfRange if either index is outside [0, Size()).
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := m.checkCell(i, j); err != nil {
		return matrixErrorf(opSet, i, j, err)
	}
	*m.rows[i].Index(j) = x

	return nil
}

func (m *Matrix[T]) checkCell(i, j int) error {
	n := m.Size()
	if err := guard.ValidateIndex(i, n); err != nil {
		return err
	}
	if err := guard.ValidateIndex(j, n); err != nil {
		return err
	}

	// a reassigned row may be shorter than n
	return guard.ValidateIndex(j, m.rows[i].Size())
}

// ValidateShape returns ErrDimensionMismatch if any row no longer holds
// exactly Size() elements. Only reassigning a row handle (Assign,
// AssignTransfer, Transfer or Swap on the result of Row/RowAt) can cause that.
// Complexity: O(n).
func (m *Matrix[T]) ValidateShape() error {
	n := m.Size()
	for i := 0; i < n; i++ {
		if err := guard.ValidateSameLen(m.rows[i].Size(), n); err != nil {
			return fmt.Errorf("Matrix.%s: row %d has %d elements, want %d: %w",
				opShape, i, m.rows[i].Size(), n, err)
		}
	}

	return nil
}

// Slices returns a row-major copy of the entries.
func (m *Matrix[T]) Slices() [][]T {
	out := make([][]T, m.Size())
	for i := range out {
		out[i] = m.rows[i].Slice()
	}

	return out
}

// Clone returns a deep copy; every row is copied independently.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m.Size() == 0 {
		return &Matrix[T]{}
	}
	rows := make([]vector.Vector[T], len(m.rows))
	for i := range rows {
		rows[i] = *m.rows[i].Clone()
	}

	return &Matrix[T]{rows: rows}
}

// Transfer moves m's rows into a new Matrix in O(1), leaving m empty.
// Transferring from a nil matrix yields an empty one.
func (m *Matrix[T]) Transfer() *Matrix[T] {
	if m == nil {
		return &Matrix[T]{}
	}
	out := &Matrix[T]{rows: m.rows}
	m.rows = nil

	return out
}

// Swap exchanges the storage of m and other in O(1).
// A nil receiver or argument is a programming error and panics.
func (m *Matrix[T]) Swap(other *Matrix[T]) {
	if m == nil || other == nil {
		panic(panicNilSwap)
	}
	m.rows, other.rows = other.rows, m.rows
}

// Assign replaces m's contents with a deep copy of src; m takes src's size.
// Self-assignment is a no-op.
//
// Errors: ErrNilMatrix if src is nil.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if src == nil {
		return fmt.Errorf("Matrix.Assign: %w", ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	tmp := src.Clone()
	m.Swap(tmp)

	return nil
}

// AssignTransfer moves src's storage into m in O(1), leaving src empty.
// Self-assignment is a no-op.
//
// Errors: ErrNilMatrix if src is nil.
func (m *Matrix[T]) AssignTransfer(src *Matrix[T]) error {
	if src == nil {
		return fmt.Errorf("Matrix.AssignTransfer: %w", ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	m.rows = src.rows
	src.rows = nil

	return nil
}

// Equal reports whether both matrices have the same size and equal rows.
// It never fails; two nil matrices are equal.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(&other.rows[i]) {
			return false
		}
	}

	return true
}
