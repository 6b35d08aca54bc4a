// SPDX-License-Identifier: MIT

// Package vector - Vector storage, ownership & checked accessors.
//
// Purpose:
//   - Own a contiguous buffer exclusively; copies are deep (Clone, Assign),
//     moves are O(1) and leave the source empty (Transfer, AssignTransfer).
//   - Keep both accessor flavours: Index is the caller-validated fast path,
//     At/Set/Ref are checked and return ErrOutOfRange.
//   - Fixed ascending-index loops everywhere for reproducible floating-point results.
//
// Complexity quicksheet:
//   - New/NewFrom/Clone: O(n); Transfer/Swap: O(1); At/Set/Index: O(1).
package vector

import (
	"fmt"

	"github.com/katalvlaran/dynamat/internal/guard"
)

const (
	panicNilBuffer   = "vector: NewFrom requires a non-nil buffer"
	panicShortBuffer = "vector: NewFrom buffer shorter than requested size"
	panicNilSwap     = "vector: Swap requires two non-nil vectors"
)

// Vector is a dense, dynamically sized vector of T.
// A Vector is not safe for concurrent mutation; callers serialize access.
type Vector[T Number] struct {
	data []T // exclusively owned, len(data) == Size(); nil only after a transfer
}

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer = (*Vector[int])(nil)
	_ fmt.Scanner  = (*Vector[int])(nil)
)

// New returns a vector of size zero-valued elements.
//
// Errors:
//   - ErrInvalidSize if size <= 0 or size > MaxSize.
//
// Complexity: O(size) time and memory.
func New[T Number](size int) (*Vector[T], error) {
	if err := guard.ValidateSize(size, MaxSize); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opNew, size, err)
	}

	return &Vector[T]{data: make([]T, size)}, nil
}

// NewFrom copies the first size elements of buf into a new vector.
// A nil buf, or one shorter than size, is a programming error and panics.
// The size check runs first, so an invalid size never reaches the buffer checks.
func NewFrom[T Number](buf []T, size int) (*Vector[T], error) {
	if err := guard.ValidateSize(size, MaxSize); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opNewFrom, size, err)
	}
	if buf == nil {
		panic(panicNilBuffer)
	}
	if len(buf) < size {
		panic(panicShortBuffer)
	}
	data := make([]T, size)
	copy(data, buf[:size])

	return &Vector[T]{data: data}, nil
}

// Of builds a vector holding a copy of elems.
// Returns ErrInvalidSize when elems is empty.
func Of[T Number](elems ...T) (*Vector[T], error) {
	return NewFrom(elems, len(elems))
}

// Must returns v or panics if err is non-nil. Intended for literals in
// examples and tests.
func Must[T Number](v *Vector[T], err error) *Vector[T] {
	if err != nil {
		panic(err)
	}

	return v
}

// Size returns the element count. A moved-from (or nil) vector has size 0.
func (v *Vector[T]) Size() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// Index returns a pointer to element i without a bounds check of its own.
// The caller must have validated 0 <= i < Size(); an invalid i panics with a
// runtime index error. The pointer is valid until the next assignment to v.
func (v *Vector[T]) Index(i int) *T {
	return &v.data[i]
}

// At returns element i.
// Errors: ErrOutOfRange if i < 0 or i >= Size().
func (v *Vector[T]) At(i int) (T, error) {
	if err := guard.ValidateIndex(i, v.Size()); err != nil {
		var zero T
		return zero, vectorErrorf(opAt, i, err)
	}

	return v.data[i], nil
}

// Set assigns x to element i.
// Errors: ErrOutOfRange if i < 0 or i >= Size().
func (v *Vector[T]) Set(i int, x T) error {
	if err := guard.ValidateIndex(i, v.Size()); err != nil {
		return vectorErrorf(opSet, i, err)
	}
	v.data[i] = x

	return nil
}

// Ref is the checked counterpart of Index.
// Errors: ErrOutOfRange if i < 0 or i >= Size().
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := guard.ValidateIndex(i, v.Size()); err != nil {
		return nil, vectorErrorf(opRef, i, err)
	}

	return &v.data[i], nil
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.Size())
	if v != nil {
		copy(out, v.data)
	}

	return out
}

// Clone returns a deep copy with independent storage.
// Cloning a moved-from vector yields another empty vector.
func (v *Vector[T]) Clone() *Vector[T] {
	if v.Size() == 0 {
		return &Vector[T]{}
	}
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{data: data}
}

// Transfer moves v's storage into a new Vector in O(1).
// v is left empty (Size()==0) and may only be used as an assignment target.
// Transferring from a nil vector yields an empty one.
func (v *Vector[T]) Transfer() *Vector[T] {
	if v == nil {
		return &Vector[T]{}
	}
	out := &Vector[T]{data: v.data}
	v.data = nil

	return out
}

// Swap exchanges the storage of v and other in O(1).
// A nil receiver or argument is a programming error and panics.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == nil || other == nil {
		panic(panicNilSwap)
	}
	v.data, other.data = other.data, v.data
}

// Assign replaces v's contents with a deep copy of src; v takes src's size.
// Self-assignment is a no-op. The new buffer is fully built before v changes.
//
// Errors: ErrNilVector if src is nil.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == nil {
		return fmt.Errorf("Vector.Assign: %w", ErrNilVector)
	}
	if v == src {
		return nil
	}
	tmp := src.Clone()
	v.Swap(tmp)

	return nil
}

// AssignTransfer moves src's storage into v in O(1), leaving src empty.
// v's previous storage is released. Self-assignment is a no-op.
//
// Errors: ErrNilVector if src is nil.
func (v *Vector[T]) AssignTransfer(src *Vector[T]) error {
	if src == nil {
		return fmt.Errorf("Vector.AssignTransfer: %w", ErrNilVector)
	}
	if v == src {
		return nil
	}
	v.data = src.data
	src.data = nil

	return nil
}

// Equal reports whether v and other have the same size and equal elements.
// It never fails; size mismatch or a nil operand simply yields false
// (two nil vectors are equal).
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v == nil || other == nil {
		return v == other
	}
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}

	return true
}
