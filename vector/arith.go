// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/dynamat/internal/guard"
)

// mapScalar returns a new vector with out[i] = f(v[i]); v is unchanged.
func (v *Vector[T]) mapScalar(f func(T) T) *Vector[T] {
	out := &Vector[T]{data: make([]T, v.Size())}
	for i := range out.data {
		out.data[i] = f(v.data[i])
	}

	return out
}

// AddScalar returns v + s elementwise.
func (v *Vector[T]) AddScalar(s T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x + s })
}

// SubScalar returns v - s elementwise.
func (v *Vector[T]) SubScalar(s T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x - s })
}

// MulScalar returns v * s elementwise.
func (v *Vector[T]) MulScalar(s T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x * s })
}

// checkBinary validates operands of a binary op in priority order:
// nil -> empty -> size mismatch.
func (v *Vector[T]) checkBinary(op string, other *Vector[T]) error {
	if v == nil || other == nil {
		return fmt.Errorf("Vector.%s: %w", op, ErrNilVector)
	}
	if err := guard.ValidateNotEmpty(len(v.data)); err != nil {
		return binaryErrorf(op, len(v.data), len(other.data), err)
	}
	if err := guard.ValidateNotEmpty(len(other.data)); err != nil {
		return binaryErrorf(op, len(v.data), len(other.data), err)
	}
	if err := guard.ValidateSameLen(len(v.data), len(other.data)); err != nil {
		return binaryErrorf(op, len(v.data), len(other.data), err)
	}

	return nil
}

// Add returns v + other elementwise.
// Errors: ErrDimensionMismatch if sizes differ.
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	if err := v.checkBinary(opAdd, other); err != nil {
		return nil, err
	}
	out := &Vector[T]{data: make([]T, len(v.data))}
	for i := range out.data {
		out.data[i] = v.data[i] + other.data[i]
	}

	return out, nil
}

// Sub returns v - other elementwise.
// Errors: ErrDimensionMismatch if sizes differ.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	if err := v.checkBinary(opSub, other); err != nil {
		return nil, err
	}
	out := &Vector[T]{data: make([]T, len(v.data))}
	for i := range out.data {
		out.data[i] = v.data[i] - other.data[i]
	}

	return out, nil
}

// Dot returns sum(v[i]*other[i]), accumulated from zero in ascending i.
// The order is fixed so floating-point results are reproducible.
//
// Errors: ErrDimensionMismatch if sizes differ.
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	var sum T
	if err := v.checkBinary(opDot, other); err != nil {
		return sum, err
	}
	for i := range v.data {
		sum += v.data[i] * other.data[i]
	}

	return sum, nil
}
