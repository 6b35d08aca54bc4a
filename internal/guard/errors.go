// SPDX-License-Identifier: MIT

// Package guard holds the size-validation and error policy shared by the
// vector and matrix containers.
//
// Purpose:
//   - One sentinel per failure class, re-exported by vector and matrix as aliases
//     so errors.Is matches regardless of which package the caller imported.
//   - Validators return plain sentinels; call sites wrap them with an operation tag.
//
// Error priority (enforced in both containers):
// nil operand -> empty (moved-from) operand -> dimension mismatch.
package guard

import (
	"errors"
	"fmt"
)

// Container limits. Sizes are counted in elements per dimension.
const (
	// MaxVectorSize is the largest element count a vector may hold.
	MaxVectorSize = 100_000_000

	// MaxMatrixSize is the largest side length of a square matrix.
	MaxMatrixSize = 10_000
)

var (
	// ErrInvalidSize is returned when a requested size is zero, negative, or
	// exceeds the container limit.
	ErrInvalidSize = errors.New("dynamat: invalid size")

	// ErrOutOfRange indicates a checked access with index < 0 or index >= size.
	ErrOutOfRange = errors.New("dynamat: index out of range")

	// ErrDimensionMismatch indicates operands of incompatible size in a binary operation.
	ErrDimensionMismatch = errors.New("dynamat: dimension mismatch")

	// ErrEmpty signals use of a container whose storage was transferred away.
	// Such a container is only valid as an assignment target.
	ErrEmpty = errors.New("dynamat: container is empty (storage transferred)")

	// ErrNilOperand indicates that a nil container was passed where a value is required.
	ErrNilOperand = errors.New("dynamat: nil operand")
)

// Errorf wraps err with a "<tag>: " prefix, keeping the sentinel reachable via errors.Is.
func Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
