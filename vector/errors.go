// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/dynamat/internal/guard"
)

// MaxSize is the largest element count a Vector may hold.
const MaxSize = guard.MaxVectorSize

// Sentinels shared with package matrix; match them with errors.Is.
var (
	// ErrInvalidSize is returned by constructors for size <= 0 or size > MaxSize.
	ErrInvalidSize = guard.ErrInvalidSize

	// ErrOutOfRange is returned by checked accessors for index < 0 or index >= Size().
	ErrOutOfRange = guard.ErrOutOfRange

	// ErrDimensionMismatch is returned by Add, Sub and Dot on operands of different size.
	ErrDimensionMismatch = guard.ErrDimensionMismatch

	// ErrEmpty is returned when a moved-from vector is used where elements are required.
	ErrEmpty = guard.ErrEmpty

	// ErrNilVector is returned when a nil *Vector is passed as an operand.
	ErrNilVector = guard.ErrNilOperand
)

// operation tags used in error wrappers
const (
	opNew     = "vector.New"
	opNewFrom = "vector.NewFrom"
	opRead    = "vector.Read"
	opAt      = "At"
	opSet     = "Set"
	opRef     = "Ref"
	opAdd     = "Add"
	opSub     = "Sub"
	opDot     = "Dot"
	opScan    = "Scan"
)

// vectorErrorf wraps err with "Vector.<method>(<index>)" context.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// binaryErrorf wraps err with the operand sizes of a binary operation.
func binaryErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Vector.%s(%d vs %d): %w", method, a, b, err)
}
