// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/dynamat/internal/guard"
)

// MaxSize is the largest side length of a Matrix.
const MaxSize = guard.MaxMatrixSize

// Sentinels shared with package vector; match them with errors.Is.
var (
	// ErrInvalidSize is returned by constructors for size <= 0 or size > MaxSize.
	ErrInvalidSize = guard.ErrInvalidSize

	// ErrOutOfRange is returned by checked accessors for an index outside [0, Size()).
	ErrOutOfRange = guard.ErrOutOfRange

	// ErrDimensionMismatch is returned by binary operations on incompatible operands
	// and by FromRows on non-square input.
	ErrDimensionMismatch = guard.ErrDimensionMismatch

	// ErrEmpty is returned when a moved-from matrix is used where elements are required.
	ErrEmpty = guard.ErrEmpty

	// ErrNilMatrix is returned when a nil *Matrix or *vector.Vector operand is passed.
	ErrNilMatrix = guard.ErrNilOperand
)

const (
	opNew      = "matrix.New"
	opFromRows = "matrix.FromRows"
	opRead     = "matrix.Read"
	opAt       = "At"
	opSet      = "Set"
	opRowAt    = "RowAt"
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opMulVec   = "MulVec"
	opScan     = "Scan"
	opShape    = "ValidateShape"
)

// matrixErrorf wraps err with "Matrix.<method>(row,col)" context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// binaryErrorf wraps err with the operand sizes of a binary operation.
func binaryErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Matrix.%s(%d vs %d): %w", method, a, b, err)
}
