// Package matrix provides Matrix[T], a dense square matrix composed of row
// vectors (vector.Vector[T]), with value-semantics arithmetic.
//
// The package provides:
//
//   - Construction with strict size validation (1 <= n <= MaxSize); every row
//     has exactly n elements.
//   - Deep copies (Clone, Assign) and O(1) ownership transfer (Transfer,
//     AssignTransfer, Swap).
//   - Row access: Row (caller-validated) and RowAt (checked), plus checked
//     element access At/Set.
//   - Scalar, elementwise, matrix-vector and matrix-matrix products with
//     ascending-k accumulation.
//   - Row-major whitespace text I/O: one row per line.
//
// Rows handed out by Row/RowAt alias the matrix storage. Mutating elements
// through them is fine; assigning a row of a different length breaks the
// square invariant and is not supported.
package matrix
