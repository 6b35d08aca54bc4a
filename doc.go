// Package dynamat is a small library of generic dense containers: a
// dynamically sized vector and a square matrix built from row vectors, both
// with value-semantics arithmetic and strict size validation.
//
// What is in the box?
//
//   - vector/    — Vector[T]: owned contiguous storage, deep copy and O(1)
//     ownership transfer, checked and unchecked access, scalar/elementwise
//     arithmetic and a dot product with a fixed accumulation order.
//   - matrix/    — Matrix[T]: n×n matrix of row vectors with scalar,
//     elementwise, matrix-vector and matrix-matrix products.
//   - textio/    — the whitespace-delimited text format shared by both, with
//     functional options for output formatting.
//   - gonumconv/ — copies to and from gonum's mat.Dense / mat.VecDense.
//
// Errors are sentinels shared across packages (ErrInvalidSize, ErrOutOfRange,
// ErrDimensionMismatch, ...); match them with errors.Is. Nothing panics on
// user input; only programmer errors (nil buffers, unchecked out-of-range
// indexing, nonsensical options) do.
//
// This is not a linear-algebra toolkit: no decompositions, inversion or sparse
// storage. Use gonumconv to reach gonum for those.
//
//	go get github.com/katalvlaran/dynamat
package dynamat
