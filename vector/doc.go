// Package vector provides Vector[T], a dense vector that exclusively owns its
// contiguous storage and offers value-semantics arithmetic.
//
// The package provides:
//
//   - Construction with strict size validation (1 <= n <= MaxSize).
//   - Deep copies (Clone, Assign) and O(1) ownership transfer (Transfer,
//     AssignTransfer, Swap).
//   - Unchecked (Index) and checked (At, Set, Ref) element access.
//   - Scalar and elementwise arithmetic plus a dot product with a fixed,
//     ascending accumulation order.
//   - Whitespace-delimited text I/O through fmt.Scanner, io.WriterTo and Read.
//
// Errors are package sentinels shared with package matrix; match them with
// errors.Is.
package vector
