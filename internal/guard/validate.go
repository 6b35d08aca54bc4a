// SPDX-License-Identifier: MIT

package guard

// ValidateSize checks 1 <= n <= limit.
// Returns ErrInvalidSize otherwise. Complexity: O(1).
func ValidateSize(n, limit int) error {
	if n <= 0 || n > limit {
		return ErrInvalidSize
	}

	return nil
}

// ValidateIndex checks 0 <= i < n.
// Negative indices are always out of range. Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// ValidateSameLen checks that two operand lengths agree.
// Both lengths are assumed already checked for emptiness by the caller.
func ValidateSameLen(a, b int) error {
	if a != b {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateNotEmpty rejects a zero length, which only a moved-from container can have.
func ValidateNotEmpty(n int) error {
	if n == 0 {
		return ErrEmpty
	}

	return nil
}
