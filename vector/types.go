// SPDX-License-Identifier: MIT

package vector

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// Complex is a constraint for complex element types.
type Complex interface {
	~complex64 | ~complex128
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is the element constraint of Vector and Matrix: every member supports
// +, -, *, ==, has a zero value, and is scannable/printable by fmt.
type Number interface {
	Integers | Floats | Complex
}
