// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dynamat/internal/guard"
	"github.com/katalvlaran/dynamat/textio"
)

var _ io.WriterTo = (*Vector[int])(nil)

// Read allocates a vector of the given size and fills it with size
// whitespace-separated tokens from r, in index order.
func Read[T Number](r io.Reader, size int) (*Vector[T], error) {
	v, err := New[T](size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRead, err)
	}
	if err = textio.ScanInto(r, v.data); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opRead, size, err)
	}

	return v, nil
}

// Scan implements fmt.Scanner: it consumes Size() tokens, so fmt.Fscan(r, v)
// refills an existing vector in place, so pointers from Index/Ref stay valid.
// Tokens are parsed into scratch space first; on error v keeps its contents.
func (v *Vector[T]) Scan(state fmt.ScanState, _ rune) error {
	if err := guard.ValidateNotEmpty(v.Size()); err != nil {
		return fmt.Errorf("Vector.%s: %w", opScan, err)
	}
	buf := make([]T, len(v.data))
	if err := textio.ScanInto(state, buf); err != nil {
		return fmt.Errorf("Vector.%s: %w", opScan, err)
	}
	copy(v.data, buf)

	return nil
}

// WriteTo implements io.WriterTo: elements separated by a single space,
// nothing after the last one.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	return v.Write(w)
}

// Write is WriteTo with formatting options (see textio.WithSeparator, textio.WithVerb).
func (v *Vector[T]) Write(w io.Writer, opts ...textio.Option) (int64, error) {
	var data []T
	if v != nil {
		data = v.data
	}

	return textio.WriteRow(w, data, textio.NewOptions(opts...))
}

// String implements fmt.Stringer using the WriteTo format.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	_, _ = v.WriteTo(&sb)

	return sb.String()
}
