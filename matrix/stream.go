// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dynamat/internal/guard"
	"github.com/katalvlaran/dynamat/textio"
	"github.com/katalvlaran/dynamat/vector"
)

var (
	_ io.WriterTo = (*Matrix[int])(nil)
	_ fmt.Scanner = (*Matrix[int])(nil)
)

// Read allocates a size×size matrix and fills it row-major with size*size
// whitespace-separated tokens from r.
func Read[T vector.Number](r io.Reader, size int) (*Matrix[T], error) {
	m, err := New[T](size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRead, err)
	}
	if err = m.fill(r); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opRead, size, err)
	}

	return m, nil
}

// fill reads Size()² tokens into scratch space, then copies them into the
// existing rows so outstanding Row/Index handles keep aliasing the matrix.
func (m *Matrix[T]) fill(r io.Reader) error {
	if err := m.ValidateShape(); err != nil {
		return err
	}
	n := len(m.rows)
	buf := make([]T, n*n)
	if err := textio.ScanInto(r, buf); err != nil {
		return err
	}
	for i := range m.rows {
		row := &m.rows[i]
		for j := 0; j < n; j++ {
			*row.Index(j) = buf[i*n+j]
		}
	}

	return nil
}

// Scan implements fmt.Scanner: it consumes Size()² tokens row-major, so
// fmt.Fscan(r, m) refills an existing matrix in place. On error m keeps its
// contents.
func (m *Matrix[T]) Scan(state fmt.ScanState, _ rune) error {
	if err := guard.ValidateNotEmpty(m.Size()); err != nil {
		return fmt.Errorf("Matrix.%s: %w", opScan, err)
	}
	if err := m.fill(state); err != nil {
		return fmt.Errorf("Matrix.%s: %w", opScan, err)
	}

	return nil
}

// WriteTo implements io.WriterTo: one row per line, elements separated by a
// single space, a newline after every row.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	return m.Write(w)
}

// Write is WriteTo with formatting options (see package textio).
func (m *Matrix[T]) Write(w io.Writer, opts ...textio.Option) (int64, error) {
	return textio.WriteRows(w, m.Slices(), textio.NewOptions(opts...))
}

// String implements fmt.Stringer using the WriteTo format.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb)

	return sb.String()
}
