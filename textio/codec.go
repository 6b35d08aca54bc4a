// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// countingWriter records how many bytes reached the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// WriteRow writes elems separated by the configured separator, without any
// trailing separator or terminator. It returns the number of bytes written.
func WriteRow[T any](w io.Writer, elems []T, o Options) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	if err := writeRow(bw, elems, o); err != nil {
		return cw.n, err
	}
	err := bw.Flush()

	return cw.n, err
}

// WriteRows writes every row followed by the configured row terminator.
func WriteRows[T any](w io.Writer, rows [][]T, o Options) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for _, row := range rows {
		if err := writeRow(bw, row, o); err != nil {
			return cw.n, err
		}
		if _, err := bw.WriteString(o.terminator); err != nil {
			return cw.n, err
		}
	}
	err := bw.Flush()

	return cw.n, err
}

func writeRow[T any](bw *bufio.Writer, elems []T, o Options) error {
	for i := range elems {
		if i > 0 {
			if _, err := bw.WriteString(o.sep); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, o.verb, elems[i]); err != nil {
			return err
		}
	}

	return nil
}

// ScanInto fills dst in index order with whitespace-separated tokens read from r.
//
// One fmt.Fscan call is issued per element. When r also implements
// io.RuneScanner no input past the last token is consumed, so several containers
// may be read back to back from one *bufio.Reader.
//
// Errors:
//   - io.EOF if r is exhausted before the first element,
//   - io.ErrUnexpectedEOF if r is exhausted part-way,
//   - the fmt parse error, wrapped with the failing element index.
func ScanInto[T any](r io.Reader, dst []T) error {
	for i := range dst {
		if _, err := fmt.Fscan(r, &dst[i]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				if i == 0 {
					return io.EOF
				}

				return fmt.Errorf("element %d: %w", i, io.ErrUnexpectedEOF)
			}

			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}
