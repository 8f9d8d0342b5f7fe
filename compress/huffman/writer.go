// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"io"
)

// Writer compresses everything written to it into a single stream.
// The frequency table depends on the whole input, so nothing reaches the
// underlying writer before Close.
type Writer struct {
	w      io.Writer
	buf    bytes.Buffer
	err    error // sticky
	closed bool
}

// NewWriter returns a Writer compressing into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write buffers p. It never fails before Close.
func (z *Writer) Write(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	if z.closed {
		return 0, ErrClosed
	}
	return z.buf.Write(p)
}

// Close compresses the buffered input and writes the result to the
// underlying writer. It does not close the underlying writer.
// Closing a Writer that received no data fails with ErrEmptyInput.
func (z *Writer) Close() error {
	if z.closed {
		return z.err
	}
	z.closed = true
	if z.err != nil {
		return z.err
	}
	out, err := Compress(z.buf.Bytes())
	if err != nil {
		z.err = err
		return err
	}
	if _, err := z.w.Write(out); err != nil {
		z.err = err
		return err
	}
	z.buf.Reset()
	return nil
}

// Reset discards the Writer's state and makes it write to w,
// so the Writer can be reused for another stream.
func (z *Writer) Reset(w io.Writer) {
	z.w = w
	z.buf.Reset()
	z.err = nil
	z.closed = false
}
