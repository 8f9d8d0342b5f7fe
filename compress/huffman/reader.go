// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"io"
)

// Reader decompresses a stream produced by Writer or Compress.
// The underlying reader is drained on the first Read.
type Reader struct {
	r       io.Reader
	out     []byte
	readPos int
	err     error
	decoded bool
}

// NewReader returns a Reader decompressing from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (z *Reader) Read(p []byte) (n int, err error) {
	if !z.decoded {
		z.decoded = true
		z.err = z.decode()
	}
	if z.readPos < len(z.out) {
		n = copy(p, z.out[z.readPos:])
		z.readPos += n
		return n, nil
	}
	if z.err != nil {
		return 0, z.err
	}
	return 0, io.EOF
}

func (z *Reader) decode() error {
	src, err := io.ReadAll(z.r)
	if err != nil {
		return err
	}
	z.out, err = Decompress(src)
	return err
}

// Reset discards the Reader's state and makes it read from r.
func (z *Reader) Reset(r io.Reader) {
	z.r = r
	z.out = nil
	z.readPos = 0
	z.err = nil
	z.decoded = false
}

// Close releases the decoded buffer. It does not close the underlying reader.
func (z *Reader) Close() error {
	z.out = nil
	z.readPos = 0
	return nil
}
