// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a lossless byte-oriented Huffman codec.
//
// A compressed stream is a header holding the frequency of every distinct
// byte of the input, followed by the input's codes packed most-significant
// bit first. The decoder rebuilds the encoder's tree from the header alone and
// stops after the total number of counted symbols, so the zero padding of the
// final byte, and anything appended after it, is never interpreted.
//
// The whole input is held in memory in both directions.
package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/intel/fasthuff/compress/huffman/internal/bitpack"
	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

// Compress returns the compressed form of src.
// It returns ErrEmptyInput when src is empty.
func Compress(src []byte) ([]byte, error) {
	return AppendCompress(nil, src)
}

// AppendCompress appends the compressed form of src to dst.
// The spare capacity of dst is used when it is large enough.
func AppendCompress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, ErrEmptyInput
	}
	freq := tree.Count(src)
	out, err := appendHeader(grow(dst, headerSize(freq)), freq)
	if err != nil {
		return dst, err
	}
	t, err := tree.Build(freq)
	if err != nil {
		return dst, err
	}
	codes := tree.Generate(t)

	buf := bytes.NewBuffer(grow(out, bitpack.PackedLen(src, codes)))
	if err := bitpack.Pack(buf, src, codes); err != nil {
		return dst, err
	}
	return buf.Bytes(), nil
}

// grow returns b with room for at least n more bytes.
func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	nb := make([]byte, len(b), len(b)+n)
	copy(nb, b)
	return nb
}

// Decompress returns the original bytes of the compressed stream src.
// Bytes after the last decoded symbol are ignored.
func Decompress(src []byte) ([]byte, error) {
	h, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}
	t, err := tree.Build(h.table())
	if err != nil {
		return nil, err
	}

	packed := src[h.Size:]
	total := h.Total()
	// every code is at least one bit long
	if total > uint64(len(packed))*8 {
		return nil, fmt.Errorf("%w: %d symbols declared, %d packed bytes", ErrTruncatedStream, total, len(packed))
	}
	out, err := bitpack.Unpack(packed, t, total)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: decoded %d of %d symbols", ErrTruncatedStream, len(out), total)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
