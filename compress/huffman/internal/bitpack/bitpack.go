// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitpack packs Huffman codes into bytes most-significant bit first
// and walks a Huffman tree over such a packed stream.
package bitpack

import (
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"

	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

// PackedLen returns the number of bytes Pack emits for src under codes.
func PackedLen(src []byte, codes *tree.CodeTable) int {
	var bits uint64
	for _, b := range src {
		bits += uint64(codes[b].Len)
	}
	return int((bits + 7) / 8)
}

// Pack writes the concatenated codes of src to w. A trailing partial byte is
// padded with zero bits.
func Pack(w io.Writer, src []byte, codes *tree.CodeTable) error {
	bw := bitio.NewWriter(w)
	for _, b := range src {
		c := codes[b]
		if err := bw.WriteBits(c.Bits, c.Len); err != nil {
			return err
		}
	}
	return bw.Close()
}

// Unpack decodes exactly count symbols from src by walking t bit by bit.
// Bits past the last symbol are never read, so padding is ignored. It
// returns io.ErrUnexpectedEOF, along with the symbols decoded so far, when
// src runs out first.
func Unpack(src []byte, t *tree.Tree, count uint64) ([]byte, error) {
	out := make([]byte, 0, count)
	br := bitio.NewReader(bytes.NewReader(src))
	root := t.Root()

	if t.IsLeaf(root) {
		sym := t.Symbol(root)
		for uint64(len(out)) < count {
			if _, err := br.ReadBool(); err != nil {
				return out, unexpected(err)
			}
			out = append(out, sym)
		}
		return out, nil
	}

	n := root
	for uint64(len(out)) < count {
		bit, err := br.ReadBool()
		if err != nil {
			return out, unexpected(err)
		}
		n = t.Child(n, bit)
		if t.IsLeaf(n) {
			out = append(out, t.Symbol(n))
			n = root
		}
	}
	return out, nil
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
