// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// This file implements the stream header: the frequency table the decoder
// needs to rebuild the encoder's tree. No tree structure is stored.
//
//	[uint32 BE: symbol count]
//	symbol count times, symbols strictly ascending:
//	    [1 byte: symbol] [uint32 BE: count]
package huffman

import (
	"encoding/binary"
	"math"

	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

const (
	countFieldSize = 4
	entrySize      = 1 + countFieldSize
)

// Header is the decoded frequency table of a compressed stream.
type Header struct {
	Entries []Entry // ascending by symbol
	Size    int     // encoded length in bytes
}

// Entry is one (symbol, count) pair of a Header.
type Entry struct {
	Symbol byte
	Count  uint32
}

// Total returns the number of symbols the stream decodes to.
func (h *Header) Total() (total uint64) {
	for _, e := range h.Entries {
		total += uint64(e.Count)
	}
	return
}

func (h *Header) table() *tree.Table {
	entries := make([]tree.Entry, len(h.Entries))
	for i, e := range h.Entries {
		entries[i] = tree.Entry{Symbol: e.Symbol, Count: uint64(e.Count)}
	}
	return tree.NewTable(entries)
}

func headerSize(t *tree.Table) int {
	return countFieldSize + t.Len()*entrySize
}

// appendHeader appends the header of t to dst in canonical order.
func appendHeader(dst []byte, t *tree.Table) ([]byte, error) {
	if t.Max() > math.MaxUint32 {
		return dst, ErrInputTooLarge
	}
	entries := t.Entries()
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(entries)))
	for _, e := range entries {
		dst = append(dst, e.Symbol)
		dst = binary.BigEndian.AppendUint32(dst, uint32(e.Count))
	}
	return dst, nil
}

// ReadHeader decodes the header at the start of a compressed stream.
func ReadHeader(src []byte) (*Header, error) {
	if len(src) < countFieldSize {
		return nil, CorruptHeaderError(len(src))
	}
	n := binary.BigEndian.Uint32(src)
	if n == 0 || n > tree.SymbolLimit {
		return nil, CorruptHeaderError(0)
	}
	size := countFieldSize + int(n)*entrySize
	if len(src) < size {
		return nil, CorruptHeaderError(len(src))
	}

	h := &Header{Entries: make([]Entry, n), Size: size}
	off := countFieldSize
	for i := range h.Entries {
		e := Entry{
			Symbol: src[off],
			Count:  binary.BigEndian.Uint32(src[off+1:]),
		}
		if i > 0 && e.Symbol <= h.Entries[i-1].Symbol {
			return nil, CorruptHeaderError(off)
		}
		if e.Count == 0 {
			return nil, CorruptHeaderError(off + 1)
		}
		h.Entries[i] = e
		off += entrySize
	}
	return h, nil
}
