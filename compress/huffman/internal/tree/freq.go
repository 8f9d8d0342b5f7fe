// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package tree builds the Huffman tree and its code table from a
// per-input frequency table. Construction is fully deterministic: two
// builders fed the same Table produce structurally identical trees, which
// is what lets the decoder rebuild the encoder's tree from counts alone.
package tree

// SymbolLimit is the size of the symbol alphabet (one byte).
const SymbolLimit = 256

// Entry is a single (symbol, count) pair of a frequency table.
type Entry struct {
	Symbol byte
	Count  uint64
}

// Table maps each symbol to its number of occurrences.
// Symbols with a zero count are absent. Iteration is in ascending symbol order.
type Table struct {
	counts [SymbolLimit]uint64
	n      int
}

// Count returns the frequency table of src.
func Count(src []byte) *Table {
	t := &Table{}
	for _, b := range src {
		t.counts[b]++
	}
	for _, c := range t.counts {
		if c != 0 {
			t.n++
		}
	}
	return t
}

// NewTable creates a table from entries. Entries with a zero count are
// skipped; a repeated symbol accumulates.
func NewTable(entries []Entry) *Table {
	t := &Table{}
	for _, e := range entries {
		if e.Count == 0 {
			continue
		}
		if t.counts[e.Symbol] == 0 {
			t.n++
		}
		t.counts[e.Symbol] += e.Count
	}
	return t
}

// Len returns the number of distinct symbols.
func (t *Table) Len() int { return t.n }

// Count returns the number of occurrences of sym.
func (t *Table) Count(sym byte) uint64 { return t.counts[sym] }

// Total returns the sum of all counts.
func (t *Table) Total() (total uint64) {
	for _, c := range t.counts {
		total += c
	}
	return
}

// Max returns the largest single count.
func (t *Table) Max() (max uint64) {
	for _, c := range t.counts {
		if c > max {
			max = c
		}
	}
	return
}

// Entries returns the table in canonical (ascending symbol) order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.n)
	for sym, c := range t.counts {
		if c != 0 {
			entries = append(entries, Entry{Symbol: byte(sym), Count: c})
		}
	}
	return entries
}
