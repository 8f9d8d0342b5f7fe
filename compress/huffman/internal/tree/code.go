// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "strings"

// MaxCodeLen bounds the length of any generated code.
// Counts are at most 2^32-1 per symbol, so the total weight is below 2^40 and
// a Huffman tree over it is never deeper than the Fibonacci bound (~57).
const MaxCodeLen = 64

// Code is a variable-length bit string. The first bit of the code is the most
// significant of the Len low bits of Bits.
type Code struct {
	Bits uint64
	Len  uint8
}

// String renders the code as a string of '0' and '1'.
func (c Code) String() string {
	var sb strings.Builder
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>(c.Len-p.Len) == p.Bits
}

// CodeTable maps each symbol to its code. Absent symbols have a zero Len.
type CodeTable [SymbolLimit]Code

// Len returns the number of symbols holding a code.
func (ct *CodeTable) Len() (n int) {
	for _, c := range ct {
		if c.Len != 0 {
			n++
		}
	}
	return
}

type frame struct {
	node Node
	code Code
}

// Generate walks t depth first and assigns each leaf the path leading to it,
// 0 for a left edge and 1 for a right edge.
// A lone leaf root is assigned the one-bit code "0".
func Generate(t *Tree) *CodeTable {
	ct := &CodeTable{}
	root := t.Root()
	if t.IsLeaf(root) {
		ct[t.Symbol(root)] = Code{Bits: 0, Len: 1}
		return ct
	}

	stack := make([]frame, 1, 2*SymbolLimit)
	stack[0] = frame{node: root}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.IsLeaf(f.node) {
			ct[t.Symbol(f.node)] = f.code
			continue
		}
		next := Code{Bits: f.code.Bits << 1, Len: f.code.Len + 1}
		// right first so the left subtree is visited first
		stack = append(stack, frame{node: t.Right(f.node), code: Code{Bits: next.Bits | 1, Len: next.Len}})
		stack = append(stack, frame{node: t.Left(f.node), code: next})
	}
	return ct
}
