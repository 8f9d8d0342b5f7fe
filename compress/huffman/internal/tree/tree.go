// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"container/heap"
	"errors"
)

// ErrEmptyTable is returned when building a tree from a table with no symbols.
var ErrEmptyTable = errors.New("tree: empty frequency table")

// Node is a handle into a Tree's node arena.
type Node int32

// None marks the absent child of a leaf.
const None Node = -1

type node struct {
	weight      uint64
	left, right Node
	symbol      byte
}

// Tree is a Huffman tree stored as an arena. Internal nodes always have two
// children and children are created before their parent, so a handle only
// ever refers to a lower index and the structure cannot contain cycles.
type Tree struct {
	nodes []node
	root  Node
}

// Build constructs the Huffman tree of t.
//
// Leaves enter the queue in ascending symbol order with sequence numbers
// 0..n-1 and each combined node takes the next sequence number. The two
// lightest nodes (ties broken by lower sequence) are combined with the first
// extracted as the left child, until one node remains.
// A single-entry table yields a lone leaf root.
func Build(t *Table) (*Tree, error) {
	n := t.Len()
	if n == 0 {
		return nil, ErrEmptyTable
	}
	tr := &Tree{nodes: make([]node, 0, 2*n-1)}
	q := make(nodeQueue, 0, n)
	for _, e := range t.Entries() {
		id := tr.add(node{weight: e.Count, left: None, right: None, symbol: e.Symbol})
		q = append(q, queueItem{weight: e.Count, seq: int(id), node: id})
	}
	heap.Init(&q)

	seq := n
	for q.Len() > 1 {
		a := q.pop()
		b := q.pop()
		id := tr.add(node{weight: a.weight + b.weight, left: a.node, right: b.node})
		q.push(queueItem{weight: a.weight + b.weight, seq: seq, node: id})
		seq++
	}
	tr.root = q.pop().node
	return tr, nil
}

func (t *Tree) add(n node) Node {
	t.nodes = append(t.nodes, n)
	return Node(len(t.nodes) - 1)
}

// Root returns the root handle.
func (t *Tree) Root() Node { return t.root }

// Len returns the number of nodes, leaves included.
func (t *Tree) Len() int { return len(t.nodes) }

// IsLeaf reports whether n has no children.
func (t *Tree) IsLeaf(n Node) bool { return t.nodes[n].left == None }

// Symbol returns the symbol held by leaf n.
func (t *Tree) Symbol(n Node) byte { return t.nodes[n].symbol }

// Weight returns the aggregate count of all leaves under n.
func (t *Tree) Weight(n Node) uint64 { return t.nodes[n].weight }

// Left returns the left child of n, or None for a leaf.
func (t *Tree) Left(n Node) Node { return t.nodes[n].left }

// Right returns the right child of n, or None for a leaf.
func (t *Tree) Right(n Node) Node { return t.nodes[n].right }

// Child follows one bit from n: false (0) goes left, true (1) goes right.
func (t *Tree) Child(n Node, bit bool) Node {
	if bit {
		return t.nodes[n].right
	}
	return t.nodes[n].left
}
