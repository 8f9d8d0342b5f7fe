// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "container/heap"

// queueItem orders by (weight, seq). seq is the insertion sequence number,
// unique per build, so no two items ever compare equal.
type queueItem struct {
	weight uint64
	seq    int
	node   Node
}

type nodeQueue []queueItem

// Len is the number of elements in the collection.
func (q nodeQueue) Len() int { return len(q) }

// Less compares two elements by weight, then by insertion sequence.
func (q nodeQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].seq < q[j].seq
}

// Swap swaps the elements with indexes i and j.
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

func (q *nodeQueue) push(it queueItem) { heap.Push(q, it) }

func (q *nodeQueue) pop() queueItem { return heap.Pop(q).(queueItem) }
