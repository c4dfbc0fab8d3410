// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package plan

import "container/heap"

// candidate is one image still eligible to grow: entry identifies it by
// its position in the working slice, nextEntropy is the entropy of the
// block it would claim next (rank usage+1).
type candidate struct {
	entry       int
	nextEntropy float64
}

// candidateHeap is a max-heap on nextEntropy, ties broken by ascending
// entry index so growth is deterministic given identical inputs.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	if h[i].nextEntropy != h[j].nextEntropy {
		return h[i].nextEntropy > h[j].nextEntropy
	}
	return h[i].entry < h[j].entry
}
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(candidate))
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var (
	_ heap.Interface = (*candidateHeap)(nil)
)
