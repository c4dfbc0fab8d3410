// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package block

import (
	"runtime"
	"sort"
	"sync"

	"github.com/zanicar/lsbstego/raster"
)

// Index is the per-image sequence of all in-bounds blocks of one image,
// ordered by entropy descending. Rank 0 (the highest-entropy block) is
// reserved by convention for the payload-length prefix.
type Index []Block

// NewIndex scores every block origin of img and returns them sorted by
// entropy descending, ties broken by ascending (Y,X). O(K log K) time,
// O(K) memory, K = floor(W/Size)*floor(H/Size).
func NewIndex(img raster.Image) (Index, error) {
	origins := Origins(img)
	idx := make(Index, len(origins))
	for i, o := range origins {
		e, err := Score(img, o.X, o.Y)
		if err != nil {
			return nil, err
		}
		idx[i] = Block{X: o.X, Y: o.Y, Entropy: e}
	}
	sortIndex(idx)
	return idx, nil
}

// NewIndexConcurrent is equivalent to NewIndex but fans the per-block
// entropy scoring out across a worker pool sized by GOMAXPROCS. Each
// worker writes its result to a pre-sized slice by origin index, so the
// final sorted order is identical to NewIndex's regardless of scheduling:
// the ordering requirement only constrains the result, not the scoring
// schedule, and scoring one block never depends on another's result.
func NewIndexConcurrent(img raster.Image) (Index, error) {
	origins := Origins(img)
	if len(origins) == 0 {
		return Index{}, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(origins) {
		workers = len(origins)
	}
	if workers < 1 {
		workers = 1
	}

	idx := make(Index, len(origins))
	errs := make([]error, workers)

	var wg sync.WaitGroup
	chunk := (len(origins) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(origins) {
			hi = len(origins)
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				o := origins[i]
				e, err := Score(img, o.X, o.Y)
				if err != nil {
					errs[w] = err
					return
				}
				idx[i] = Block{X: o.X, Y: o.Y, Entropy: e}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sortIndex(idx)
	return idx, nil
}

// sortIndex orders blocks by entropy descending, ties broken by ascending
// (Y,X); the comparator is a strict total order so the result does not
// depend on sort stability.
func sortIndex(idx Index) {
	sort.Slice(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if a.Entropy != b.Entropy {
			return a.Entropy > b.Entropy
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}
