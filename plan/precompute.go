// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package plan

import (
	"container/heap"

	"github.com/zanicar/lsbstego/block"
	"github.com/zanicar/lsbstego/internal/xlog"
	"github.com/zanicar/lsbstego/raster"
	"github.com/zanicar/lsbstego/status"
)

// Precompute distributes dataLen bytes of payload across images, each of
// which must additionally carry reserved bytes of caller framing. It
// copies every borrowed image into an engine-owned buffer, scores and
// indexes its blocks, then greedily grows each eligible image's usage in
// strict global entropy order until the combined capacity covers dataLen.
//
// An image that cannot even accommodate the baseline reserved overhead
// within its own blocks (too few blocks, or none at all) is excluded from
// consideration entirely, as if it were never supplied; it is not an
// error by itself, only a contributing cause of OversizedData if no
// combination of the remaining images suffices.
func Precompute(images []raster.Image, dataLen, reserved uint64) (*Plan, error) {
	log := xlog.L()
	entries := make([]Entry, 0, len(images))
	eligible := make([]bool, 0, len(images))

	cleanup := func() {
		for i := range entries {
			entries[i].Image.Release()
		}
	}

	for i, img := range images {
		owned := img.Clone()
		idx, err := block.NewIndex(owned)
		if err != nil {
			owned.Release()
			cleanup()
			return nil, status.Wrap(status.AllocationFailure, "plan: indexing image %d", i)
		}

		blockBytes := block.Bytes(owned.C)
		baseline := ceilDiv(reserved, uint64(blockBytes))

		ok := len(idx) > 0 && int(baseline)+1 <= len(idx)
		usage := int(baseline)
		if !ok {
			// Cannot even carry its own reserved overhead (or has no
			// blocks at all): excluded from the start, same as a W<S or
			// H<S image. Usage forced to 0 so the prune step below drops
			// it without needing to truncate a too-short block index.
			usage = 0
			log.Debug().Int("image", i).Int("blocks", len(idx)).Msg("image excluded: cannot carry its own reserved overhead")
		}
		entries = append(entries, Entry{Image: owned, Blocks: idx, Usage: usage})
		eligible = append(eligible, ok)
	}

	var contributed uint64
	h := &candidateHeap{}
	for i := range entries {
		if !eligible[i] {
			continue
		}
		bb := uint64(entries[i].BlockBytes())
		contributed += bb*uint64(entries[i].Usage) - reserved
		if entries[i].Usage+1 < len(entries[i].Blocks) {
			heap.Push(h, candidate{entry: i, nextEntropy: entries[i].Blocks[entries[i].Usage+1].Entropy})
		}
	}

	for contributed < dataLen {
		if h.Len() == 0 {
			cleanup()
			return nil, status.OversizedData
		}
		top := heap.Pop(h).(candidate)
		e := &entries[top.entry]
		e.Usage++
		contributed += uint64(e.BlockBytes())
		log.Debug().Int("image", top.entry).Int("usage", e.Usage).Float64("entropy", top.nextEntropy).Msg("planner: grew image usage")
		if e.Usage+1 < len(e.Blocks) {
			heap.Push(h, candidate{entry: top.entry, nextEntropy: e.Blocks[e.Usage+1].Entropy})
		}
	}

	retained := entries[:0]
	for _, e := range entries {
		if e.Usage == 0 {
			e.Image.Release()
			continue
		}
		e.Blocks = e.Blocks[:e.Usage+1]
		retained = append(retained, e)
	}

	p := &Plan{Entries: retained, State: Computed}
	log.Debug().Int("retained", len(retained)).Uint64("dataLen", dataLen).Uint64("reserved", reserved).Msg("planner: precompute complete")
	return p, nil
}

func ceilDiv(a, b uint64) uint64 {
	if b == 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
