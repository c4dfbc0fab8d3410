// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package lsbstego

import (
	"github.com/zanicar/lsbstego/bitcodec"
	"github.com/zanicar/lsbstego/internal/xlog"
	"github.com/zanicar/lsbstego/plan"
	"github.com/zanicar/lsbstego/status"
)

// Embed writes pieces into p's images, one piece per retained entry in
// Plan order. Each piece is zero-padded up to a whole block multiple,
// prefixed with its own (unpadded) length in the entry's rank-0 block,
// and written into as many of the entry's data blocks as its padded
// length requires; any spare capacity the planner granted beyond that is
// left untouched.
//
// Embed requires p to be Computed. Bad input (wrong piece count, a piece
// too large for its image's usage) is rejected before anything is
// written and leaves p Computed, so the caller may retry with corrected
// pieces. Once writing starts, p moves to Consumed regardless of outcome:
// a write-phase failure may already have mutated some images, so a retry
// is never offered.
func (Core) Embed(p *plan.Plan, pieces []Piece) error {
	log := xlog.L()
	if p == nil || p.State != plan.Computed {
		return status.BadPrecomputed
	}
	if len(pieces) != len(p.Entries) {
		return status.BadDataPiecesLen
	}
	for i, entry := range p.Entries {
		if len(pieces[i].Data) > entry.Usage*entry.BlockBytes() {
			return status.BadDataPiecesLen
		}
	}

	p.State = plan.Consumed
	for i := range p.Entries {
		entry := &p.Entries[i]
		bb := entry.BlockBytes()
		data := pieces[i].Data

		nBlocks := ceilDivInt(len(data), bb)
		padded := make([]byte, nBlocks*bb)
		copy(padded, data)

		if err := bitcodec.EmbedLength(entry.Image, entry.Blocks[0], uint64(len(data))); err != nil {
			return status.Wrap(status.AllocationFailure, "embed: image %d length prefix", i)
		}
		for rank := 0; rank < nBlocks; rank++ {
			chunk := padded[rank*bb : (rank+1)*bb]
			if err := bitcodec.EmbedData(entry.Image, entry.Blocks[rank+1], chunk); err != nil {
				return status.Wrap(status.AllocationFailure, "embed: image %d block %d", i, rank)
			}
		}
		log.Debug().Int("image", i).Int("bytes", len(data)).Int("blocks", nBlocks).Msg("embed: wrote piece")
	}

	return nil
}

func ceilDivInt(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}
