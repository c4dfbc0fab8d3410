// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package plan distributes a payload budget across a set of images via
// greedy entropy-ordered block selection, producing an Embedding Plan the
// bit codec then writes into.
package plan

import (
	"github.com/zanicar/lsbstego/block"
	"github.com/zanicar/lsbstego/raster"
)

// State tracks a Plan's lifecycle: Uncomputed (failed or never computed) ->
// Computed (ready for exactly one Embed) -> Consumed (Embed has run; the
// owned buffers are released on teardown).
type State int

const (
	Uncomputed State = iota
	Computed
	Consumed
)

// Entry is one retained image's share of a Plan: its engine-owned image
// copy, its block index truncated to the ranks it actually uses, and the
// count of data-carrying blocks (ranks 1..Usage; rank 0 is the reserved
// length-prefix block).
type Entry struct {
	Image  raster.Image
	Blocks block.Index
	Usage  int
}

// BlockBytes is the payload-byte capacity of one block of this entry's
// image.
func (e Entry) BlockBytes() int {
	return block.Bytes(e.Image.C)
}

// Plan is the output of Precompute: the retained images (in their
// relative input order) with a computed Usage, ready for Embed.
type Plan struct {
	Entries []Entry
	State   State
}

// Release tears down every owned image buffer held by the Plan. Safe to
// call on a Plan in any state, including a failed (Uncomputed) one.
func (p *Plan) Release() {
	if p == nil {
		return
	}
	for i := range p.Entries {
		p.Entries[i].Image.Release()
	}
	p.Entries = nil
	p.State = Consumed
}
