// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package lsbstego provides an entropy-guided least-significant-bit
// steganography engine: capacity planning across one or more raster
// images, and a bit-level codec that embeds and recovers an opaque
// payload from their lowest-order pixel bits.
package lsbstego

import (
	"github.com/zanicar/lsbstego/plan"
	"github.com/zanicar/lsbstego/raster"
)

// Piece is one image's share of the total payload, paired positionally
// with Plan.Entries by Embed.
type Piece struct {
	Data []byte
}

// Planner is the interface that wraps the capacity-planning operation.
type Planner interface {
	Precompute(images []raster.Image, dataLen, reserved uint64) (*plan.Plan, error)
}

// Embedder is the interface that wraps the embed operation.
//
// Embed must not retain pieces beyond the call.
type Embedder interface {
	Embed(p *plan.Plan, pieces []Piece) error
}

// Extractor is the interface that wraps the extract operation. reserved is
// accepted for symmetry with Precompute's per-image framing budget; the
// core does not parse or validate against it (see design notes on
// Reserved semantics), it is opaque to the codec.
type Extractor interface {
	Extract(img raster.Image, reserved uint64) ([]byte, error)
}

// Engine groups Planner, Embedder and Extractor: the full precompute ->
// embed -> extract pipeline.
type Engine interface {
	Planner
	Embedder
	Extractor
}

// Core implements Engine. Its zero value is ready to use.
type Core struct{}

var _ Engine = Core{}

// New returns a Core ready to use.
func New() Core {
	return Core{}
}
