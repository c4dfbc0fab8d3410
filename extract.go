// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package lsbstego

import (
	"github.com/zanicar/lsbstego/bitcodec"
	"github.com/zanicar/lsbstego/block"
	"github.com/zanicar/lsbstego/internal/xlog"
	"github.com/zanicar/lsbstego/raster"
	"github.com/zanicar/lsbstego/status"
)

// Extract rebuilds img's block index (entropy is invariant under the LSB
// changes Embed makes, so this reproduces the exact ranking Embed used),
// reads the length prefix from rank 0, and reads as many subsequent
// blocks as that length requires.
//
// reserved is accepted for API symmetry with Precompute but is not
// interpreted here; stripping a piece's framing is the caller's job.
func (Core) Extract(img raster.Image, reserved uint64) ([]byte, error) {
	log := xlog.L()
	idx, err := block.NewIndex(img)
	if err != nil {
		return nil, status.Wrap(status.AllocationFailure, "extract: indexing image")
	}
	if len(idx) == 0 {
		return nil, status.InvalidLen
	}

	length := bitcodec.ExtractLength(img, idx[0])
	bb := block.Bytes(img.C)
	nBlocks := ceilDivInt64(length, bb)

	if length == 0 || nBlocks > len(idx)-1 {
		log.Debug().Uint64("length", length).Int("blocksNeeded", nBlocks).Int("blocksAvailable", len(idx)-1).Msg("extract: invalid length")
		return nil, status.InvalidLen
	}

	buf := make([]byte, 0, nBlocks*bb)
	for rank := 1; rank <= nBlocks; rank++ {
		buf = append(buf, bitcodec.ExtractData(img, idx[rank])...)
	}

	log.Debug().Uint64("length", length).Int("blocks", nBlocks).Msg("extract: recovered payload")
	return buf[:length], nil
}

func ceilDivInt64(a uint64, b int) int {
	if b == 0 {
		return 0
	}
	n := a / uint64(b)
	if a%uint64(b) != 0 {
		n++
	}
	return int(n)
}
