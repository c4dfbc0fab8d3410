// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package bitcodec reads and writes payload bits into the least
// significant bit of each pixel byte of a block, in the canonical scan
// order the planner's rank-0/rank-N convention depends on: rows outer,
// columns middle, channels innermost, bits within a byte LSB-first.
package bitcodec

import (
	"fmt"

	"github.com/zanicar/lsbstego/block"
	"github.com/zanicar/lsbstego/raster"
)

// lengthBits is the width of the payload-length prefix carried in rank-0
// of every participating image.
const lengthBits = 64

// forEachPixel visits the pixel offsets of b's S*S*C samples in scan order
// (y outer, x middle, c innermost) and calls fn with the running bit index
// and the pixel's byte offset in img.Pix. It stops early if fn returns
// false.
func forEachPixel(img raster.Image, b block.Block, fn func(bitIndex, offset int) bool) {
	bitIndex := 0
	for y := 0; y < block.Size; y++ {
		for x := 0; x < block.Size; x++ {
			for c := 0; c < img.C; c++ {
				offset := img.Offset(b.X+x, b.Y+y, c)
				if !fn(bitIndex, offset) {
					return
				}
				bitIndex++
			}
		}
	}
}

func setLSB(p *byte, bit byte) {
	if bit != 0 {
		*p |= 1
	} else {
		*p &^= 1
	}
}

// EmbedLength writes the little-endian 64-bit length prefix into block0's
// LSBs and clears every remaining LSB of the block to 0, so the block is
// fully deterministic regardless of what its previous LSBs held.
func EmbedLength(img raster.Image, block0 block.Block, length uint64) error {
	if !img.Owned() {
		return fmt.Errorf("bitcodec: EmbedLength requires an engine-owned image")
	}
	forEachPixel(img, block0, func(bitIndex, offset int) bool {
		var bit byte
		if bitIndex < lengthBits {
			bit = byte((length >> uint(bitIndex)) & 1)
		}
		setLSB(&img.Pix[offset], bit)
		return true
	})
	return nil
}

// ExtractLength reads the first 64 LSBs of block0 and assembles them
// little-endian into a length.
func ExtractLength(img raster.Image, block0 block.Block) uint64 {
	var length uint64
	forEachPixel(img, block0, func(bitIndex, offset int) bool {
		if bitIndex >= lengthBits {
			return false
		}
		bit := img.Pix[offset] & 1
		length |= uint64(bit) << uint(bitIndex)
		return true
	})
	return length
}

// EmbedData writes exactly block.Bytes(img.C) bytes of data into blockI's
// LSBs, clearing each LSB before OR-ing in the payload bit (bits within a
// payload byte are consumed LSB-first).
func EmbedData(img raster.Image, blockI block.Block, data []byte) error {
	if !img.Owned() {
		return fmt.Errorf("bitcodec: EmbedData requires an engine-owned image")
	}
	want := block.Bytes(img.C)
	if len(data) != want {
		return fmt.Errorf("bitcodec: EmbedData got %d bytes, want %d", len(data), want)
	}
	forEachPixel(img, blockI, func(bitIndex, offset int) bool {
		byteIdx := bitIndex / 8
		bitInByte := uint(bitIndex % 8)
		bit := (data[byteIdx] >> bitInByte) & 1
		setLSB(&img.Pix[offset], bit)
		return true
	})
	return nil
}

// ExtractData reads block.Bytes(img.C) bytes from blockI's LSBs into a
// freshly allocated slice.
func ExtractData(img raster.Image, blockI block.Block) []byte {
	dest := make([]byte, block.Bytes(img.C))
	forEachPixel(img, blockI, func(bitIndex, offset int) bool {
		byteIdx := bitIndex / 8
		bitInByte := uint(bitIndex % 8)
		bit := img.Pix[offset] & 1
		dest[byteIdx] |= bit << bitInByte
		return true
	})
	return dest
}
