// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package block tiles an image into fixed-size square blocks, scores each
// by the Shannon entropy of its upper-7-bit pixel distribution, and orders
// them so the planner and bit codec can agree, deterministically, on which
// block carries which rank of data.
package block

import "github.com/zanicar/lsbstego/raster"

// Size is the fixed block side length S, in pixels.
const Size = 16

// Block is a square S×S region anchored at (X,Y), X and Y multiples of
// Size, wholly inside its image. A Block is immutable once scored.
type Block struct {
	X, Y    int
	Entropy float64
}

// Bytes returns the number of whole payload bytes one block of an image
// with c channels can carry: S*S*c bits, packed 8 bits to a byte.
func Bytes(c int) int {
	return Size * Size * c / 8
}

// inBounds reports whether the block anchored at (x,y) fits wholly inside
// a W×H image.
func inBounds(img raster.Image, x, y int) bool {
	return x >= 0 && y >= 0 && x+Size <= img.W && y+Size <= img.H
}
