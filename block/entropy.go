// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package block

import (
	"fmt"
	"math"

	"github.com/zanicar/lsbstego/raster"
)

// bins is the histogram width: pixel samples are binned by sample>>1,
// dropping the bit the codec will later overwrite, so a block's score is
// invariant under arbitrary LSB manipulation.
const bins = 128

// samples is S*S, the number of pixel samples per channel within a block.
const samples = Size * Size

// Score computes the entropy of the block anchored at (x,y) in img: a
// 128-bin histogram of sample>>1 per channel, Shannon entropy base 2 per
// channel, averaged across channels. Range: 0 <= e <= 7.
//
// Score fails with an error if img has no channels or the block falls
// outside img's bounds; callers (the block index and the planner) never
// submit an out-of-bounds block, so this is an internal consistency check,
// not part of the stable external error-code table.
func Score(img raster.Image, x, y int) (float64, error) {
	if img.C <= 0 {
		return 0, fmt.Errorf("block: image has no channels")
	}
	if !inBounds(img, x, y) {
		return 0, fmt.Errorf("block: (%d,%d) out of bounds for %dx%d image", x, y, img.W, img.H)
	}

	var hist [bins]int
	var total float64
	for c := 0; c < img.C; c++ {
		for k := range hist {
			hist[k] = 0
		}
		for dy := 0; dy < Size; dy++ {
			for dx := 0; dx < Size; dx++ {
				sample := img.Pix[img.Offset(x+dx, y+dy, c)]
				hist[sample>>1]++
			}
		}
		total += shannon(hist[:], samples)
	}
	return total / float64(img.C), nil
}

// shannon computes -sum(p_i * log2(p_i)) over the nonzero bins of hist,
// where p_i = count/n.
func shannon(hist []int, n int) float64 {
	var h float64
	for _, count := range hist {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}
