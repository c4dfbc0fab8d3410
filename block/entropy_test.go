// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package block

import (
	"math"
	"testing"

	"github.com/zanicar/lsbstego/raster"
)

func flatImage(c int, value byte) raster.Image {
	pix := make([]byte, Size*Size*c)
	for i := range pix {
		pix[i] = value
	}
	img, _ := raster.New(Size, Size, c, pix)
	return img
}

func TestScoreOfUniformBlockIsZero(t *testing.T) {
	img := flatImage(3, 42)
	e, err := Score(img, 0, 0)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if e != 0 {
		t.Errorf("Score of a uniform block = %v, want 0", e)
	}
}

func TestScoreIsInvariantUnderLSBFlips(t *testing.T) {
	img := flatImage(3, 42)
	before, err := Score(img, 0, 0)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for i := range img.Pix {
		img.Pix[i] ^= 1
	}
	after, err := Score(img, 0, 0)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if before != after {
		t.Errorf("Score changed after flipping every LSB: before=%v after=%v", before, after)
	}
}

func TestScoreMaximumIsLog2OfBinCount(t *testing.T) {
	pix := make([]byte, Size*Size*1)
	for i := range pix {
		// Spread the 256 samples evenly across the 128 bins (2 samples
		// per bin), maximizing entropy at log2(128) = 7.
		pix[i] = byte((i % 128) * 2)
	}
	img, _ := raster.New(Size, Size, 1, pix)
	e, err := Score(img, 0, 0)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(e-7) > 1e-9 {
		t.Errorf("Score of a maximally spread block = %v, want 7", e)
	}
}

func TestScoreRejectsOutOfBounds(t *testing.T) {
	img := flatImage(3, 0)
	if _, err := Score(img, Size, 0); err == nil {
		t.Fatal("Score: expected error for out-of-bounds origin")
	}
}

func TestScoreRejectsZeroChannels(t *testing.T) {
	img := raster.Image{W: Size, H: Size, C: 0, Pix: nil}
	if _, err := Score(img, 0, 0); err == nil {
		t.Fatal("Score: expected error for zero channels")
	}
}
