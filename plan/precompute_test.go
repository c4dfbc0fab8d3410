// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package plan

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/zanicar/lsbstego/block"
	"github.com/zanicar/lsbstego/raster"
	"github.com/zanicar/lsbstego/status"
)

func randomImage(t *testing.T, w, h, c int, seed int64) raster.Image {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	pix := make([]byte, w*h*c)
	r.Read(pix)
	img, err := raster.New(w, h, c, pix)
	if err != nil {
		t.Fatalf("raster.New: %v", err)
	}
	return img
}

func TestPrecomputeSingleImage(t *testing.T) {
	images := []raster.Image{randomImage(t, 64, 64, 3, 1)}
	p, err := Precompute(images, 100, 0)
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}
	defer p.Release()

	if len(p.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(p.Entries))
	}
	e := p.Entries[0]
	if e.Usage+1 > len(e.Blocks) {
		t.Fatalf("usage %d exceeds block index length %d", e.Usage, len(e.Blocks))
	}
	if uint64(e.Usage*e.BlockBytes()) < 100 {
		t.Fatalf("usage capacity %d < dataLen 100", e.Usage*e.BlockBytes())
	}
}

func TestPrecomputeTwoImagesSplit(t *testing.T) {
	images := []raster.Image{
		randomImage(t, 32, 32, 3, 2),
		randomImage(t, 48, 48, 3, 3),
	}
	p, err := Precompute(images, 200, 8)
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}
	defer p.Release()

	var total uint64
	for _, e := range p.Entries {
		if e.Usage <= 0 {
			t.Fatalf("retained entry has non-positive usage: %+v", e)
		}
		total += uint64(e.Usage * e.BlockBytes())
	}
	if want := 200 + uint64(len(p.Entries))*8; total < want {
		t.Fatalf("total capacity %d < dataLen+reserved*N %d", total, want)
	}
}

func TestPrecomputeOrdersWithinImageDescending(t *testing.T) {
	images := []raster.Image{randomImage(t, 64, 64, 3, 9)}
	p, err := Precompute(images, 500, 0)
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}
	defer p.Release()

	blocks := p.Entries[0].Blocks
	for i := 1; i < len(blocks); i++ {
		if blocks[i].Entropy > blocks[i-1].Entropy {
			t.Fatalf("retained block index not descending at %d", i)
		}
	}
}

func TestPrecomputeRejectsOversizedData(t *testing.T) {
	images := []raster.Image{randomImage(t, block.Size, block.Size, 3, 4)}
	_, err := Precompute(images, 1, 0)
	if !errors.Is(err, status.OversizedData) {
		t.Fatalf("Precompute: err = %v, want OversizedData", err)
	}
}

func TestPrecomputeExactFitSucceeds(t *testing.T) {
	images := []raster.Image{randomImage(t, 32, 32, 3, 6)}
	idx, err := block.NewIndex(images[0])
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	capacity := uint64((len(idx) - 1) * block.Bytes(3))

	p, err := Precompute(images, capacity, 0)
	if err != nil {
		t.Fatalf("Precompute exact fit: %v", err)
	}
	p.Release()

	_, err = Precompute(images, capacity+1, 0)
	if !errors.Is(err, status.OversizedData) {
		t.Fatalf("Precompute one byte over capacity: err = %v, want OversizedData", err)
	}
}

func TestPrecomputeDropsTooSmallImage(t *testing.T) {
	images := []raster.Image{
		randomImage(t, block.Size-1, block.Size*4, 3, 10), // unusable: W < Size
		randomImage(t, 64, 64, 3, 11),
	}
	p, err := Precompute(images, 50, 0)
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}
	defer p.Release()

	if len(p.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1 (the too-small image should be dropped)", len(p.Entries))
	}
}

func TestPrecomputeZeroDataStillReservesOverhead(t *testing.T) {
	images := []raster.Image{randomImage(t, 64, 64, 3, 12)}
	p, err := Precompute(images, 0, 32)
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}
	defer p.Release()

	if len(p.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(p.Entries))
	}
	if p.Entries[0].Usage <= 0 {
		t.Fatalf("image carrying reserved overhead should have usage > 0, got %d", p.Entries[0].Usage)
	}
}

func TestPrecomputeDoesNotMutateBorrowedImages(t *testing.T) {
	img := randomImage(t, 64, 64, 3, 13)
	original := append([]byte(nil), img.Pix...)

	p, err := Precompute([]raster.Image{img}, 64, 0)
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}
	defer p.Release()

	for i := range img.Pix {
		if img.Pix[i] != original[i] {
			t.Fatalf("Precompute mutated the borrowed buffer at %d", i)
		}
	}
}
