// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

// Package raster owns the pixel-buffer data model that the rest of the
// engine operates on: a width/height/channel-count image with a single
// row-major, channel-interleaved byte buffer, and the borrowed/owned
// distinction that governs who may mutate it.
package raster

import "fmt"

// Image is a raw, already-decoded raster image: W*H*C bytes, 8 bits per
// channel, in row-major order with channels interleaved. Pixel (x,y),
// channel c lives at offset (y*W+x)*C + c.
type Image struct {
	W, H, C int
	Pix     []byte

	// owned distinguishes a borrowed caller buffer (never mutated by the
	// engine) from an engine-owned copy (freely mutated, released via
	// Release).
	owned bool
}

// New wraps a caller-supplied buffer as a borrowed Image. The engine never
// mutates a borrowed buffer; New is the entry point for every image
// handed to Precompute.
func New(w, h, c int, pix []byte) (Image, error) {
	img := Image{W: w, H: h, C: c, Pix: pix}
	if err := img.validate(); err != nil {
		return Image{}, err
	}
	return img, nil
}

func (img Image) validate() error {
	if img.C <= 0 || img.C > 4 {
		return fmt.Errorf("raster: unsupported channel count %d (want 1..4)", img.C)
	}
	if img.W < 0 || img.H < 0 {
		return fmt.Errorf("raster: negative dimension W=%d H=%d", img.W, img.H)
	}
	want := img.W * img.H * img.C
	if len(img.Pix) != want {
		return fmt.Errorf("raster: buffer length %d, want W*H*C=%d", len(img.Pix), want)
	}
	return nil
}

// Owned reports whether this Image holds an engine-owned buffer that may
// be mutated in place.
func (img Image) Owned() bool {
	return img.owned
}

// Clone returns an engine-owned deep copy of img, ready for in-place
// mutation by the bit codec. The caller's original buffer is untouched.
func (img Image) Clone() Image {
	cp := make([]byte, len(img.Pix))
	copy(cp, img.Pix)
	return Image{W: img.W, H: img.H, C: img.C, Pix: cp, owned: true}
}

// Offset returns the byte offset of pixel (x,y) channel c within Pix.
func (img Image) Offset(x, y, c int) int {
	return (y*img.W+x)*img.C + c
}

// Release drops the reference to an owned buffer so it can be garbage
// collected independently of the Image value itself. It is a no-op on a
// borrowed Image: borrowed buffers are never owned by the engine and are
// never released by it.
func (img *Image) Release() {
	if img.owned {
		img.Pix = nil
		img.owned = false
	}
}
