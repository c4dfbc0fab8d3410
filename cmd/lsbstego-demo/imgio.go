// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"io"

	"github.com/zanicar/lsbstego/raster"
)

// decodeImage decodes a PNG or JPEG from r into a 4-channel (RGBA)
// raster.Image, normalizing the alpha-premultiplied uint32 samples the
// standard library's color model returns back down to one byte per
// channel.
func decodeImage(r io.Reader) (raster.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return raster.Image{}, fmt.Errorf("imgio: decode: %w", err)
	}

	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	pix := make([]byte, w*h*4)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r32, g32, b32, a32 := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := (y*w + x) * 4
			pix[off+0] = uint8(r32 / 256)
			pix[off+1] = uint8(g32 / 256)
			pix[off+2] = uint8(b32 / 256)
			pix[off+3] = uint8(a32 / 256)
		}
	}

	return raster.New(w, h, 4, pix)
}

// encodeImage writes img, a 4-channel raster.Image, to w as a PNG.
func encodeImage(w io.Writer, img raster.Image) error {
	if img.C != 4 {
		return fmt.Errorf("imgio: encode requires 4 channels, got %d", img.C)
	}
	out := image.NewNRGBA(image.Rect(0, 0, img.W, img.H))
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			off := img.Offset(x, y, 0)
			out.SetNRGBA(x, y, color.NRGBA{
				R: img.Pix[off+0],
				G: img.Pix[off+1],
				B: img.Pix[off+2],
				A: img.Pix[off+3],
			})
		}
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("imgio: encode: %w", err)
	}
	return nil
}
