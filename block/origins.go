// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package block

import "github.com/zanicar/lsbstego/raster"

// Origin is the top-left corner of a candidate block, before scoring.
type Origin struct {
	X, Y int
}

// Origins enumerates the K = floor(W/Size)*floor(H/Size) block origins of
// img in row-major order (rows outer, columns inner). An image with either
// dimension smaller than Size yields zero origins and is unusable for
// embedding; the planner must treat that as zero capacity rather than an
// error.
func Origins(img raster.Image) []Origin {
	cols := img.W / Size
	rows := img.H / Size
	if cols <= 0 || rows <= 0 {
		return nil
	}
	origins := make([]Origin, 0, cols*rows)
	for row := 0; row < rows; row++ {
		y := row * Size
		for col := 0; col < cols; col++ {
			x := col * Size
			origins = append(origins, Origin{X: x, Y: y})
		}
	}
	return origins
}
