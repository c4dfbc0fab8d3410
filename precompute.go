// Copyright 2018 Zanicar. All rights reserved.
// Utilizes a BSD-3 license. Refer to the included LICENSE file for details.

package lsbstego

import (
	"github.com/zanicar/lsbstego/internal/xlog"
	"github.com/zanicar/lsbstego/plan"
	"github.com/zanicar/lsbstego/raster"
)

// Precompute decides which of images participate and how many blocks each
// contributes, so that the combined participating capacity covers dataLen
// bytes of payload plus reserved bytes of per-image framing overhead. See
// plan.Precompute for the full algorithm.
func (Core) Precompute(images []raster.Image, dataLen, reserved uint64) (*plan.Plan, error) {
	xlog.L().Debug().Int("images", len(images)).Uint64("dataLen", dataLen).Uint64("reserved", reserved).Msg("precompute: starting")
	return plan.Precompute(images, dataLen, reserved)
}
