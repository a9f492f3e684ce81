// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

import (
	"fmt"

	"github.com/gogpu/softpipe/geom"
	"github.com/gogpu/softpipe/math3"
)

// RenderFrame renders one frame into target and returns once every target
// pixel has been written.
//
// The caller supplies the model-view-projection matrix, the model-view
// matrix, and the normal matrix (inverse transpose of the upper 3x3 of
// model-view). The frame is a strict pipeline with full barriers between
// stages:
//
//	clear -> vertex transform -> primitive assembly -> rasterize+shade -> resolve
//
// Assembly for a geometry starts only after its vertex stage finished, and
// rasterization starts only after every geometry has been assembled.
// There is no partial-frame recovery: the first stage error aborts the
// frame, attributed to the stage that produced it. Callers must not start
// a new frame until RenderFrame has returned.
func (c *RenderContext) RenderFrame(mvp, mv, normalMat math3.Mat4, target Target) error {
	if c == nil || c.closed {
		return ErrClosed
	}
	if target == nil {
		return ErrNilTarget
	}
	if target.Width() != c.width || target.Height() != c.height {
		return fmt.Errorf("%w: target %dx%d, context %dx%d",
			ErrTargetSize, target.Width(), target.Height(), c.width, c.height)
	}

	c.clear()

	for i := 0; i < c.store.Len(); i++ {
		g, err := c.store.Geometry(geom.GeometryID(i))
		if err != nil {
			return fmt.Errorf("softpipe: vertex stage: %w", err)
		}

		c.transformVertices(g, mvp, mv, normalMat)

		if err := c.assemble(g, c.triBase[i]); err != nil {
			return fmt.Errorf("softpipe: assembly stage: %w", err)
		}
	}

	c.rasterize()
	c.resolve(target)
	return nil
}
