// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

import "github.com/gogpu/softpipe/math3"

// lightDir is the fixed eye-space light direction, pointing toward the
// viewer. The pipeline has exactly one light and no per-frame light state.
var lightDir = math3.V3(0, 0, 1)

// shadeFragment computes the final color for a resolved fragment and writes
// it into the supersampled color framebuffer at pixel idx.
//
// Shading is a single Lambertian term: the dot product of the fragment's
// unit eye-space normal with the fixed light direction, clamped at zero,
// scaled by the fixed intensity and clamped to [0,1], multiplied
// component-wise into the base color. Pure function of its inputs; no
// state survives between invocations.
func (c *RenderContext) shadeFragment(idx int, f *Fragment) {
	lambert := f.Normal.Dot(lightDir)
	if lambert < 0 {
		lambert = 0
	}
	s := lambert * lightIntensity
	if s > 1 {
		s = 1
	}

	o := idx * 3
	c.color[o] = f.Color[0] * s
	c.color[o+1] = f.Color[1] * s
	c.color[o+2] = f.Color[2] * s
}
