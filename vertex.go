// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

import (
	"github.com/gogpu/softpipe/geom"
	"github.com/gogpu/softpipe/math3"
)

// transformVertices runs the vertex stage for one geometry: one worker per
// vertex, writing c.verts[i] for every input vertex i. It returns only
// after the last vertex is written, which is the barrier the assembly stage
// depends on.
//
// Per vertex: eye-space position (mv x p), eye-space unit normal
// (normalMat x n), clip-space position (mvp x p), perspective divide, and
// the NDC-to-viewport mapping into supersampled pixel coordinates
//
//	x' = 0.5*W*(x+1)    y' = 0.5*H*(1-y)
//
// The stored screen z is a placeholder; rasterization recomputes depth from
// the interpolated eye-space position.
func (c *RenderContext) transformVertices(g *geom.Geometry, mvp, mv, normalMat math3.Mat4) {
	textured := g.Textured()

	baseColor := [3]float64{NeutralGray, NeutralGray, NeutralGray}
	if g.HasBaseColor {
		baseColor = g.BaseColor
	}

	w := float64(c.ssW)
	h := float64(c.ssH)

	c.pool.Range(g.VertexCount(), func(i int) {
		p := g.Positions[i]

		clip := mvp.MulVec4(math3.FromVec3(p, 1))
		ndc := clip.PerspectiveDivide()

		v := TransformedVertex{
			Screen: math3.Vec4{
				X: 0.5 * w * (ndc.X + 1),
				Y: 0.5 * h * (1 - ndc.Y),
				Z: 0,
				W: clip.W,
			},
			Eye:    mv.MulPoint(p),
			Normal: normalMat.MulDir(g.Normals[i]).Normalize(),
			Color:  baseColor,
		}
		if textured {
			v.UV = g.TexCoords[i]
			v.Tex = g.Texture
		}
		c.verts[i] = v
	})
}
