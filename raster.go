// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

import (
	"math"
	"sync/atomic"

	"github.com/gogpu/softpipe/math3"
)

// rasterize scan-converts every assembled triangle concurrently, one worker
// per triangle, resolving visibility through the atomic-minimum depth
// protocol and shading each winning fragment inline. No ordering exists
// between triangles beyond that protocol.
func (c *RenderContext) rasterize() {
	c.pool.Range(len(c.tris), c.rasterTriangle)
}

// rasterTriangle rasterizes the triangle at index t.
//
// Visibility is optimistic: each candidate pixel's quantized depth is
// folded into the shared depth cell with an atomic minimum, the cell is
// re-read, and only a triangle still holding the minimum commits a
// fragment. Two triangles with identical quantized depth may both believe
// they won; whichever commit lands last persists. That tie window is
// accepted — the persisting fragment always has quantized depth equal to
// the final stored minimum, never greater.
func (c *RenderContext) rasterTriangle(t int) {
	tri := &c.tris[t]

	v0 := &tri.V[0]
	v1 := &tri.V[1]
	v2 := &tri.V[2]

	// Screen-space bounding box, clamped to the supersampled viewport.
	// The clamp is a correctness requirement: it bounds every buffer
	// index below.
	minX := clampInt(int(math.Floor(min3(v0.Screen.X, v1.Screen.X, v2.Screen.X))), 0, c.ssW-1)
	maxX := clampInt(int(math.Ceil(max3(v0.Screen.X, v1.Screen.X, v2.Screen.X))), 0, c.ssW-1)
	minY := clampInt(int(math.Floor(min3(v0.Screen.Y, v1.Screen.Y, v2.Screen.Y))), 0, c.ssH-1)
	maxY := clampInt(int(math.Ceil(max3(v0.Screen.Y, v1.Screen.Y, v2.Screen.Y))), 0, c.ssH-1)

	// Spanning edges from v0; their cross product is twice the signed
	// area. Zero area means a degenerate triangle: nothing to shade.
	d1x := v1.Screen.X - v0.Screen.X
	d1y := v1.Screen.Y - v0.Screen.Y
	d2x := v2.Screen.X - v0.Screen.X
	d2y := v2.Screen.Y - v0.Screen.Y
	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return
	}
	invDenom := 1 / denom

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			// Barycentric weights of the pixel center: b1 and b2 from
			// cross products against the spanning edges, b0 from the
			// affine constraint b0+b1+b2 = 1.
			qx := px - v0.Screen.X
			qy := py - v0.Screen.Y
			b1 := (qx*d2y - qy*d2x) * invDenom
			b2 := (d1x*qy - d1y*qx) * invDenom
			b0 := 1 - b1 - b2

			// Inclusive membership: pixels on shared edges are shaded by
			// both adjacent triangles. Accepted cosmetic artifact; the
			// comparison is exact, so the outcome is deterministic.
			if b0 < 0 || b0 > 1 || b1 < 0 || b1 > 1 || b2 < 0 || b2 > 1 {
				continue
			}

			// Depth is the negated interpolated eye-space z: the camera
			// looks down -Z, so nearer surfaces have smaller depth.
			// Quantization saturates: a depth at or past the far clear
			// value never wins, and the low end pins to MinInt32 instead
			// of wrapping.
			depth := -(b0*v0.Eye.Z + b1*v1.Eye.Z + b2*v2.Eye.Z)
			qd := depth * c.depthScale
			if qd >= depthFar {
				continue
			}
			if qd < math.MinInt32 {
				qd = math.MinInt32
			}
			qz := int32(qd)

			idx := y*c.ssW + x
			cell := &c.depth[idx]
			atomicMin(cell, qz)

			// Re-read: only the (possibly tied) minimum holder commits.
			if cell.Load() != qz {
				continue
			}

			c.commitFragment(idx, tri, b0, b1, b2, qz)
		}
	}
}

// commitFragment interpolates surface data for a pixel the triangle won,
// resolves its base color, writes the fragment slot, and invokes the
// fragment shader. The striped lock only keeps the multi-word commit free
// of torn writes between tied winners; it takes no part in visibility,
// which the atomic depth cell has already decided.
func (c *RenderContext) commitFragment(idx int, tri *Triangle, b0, b1, b2 float64, qz int32) {
	lock := &c.locks[idx&(numStripes-1)]
	lock.Lock()
	defer lock.Unlock()

	// A strictly nearer triangle may have landed since the re-read; its
	// fragment must not be overwritten by ours.
	if c.depth[idx].Load() != qz {
		return
	}

	v0 := &tri.V[0]
	v1 := &tri.V[1]
	v2 := &tri.V[2]

	frag := Fragment{
		Eye: math3.Vec3{
			X: b0*v0.Eye.X + b1*v1.Eye.X + b2*v2.Eye.X,
			Y: b0*v0.Eye.Y + b1*v1.Eye.Y + b2*v2.Eye.Y,
			Z: b0*v0.Eye.Z + b1*v1.Eye.Z + b2*v2.Eye.Z,
		},
		Normal: math3.Vec3{
			X: b0*v0.Normal.X + b1*v1.Normal.X + b2*v2.Normal.X,
			Y: b0*v0.Normal.Y + b1*v1.Normal.Y + b2*v2.Normal.Y,
			Z: b0*v0.Normal.Z + b1*v1.Normal.Z + b2*v2.Normal.Z,
		}.Normalize(),
		Tex: v0.Tex,
	}

	switch {
	case frag.Tex != nil:
		// Interpolated texture coordinate scaled into texel units,
		// truncated to integers for the sample.
		u := b0*v0.UV.X + b1*v1.UV.X + b2*v2.UV.X
		v := b0*v0.UV.Y + b1*v1.UV.Y + b2*v2.UV.Y
		frag.TexX = u * float64(frag.Tex.Width)
		frag.TexY = v * float64(frag.Tex.Height)
		r, g, b := frag.Tex.Sample(int(frag.TexX), int(frag.TexY))
		frag.Color = [3]float64{r, g, b}

	case c.debugBary:
		frag.Color = [3]float64{b0, b1, b2}

	default:
		frag.Color = [3]float64{
			b0*v0.Color[0] + b1*v1.Color[0] + b2*v2.Color[0],
			b0*v0.Color[1] + b1*v1.Color[1] + b2*v2.Color[1],
			b0*v0.Color[2] + b1*v1.Color[2] + b2*v2.Color[2],
		}
	}

	c.frags[idx] = frag
	c.shadeFragment(idx, &c.frags[idx])
}

// atomicMin folds v into the cell with a compare-and-swap loop, leaving the
// cell at min(cell, v).
func atomicMin(cell *atomic.Int32, v int32) {
	for {
		cur := cell.Load()
		if v >= cur {
			return
		}
		if cell.CompareAndSwap(cur, v) {
			return
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
