// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

// resolve box-filters the supersampled color framebuffer into the display
// target: one worker per display pixel, each averaging its supersample²
// source block, clamping to [0,1], and writing 8-bit RGBA with full alpha.
// This is the pipeline's only anti-aliasing.
func (c *RenderContext) resolve(target Target) {
	pix := target.Pixels()
	stride := target.Stride()
	ss := c.ss
	inv := 1 / float64(ss*ss)

	c.pool.Range(c.width*c.height, func(i int) {
		dx := i % c.width
		dy := i / c.width

		var r, g, b float64
		for sy := 0; sy < ss; sy++ {
			row := ((dy*ss + sy) * c.ssW) + dx*ss
			for sx := 0; sx < ss; sx++ {
				o := (row + sx) * 3
				r += c.color[o]
				g += c.color[o+1]
				b += c.color[o+2]
			}
		}

		off := dy*stride + dx*4
		pix[off] = channelByte(r * inv)
		pix[off+1] = channelByte(g * inv)
		pix[off+2] = channelByte(b * inv)
		pix[off+3] = 0xFF
	})
}

// channelByte clamps a linear channel value to [0,1] and scales it to the
// 8-bit range.
func channelByte(v float64) byte {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return byte(v * 255)
}
