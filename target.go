// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

import "image"

// Target is the presentation surface a frame resolves into: a 4-channel,
// 8-bit-per-channel pixel buffer of fixed display dimensions.
//
// The resolve stage writes every pixel of the target each frame, so targets
// need no clearing between frames.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Pixels returns direct access to the RGBA pixel data.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// ImageTarget is a CPU presentation target backed by an *image.RGBA.
//
// Example:
//
//	target := softpipe.NewImageTarget(800, 600)
//	ctx.RenderFrame(mvp, mv, normal, target)
//	png.Encode(w, target.Image())
type ImageTarget struct {
	img *image.RGBA
}

// NewImageTarget creates an image-backed target with the given dimensions.
func NewImageTarget(width, height int) *ImageTarget {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageTarget{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewImageTargetFromImage wraps an existing *image.RGBA as a target.
// The image is used directly without copying.
func NewImageTargetFromImage(img *image.RGBA) *ImageTarget {
	return &ImageTarget{img: img}
}

// Width returns the target width in pixels.
func (t *ImageTarget) Width() int { return t.img.Bounds().Dx() }

// Height returns the target height in pixels.
func (t *ImageTarget) Height() int { return t.img.Bounds().Dy() }

// Pixels returns direct access to the pixel data.
func (t *ImageTarget) Pixels() []byte { return t.img.Pix }

// Stride returns the number of bytes per row.
func (t *ImageTarget) Stride() int { return t.img.Stride }

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *ImageTarget) Image() *image.RGBA { return t.img }

// Ensure ImageTarget implements Target.
var _ Target = (*ImageTarget)(nil)
