// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Texture is a device-resident diffuse texture image: tightly packed RGB,
// 3 bytes per texel, row-major.
type Texture struct {
	Pix    []byte
	Width  int
	Height int
}

// ErrTextureSize is returned for textures with non-positive dimensions or a
// pixel buffer that does not match them.
var ErrTextureSize = errors.New("geom: bad texture size")

// NewTexture wraps an RGB pixel buffer as a texture.
// len(pix) must equal width*height*3.
func NewTexture(pix []byte, width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTextureSize, width, height)
	}
	if len(pix) != width*height*3 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrTextureSize, len(pix), width, height)
	}
	return &Texture{Pix: pix, Width: width, Height: height}, nil
}

// TextureFromImage converts any image.Image into the store's RGB texel
// format. When maxDim > 0 and either source dimension exceeds it, the image
// is scaled down (preserving aspect ratio) with a bilinear kernel first.
func TextureFromImage(img image.Image, maxDim int) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrTextureSize)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTextureSize, w, h)
	}

	if maxDim > 0 && (w > maxDim || h > maxDim) {
		if w >= h {
			h = h * maxDim / w
			w = maxDim
		} else {
			w = w * maxDim / h
			h = maxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}

	// Normalize to RGBA first; xdraw handles both the format conversion
	// and the optional downscale.
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, b, xdraw.Src, nil)

	pix := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		src := rgba.Pix[y*rgba.Stride:]
		dst := pix[y*w*3:]
		for x := 0; x < w; x++ {
			dst[x*3+0] = src[x*4+0]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return &Texture{Pix: pix, Width: w, Height: h}, nil
}

// Sample reads the texel at integer coordinates (ix, iy) and returns its
// RGB channels normalized to [0,1]. Coordinates are clamped to the image
// bounds so texture-index arithmetic can never leave the pixel array.
func (t *Texture) Sample(ix, iy int) (r, g, b float64) {
	if ix < 0 {
		ix = 0
	} else if ix >= t.Width {
		ix = t.Width - 1
	}
	if iy < 0 {
		iy = 0
	} else if iy >= t.Height {
		iy = t.Height - 1
	}
	o := (iy*t.Width + ix) * 3
	const inv = 1.0 / 255.0
	return float64(t.Pix[o]) * inv, float64(t.Pix[o+1]) * inv, float64(t.Pix[o+2]) * inv
}
