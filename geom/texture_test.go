// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewTexture(t *testing.T) {
	if _, err := NewTexture(make([]byte, 12), 2, 2); err != nil {
		t.Errorf("NewTexture(2x2) error: %v", err)
	}
	if _, err := NewTexture(make([]byte, 11), 2, 2); !errors.Is(err, ErrTextureSize) {
		t.Errorf("short buffer error = %v, want ErrTextureSize", err)
	}
	if _, err := NewTexture(nil, 0, 2); !errors.Is(err, ErrTextureSize) {
		t.Errorf("zero width error = %v, want ErrTextureSize", err)
	}
}

func TestTexture_Sample(t *testing.T) {
	// 2x1 texture: pure red, pure blue.
	tex, err := NewTexture([]byte{255, 0, 0, 0, 0, 255}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	r, g, b := tex.Sample(0, 0)
	if r != 1 || g != 0 || b != 0 {
		t.Errorf("Sample(0,0) = (%v, %v, %v), want (1, 0, 0)", r, g, b)
	}
	r, g, b = tex.Sample(1, 0)
	if r != 0 || g != 0 || b != 1 {
		t.Errorf("Sample(1,0) = (%v, %v, %v), want (0, 0, 1)", r, g, b)
	}

	// Out-of-range coordinates clamp to the nearest edge texel.
	r, _, _ = tex.Sample(-5, 0)
	if r != 1 {
		t.Errorf("Sample(-5,0) r = %v, want clamped to texel 0", r)
	}
	_, _, b = tex.Sample(99, 42)
	if b != 1 {
		t.Errorf("Sample(99,42) b = %v, want clamped to last texel", b)
	}
}

func TestTexture_SamplePure(t *testing.T) {
	tex, err := NewTexture([]byte{10, 20, 30}, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	r1, g1, b1 := tex.Sample(0, 0)
	r2, g2, b2 := tex.Sample(0, 0)
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Error("repeated Sample calls returned different values")
	}
}

func TestTextureFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 0, color.NRGBA{G: 255, A: 255})
	src.Set(0, 1, color.NRGBA{B: 255, A: 255})
	src.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	tex, err := TextureFromImage(src, 0)
	if err != nil {
		t.Fatalf("TextureFromImage() error: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", tex.Width, tex.Height)
	}
	if r, _, _ := tex.Sample(0, 0); r != 1 {
		t.Errorf("texel (0,0) r = %v, want 1", r)
	}
	if _, g, _ := tex.Sample(1, 0); g != 1 {
		t.Errorf("texel (1,0) g = %v, want 1", g)
	}
	if _, _, b := tex.Sample(0, 1); b != 1 {
		t.Errorf("texel (0,1) b = %v, want 1", b)
	}
}

func TestTextureFromImage_Downscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 16))

	tex, err := TextureFromImage(src, 32)
	if err != nil {
		t.Fatalf("TextureFromImage() error: %v", err)
	}
	if tex.Width != 32 || tex.Height != 8 {
		t.Errorf("downscaled size = %dx%d, want 32x8", tex.Width, tex.Height)
	}
	if len(tex.Pix) != 32*8*3 {
		t.Errorf("pixel buffer = %d bytes, want %d", len(tex.Pix), 32*8*3)
	}
}

func TestTextureFromImage_Nil(t *testing.T) {
	if _, err := TextureFromImage(nil, 0); !errors.Is(err, ErrTextureSize) {
		t.Errorf("nil image error = %v, want ErrTextureSize", err)
	}
}
