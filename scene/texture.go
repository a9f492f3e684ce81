// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for LoadTexture
	_ "image/png"
	"os"

	"github.com/gogpu/softpipe/geom"
)

// MaxTextureDim caps loaded texture dimensions; larger images are scaled
// down at load time.
const MaxTextureDim = 2048

// LoadTexture decodes an image file (PNG or JPEG) into the pipeline's RGB
// texel format, downscaling to MaxTextureDim when needed.
func LoadTexture(path string) (*geom.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scene: decode %s: %w", path, err)
	}
	return geom.TextureFromImage(img, MaxTextureDim)
}
