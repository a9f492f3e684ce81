// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"github.com/gogpu/softpipe/geom"
)

// Build assembles a geometry store from the config: the configured OBJ
// mesh (or the built-in cube when none is set) with the configured texture
// attached.
func Build(cfg Config) (*geom.Store, error) {
	var g geom.Geometry
	if cfg.Mesh != "" {
		loaded, err := LoadOBJ(cfg.Mesh)
		if err != nil {
			return nil, err
		}
		g = loaded
	} else {
		g = Cube(1.5)
	}

	if cfg.Texture != "" {
		tex, err := LoadTexture(cfg.Texture)
		if err != nil {
			return nil, err
		}
		g.Texture = tex
	}

	store := geom.NewStore()
	if _, err := store.Add(g); err != nil {
		return nil, err
	}
	return store, nil
}
