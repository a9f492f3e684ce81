// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package softpipe is a data-parallel software rasterization pipeline for
// textured, lit 3D triangle meshes.
//
// The pipeline mirrors a fixed-function GPU: per frame it transforms every
// vertex into eye and screen space, assembles indexed triangles, rasterizes
// them concurrently with an atomic-minimum depth protocol, shades the
// winning fragment of each pixel with a Lambertian term, and box-filters a
// supersampled framebuffer down into an 8-bit RGBA presentation target.
//
// Geometry is loaded once into a geom.Store; a RenderContext owns every
// per-frame buffer and renders any number of frames against that store:
//
//	store := geom.NewStore()
//	if _, err := store.Add(scene.Cube(1.5)); err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, err := softpipe.NewRenderContext(store, softpipe.Options{
//		Width:  800,
//		Height: 600,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	target := softpipe.NewImageTarget(800, 600)
//	if err := ctx.RenderFrame(mvp, mv, normal, target); err != nil {
//		log.Fatal(err)
//	}
//	img := target.Image()
//
// RenderFrame is synchronous: it returns only after the target has been
// fully written. Within a frame, triangles rasterize fully concurrently;
// visibility between triangles contending for the same pixel is resolved by
// an atomic integer minimum over quantized eye-space depth, so the fragment
// that persists always belongs to a triangle whose quantized depth equals
// the final stored minimum at that pixel.
package softpipe
