// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command sprender renders a turntable sequence of a mesh to PNG files
// using the softpipe software rasterizer.
//
// Usage:
//
//	sprender -mesh bunny.obj -texture diffuse.png -frames 120 -out out
//	sprender -config render.yaml
//
// Flags override values from the config file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/softpipe"
	"github.com/gogpu/softpipe/scene"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML render config file")
		width       = flag.Int("width", 0, "image width")
		height      = flag.Int("height", 0, "image height")
		supersample = flag.Int("supersample", 0, "per-axis supersample factor")
		mesh        = flag.String("mesh", "", "OBJ mesh file (default: built-in cube)")
		texture     = flag.String("texture", "", "diffuse texture image")
		frames      = flag.Int("frames", 0, "number of turntable frames")
		outDir      = flag.String("out", "frames", "output directory")
		debugBary   = flag.Bool("debug-bary", false, "shade untextured pixels with barycentric weights")
	)
	flag.Parse()

	cfg := scene.DefaultConfig()
	if *configPath != "" {
		loaded, err := scene.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *supersample > 0 {
		cfg.Supersample = *supersample
	}
	if *mesh != "" {
		cfg.Mesh = *mesh
	}
	if *texture != "" {
		cfg.Texture = *texture
	}
	if *frames > 0 {
		cfg.Frames = *frames
	}
	if *debugBary {
		cfg.DebugBarycentric = true
	}

	store, err := scene.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	ctx, err := softpipe.NewRenderContext(store, softpipe.Options{
		Width:            cfg.Width,
		Height:           cfg.Height,
		Supersample:      cfg.Supersample,
		DebugBarycentric: cfg.DebugBarycentric,
	})
	if err != nil {
		log.Fatalf("Failed to create render context: %v", err)
	}
	defer ctx.Close()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	cam := cfg.Camera()
	target := softpipe.NewImageTarget(cfg.Width, cfg.Height)

	bar := progressbar.Default(int64(cfg.Frames), "rendering")
	for frame := 0; frame < cfg.Frames; frame++ {
		angle := 2 * math.Pi * float64(frame) / float64(cfg.Frames)
		mvp, mv, normal := cam.Matrices(angle)

		if err := ctx.RenderFrame(mvp, mv, normal, target); err != nil {
			log.Fatalf("Frame %d failed: %v", frame, err)
		}

		path := filepath.Join(*outDir, fmt.Sprintf("frame-%04d.png", frame))
		if err := writePNG(path, target); err != nil {
			log.Fatalf("Frame %d: %v", frame, err)
		}
		_ = bar.Add(1)
	}

	log.Printf("Rendered %d frames to %s (%dx%d, %dx supersampling)\n",
		cfg.Frames, *outDir, cfg.Width, cfg.Height, ctx.Supersample())
}

func writePNG(path string, target *softpipe.ImageTarget) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, target.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
