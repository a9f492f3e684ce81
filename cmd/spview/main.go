// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command spview opens a window and shows a mesh spinning on a turntable,
// rendered by the softpipe software rasterizer on every frame.
//
// Usage:
//
//	spview -mesh bunny.obj -texture diffuse.png
//	spview -config render.yaml
package main

import (
	"flag"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/softpipe"
	"github.com/gogpu/softpipe/scene"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML render config file")
		mesh       = flag.String("mesh", "", "OBJ mesh file (default: built-in cube)")
		texture    = flag.String("texture", "", "diffuse texture image")
		debugBary  = flag.Bool("debug-bary", false, "shade untextured pixels with barycentric weights")
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
	if *mesh != "" {
		cfg.Mesh = *mesh
	}
	if *texture != "" {
		cfg.Texture = *texture
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

	g := &game{
		ctx:    ctx,
		cam:    cfg.Camera(),
		target: softpipe.NewImageTarget(cfg.Width, cfg.Height),
	}

	ebiten.SetWindowTitle("softpipe viewer")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// game drives one softpipe frame per tick and blits the presentation
// target into the window.
type game struct {
	ctx    *softpipe.RenderContext
	cam    scene.Turntable
	target *softpipe.ImageTarget
	frame  *ebiten.Image
	angle  float64
}

func (g *game) Update() error {
	g.angle += math.Pi / 180
	mvp, mv, normal := g.cam.Matrices(g.angle)
	return g.ctx.RenderFrame(mvp, mv, normal, g.target)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.target.Width(), g.target.Height())
	}
	g.frame.WritePixels(g.target.Pixels())
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.target.Width(), g.target.Height()
}
