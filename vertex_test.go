// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

import (
	"math"
	"testing"

	"github.com/gogpu/softpipe/geom"
	"github.com/gogpu/softpipe/math3"
)

// TestTransformVertices_ViewportMapping checks the NDC corners land on the
// supersampled viewport corners, with y flipped.
func TestTransformVertices_ViewportMapping(t *testing.T) {
	g := geom.Geometry{
		Positions: []math3.Vec3{
			math3.V3(0, 0, 0),  // center
			math3.V3(-1, 1, 0), // top-left in NDC
			math3.V3(1, -1, 0), // bottom-right in NDC
		},
		Normals: []math3.Vec3{math3.V3(0, 0, 1), math3.V3(0, 0, 1), math3.V3(0, 0, 1)},
		Indices: []uint32{0, 1, 2},
	}

	ctx, err := NewRenderContext(newStore(t, g), Options{Width: 10, Height: 5, Supersample: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()

	gp, err := ctx.store.Geometry(0)
	if err != nil {
		t.Fatal(err)
	}
	ctx.transformVertices(gp, math3.Identity(), math3.Identity(), math3.Identity())

	// Supersampled viewport is 20x10.
	want := []struct{ x, y float64 }{
		{10, 5},
		{0, 0},
		{20, 10},
	}
	for i, w := range want {
		s := ctx.verts[i].Screen
		if math.Abs(s.X-w.x) > 1e-12 || math.Abs(s.Y-w.y) > 1e-12 {
			t.Errorf("vertex %d screen = (%v, %v), want (%v, %v)", i, s.X, s.Y, w.x, w.y)
		}
	}
}

// TestTransformVertices_PerspectiveDivide runs a perspective projection and
// checks the divide happened: a point twice as far lands half as far from
// the viewport center.
func TestTransformVertices_PerspectiveDivide(t *testing.T) {
	g := geom.Geometry{
		Positions: []math3.Vec3{math3.V3(1, 0, -2), math3.V3(1, 0, -4), math3.V3(0, 0, -2)},
		Normals:   []math3.Vec3{math3.V3(0, 0, 1), math3.V3(0, 0, 1), math3.V3(0, 0, 1)},
		Indices:   []uint32{0, 1, 2},
	}

	ctx, err := NewRenderContext(newStore(t, g), Options{Width: 100, Height: 100, Supersample: 1})
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()

	proj := math3.Perspective(math.Pi/2, 1, 0.1, 100)
	gp, err := ctx.store.Geometry(0)
	if err != nil {
		t.Fatal(err)
	}
	ctx.transformVertices(gp, proj, math3.Identity(), math3.Identity())

	center := 50.0
	off0 := ctx.verts[0].Screen.X - center
	off1 := ctx.verts[1].Screen.X - center
	if math.Abs(off0-2*off1) > 1e-9 {
		t.Errorf("screen offsets = %v and %v, want 2:1 perspective ratio", off0, off1)
	}

	// Clip-space w survives the divide for later reference.
	if ctx.verts[0].Screen.W != 2 {
		t.Errorf("vertex 0 w = %v, want 2", ctx.verts[0].Screen.W)
	}
}

// TestTransformVertices_EyeAndNormal checks eye-space position uses the
// model-view matrix and normals are re-normalized after the normal matrix.
func TestTransformVertices_EyeAndNormal(t *testing.T) {
	g := geom.Geometry{
		Positions: []math3.Vec3{math3.V3(1, 2, 3), math3.V3(0, 0, 0), math3.V3(1, 0, 0)},
		Normals:   []math3.Vec3{math3.V3(0, 3, 0), math3.V3(0, 0, 1), math3.V3(0, 0, 1)},
		Indices:   []uint32{0, 1, 2},
	}

	ctx, err := NewRenderContext(newStore(t, g), Options{Width: 8, Height: 8, Supersample: 1})
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()

	mv := math3.Translate(0, 0, -10)
	gp, err := ctx.store.Geometry(0)
	if err != nil {
		t.Fatal(err)
	}
	ctx.transformVertices(gp, math3.Identity(), mv, math3.NormalMatrix(mv))

	eye := ctx.verts[0].Eye
	if eye.X != 1 || eye.Y != 2 || eye.Z != -7 {
		t.Errorf("eye = %v, want (1, 2, -7)", eye)
	}

	// The unnormalized (0,3,0) input comes out unit length.
	n := ctx.verts[0].Normal
	if math.Abs(n.Length()-1) > 1e-12 || math.Abs(n.Y-1) > 1e-12 {
		t.Errorf("normal = %v, want unit (0, 1, 0)", n)
	}
}

// TestTransformVertices_BaseColor verifies the per-geometry base color flows
// into the vertex record, with neutral gray as the fallback.
func TestTransformVertices_BaseColor(t *testing.T) {
	plain := flatTri(math3.V2(0, 0), math3.V2(1, 0), math3.V2(0, 1))
	tinted := flatTri(math3.V2(0, 0), math3.V2(1, 0), math3.V2(0, 1))
	tinted.BaseColor = [3]float64{0.2, 0.4, 0.6}
	tinted.HasBaseColor = true

	ctx, err := NewRenderContext(newStore(t, plain, tinted), Options{Width: 8, Height: 8, Supersample: 1})
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()

	g0, _ := ctx.store.Geometry(0)
	ctx.transformVertices(g0, math3.Identity(), math3.Identity(), math3.Identity())
	if got := ctx.verts[0].Color; got != [3]float64{NeutralGray, NeutralGray, NeutralGray} {
		t.Errorf("plain color = %v, want neutral gray", got)
	}

	g1, _ := ctx.store.Geometry(1)
	ctx.transformVertices(g1, math3.Identity(), math3.Identity(), math3.Identity())
	if got := ctx.verts[0].Color; got != [3]float64{0.2, 0.4, 0.6} {
		t.Errorf("tinted color = %v, want (0.2, 0.4, 0.6)", got)
	}
}
