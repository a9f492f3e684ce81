// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

import (
	"testing"

	"github.com/gogpu/softpipe/geom"
	"github.com/gogpu/softpipe/math3"
)

// TestAssemble_GathersIndexedVertices builds a four-vertex quad with two
// triangles and checks each assembled triangle carries copies of the right
// transformed vertices at the right ids.
func TestAssemble_GathersIndexedVertices(t *testing.T) {
	n := math3.V3(0, 0, 1)
	quad := geom.Geometry{
		Positions: []math3.Vec3{
			math3.V3(-1, -1, 0), math3.V3(1, -1, 0),
			math3.V3(1, 1, 0), math3.V3(-1, 1, 0),
		},
		Normals: []math3.Vec3{n, n, n, n},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}

	ctx, err := NewRenderContext(newStore(t, quad), Options{Width: 8, Height: 8, Supersample: 1})
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()

	g, err := ctx.store.Geometry(0)
	if err != nil {
		t.Fatal(err)
	}
	ctx.transformVertices(g, math3.Identity(), math3.Identity(), math3.Identity())
	if err := ctx.assemble(g, 0); err != nil {
		t.Fatalf("assemble() error: %v", err)
	}

	if len(ctx.tris) != 2 {
		t.Fatalf("triangle array length = %d, want 2", len(ctx.tris))
	}
	for p := 0; p < 2; p++ {
		if ctx.tris[p].ID != p {
			t.Errorf("triangle %d id = %d, want %d", p, ctx.tris[p].ID, p)
		}
		for v := 0; v < 3; v++ {
			want := ctx.verts[quad.Indices[3*p+v]]
			if ctx.tris[p].V[v].Screen != want.Screen {
				t.Errorf("triangle %d vertex %d = %+v, want gathered vertex %d",
					p, v, ctx.tris[p].V[v].Screen, quad.Indices[3*p+v])
			}
		}
	}
}

// TestAssemble_DisjointBaseRegions assembles two geometries into the shared
// array; neither overwrites the other's region.
func TestAssemble_DisjointBaseRegions(t *testing.T) {
	a := flatTri(math3.V2(-1, 0), math3.V2(0, 0), math3.V2(-1, 1))
	b := flatTri(math3.V2(0, 0), math3.V2(1, 0), math3.V2(0, 1))

	ctx, err := NewRenderContext(newStore(t, a, b), Options{Width: 8, Height: 8, Supersample: 1})
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()

	for i := 0; i < 2; i++ {
		g, err := ctx.store.Geometry(geom.GeometryID(i))
		if err != nil {
			t.Fatal(err)
		}
		ctx.transformVertices(g, math3.Identity(), math3.Identity(), math3.Identity())
		if err := ctx.assemble(g, ctx.triBase[i]); err != nil {
			t.Fatal(err)
		}
	}

	if ctx.tris[0].ID != 0 || ctx.tris[1].ID != 1 {
		t.Errorf("triangle ids = %d, %d, want 0, 1", ctx.tris[0].ID, ctx.tris[1].ID)
	}
	// The two regions hold the two different triangles.
	if ctx.tris[0].V[0].Screen.X == ctx.tris[1].V[0].Screen.X {
		t.Error("second geometry overwrote the first geometry's region")
	}
}

// TestAssemble_SkipsAndCounts feeds point and line topologies through
// assembly; both are skipped, counted, and produce no triangles.
func TestAssemble_SkipsAndCounts(t *testing.T) {
	pts := flatTri(math3.V2(0, 0), math3.V2(1, 0), math3.V2(0, 1))
	pts.Topology = geom.TopologyPoints // 3 point primitives

	lines := flatTri(math3.V2(0, 0), math3.V2(1, 0), math3.V2(0, 1))
	lines.Topology = geom.TopologyLines
	lines.Indices = []uint32{0, 1, 1, 2} // 2 line primitives

	ctx, err := NewRenderContext(newStore(t, pts, lines), Options{Width: 8, Height: 8, Supersample: 1})
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Close()

	for i := 0; i < 2; i++ {
		g, err := ctx.store.Geometry(geom.GeometryID(i))
		if err != nil {
			t.Fatal(err)
		}
		if err := ctx.assemble(g, ctx.triBase[i]); err != nil {
			t.Fatal(err)
		}
	}

	if got := ctx.SkippedPrimitives(); got != 5 {
		t.Errorf("SkippedPrimitives() = %d, want 5", got)
	}
	if len(ctx.tris) != 0 {
		t.Errorf("triangle array length = %d, want 0", len(ctx.tris))
	}
}
