// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene supplies the collaborator side of the softpipe pipeline:
// mesh construction (built-in shapes and Wavefront OBJ ingestion), texture
// loading, the turntable camera used by the commands, and their YAML
// render configuration.
//
// Everything here runs once per scene load; the per-frame work lives in
// the softpipe package.
package scene

import (
	"math"

	"github.com/gogpu/softpipe/geom"
	"github.com/gogpu/softpipe/math3"
)

// Triangle returns a single unit triangle in the xy plane, facing +z.
func Triangle() geom.Geometry {
	return geom.Geometry{
		Positions: []math3.Vec3{
			{X: -0.5, Y: -0.5, Z: 0},
			{X: 0.5, Y: -0.5, Z: 0},
			{X: 0, Y: 0.5, Z: 0},
		},
		Normals: []math3.Vec3{
			{Z: 1}, {Z: 1}, {Z: 1},
		},
		TexCoords: []math3.Vec2{
			{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0.5, Y: 0},
		},
		Indices:  []uint32{0, 1, 2},
		Topology: geom.TopologyTriangles,
	}
}

// Quad returns a size x size quad in the xy plane, centered at the origin,
// facing +z, built from two triangles.
func Quad(size float64) geom.Geometry {
	h := size / 2
	return geom.Geometry{
		Positions: []math3.Vec3{
			{X: -h, Y: -h, Z: 0},
			{X: h, Y: -h, Z: 0},
			{X: h, Y: h, Z: 0},
			{X: -h, Y: h, Z: 0},
		},
		Normals: []math3.Vec3{
			{Z: 1}, {Z: 1}, {Z: 1}, {Z: 1},
		},
		TexCoords: []math3.Vec2{
			{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0},
		},
		Indices:  []uint32{0, 1, 2, 0, 2, 3},
		Topology: geom.TopologyTriangles,
	}
}

// Cube returns a size x size x size cube centered at the origin with flat
// per-face normals and per-face texture coordinates (24 vertices).
func Cube(size float64) geom.Geometry {
	h := size / 2

	type face struct {
		corners [4]math3.Vec3
		normal  math3.Vec3
	}
	faces := []face{
		{[4]math3.Vec3{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}}, math3.V3(0, 0, 1)},      // front
		{[4]math3.Vec3{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}, math3.V3(0, 0, -1)}, // back
		{[4]math3.Vec3{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}, math3.V3(-1, 0, 0)}, // left
		{[4]math3.Vec3{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}}, math3.V3(1, 0, 0)},      // right
		{[4]math3.Vec3{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}}, math3.V3(0, 1, 0)},      // top
		{[4]math3.Vec3{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}, math3.V3(0, -1, 0)}, // bottom
	}

	uv := [4]math3.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	g := geom.Geometry{Topology: geom.TopologyTriangles}
	for _, f := range faces {
		base := uint32(len(g.Positions))
		for i, p := range f.corners {
			g.Positions = append(g.Positions, p)
			g.Normals = append(g.Normals, f.normal)
			g.TexCoords = append(g.TexCoords, uv[i])
		}
		g.Indices = append(g.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return g
}

// Sphere returns a UV sphere of the given radius with smooth normals.
// rings and segments control tessellation; values below 3 are raised to 3.
func Sphere(radius float64, rings, segments int) geom.Geometry {
	if rings < 3 {
		rings = 3
	}
	if segments < 3 {
		segments = 3
	}

	g := geom.Geometry{Topology: geom.TopologyTriangles}

	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		sinPhi, cosPhi := math.Sincos(phi)
		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			sinTheta, cosTheta := math.Sincos(theta)

			n := math3.V3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta)
			g.Positions = append(g.Positions, n.Scale(radius))
			g.Normals = append(g.Normals, n)
			g.TexCoords = append(g.TexCoords, math3.V2(
				float64(s)/float64(segments),
				float64(r)/float64(rings),
			))
		}
	}

	stride := uint32(segments + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			g.Indices = append(g.Indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}
	return g
}
