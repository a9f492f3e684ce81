// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom holds the geometry buffer store consumed by the softpipe
// rasterization pipeline: per-primitive vertex attribute arrays, index
// lists, and texture images.
//
// A Store is an arena: it owns every attribute array, and the pipeline
// refers to geometry exclusively through GeometryID handles. The store is
// populated once at scene load and is immutable afterwards, so handles
// stay valid for as long as the store lives.
package geom

import (
	"errors"
	"fmt"

	"github.com/gogpu/softpipe/math3"
)

// Topology identifies the primitive kind of a geometry's index list.
type Topology uint8

const (
	// TopologyTriangles groups every three indices into one triangle.
	TopologyTriangles Topology = iota

	// TopologyPoints and TopologyLines are accepted by the store but the
	// pipeline's assembly stage skips them. Known limitation, not an error.
	TopologyPoints
	TopologyLines
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case TopologyTriangles:
		return "triangles"
	case TopologyPoints:
		return "points"
	case TopologyLines:
		return "lines"
	default:
		return fmt.Sprintf("topology(%d)", uint8(t))
	}
}

// GeometryID is a handle into a Store. The zero store has no valid handles.
type GeometryID int

// Geometry is one mesh primitive's buffers. All attribute slices are owned
// by the Store once added; callers must not mutate them afterwards.
type Geometry struct {
	// Positions holds one model-space position per vertex.
	Positions []math3.Vec3

	// Normals holds one model-space normal per vertex.
	// Must match Positions in length.
	Normals []math3.Vec3

	// TexCoords holds one texture coordinate per vertex, in [0,1].
	// May be nil when the geometry is untextured.
	TexCoords []math3.Vec2

	// Indices is the index list interpreted per Topology.
	Indices []uint32

	// Topology is the primitive kind of Indices.
	Topology Topology

	// Texture is the diffuse texture, or nil.
	Texture *Texture

	// BaseColor is the uniform surface color used when no texture is
	// bound. Leave HasBaseColor false to fall back to the pipeline's
	// neutral gray.
	BaseColor    [3]float64
	HasBaseColor bool
}

// VertexCount returns the number of vertices in the geometry.
func (g *Geometry) VertexCount() int { return len(g.Positions) }

// TriangleCount returns the number of triangles the index list describes,
// or 0 for non-triangle topologies.
func (g *Geometry) TriangleCount() int {
	if g.Topology != TopologyTriangles {
		return 0
	}
	return len(g.Indices) / 3
}

// Textured reports whether the geometry carries both a texture image and a
// texture coordinate stream. The pipeline samples only when both exist.
func (g *Geometry) Textured() bool {
	return g.Texture != nil && g.TexCoords != nil
}

// Store is the arena owning all loaded geometry.
//
// Thread safety: Add is not safe for concurrent use; lookup methods are,
// once loading has finished.
type Store struct {
	geoms []Geometry
}

// NewStore returns an empty geometry store.
func NewStore() *Store { return &Store{} }

// Errors returned by Store.Add.
var (
	ErrNoVertices      = errors.New("geom: geometry has no vertices")
	ErrAttributeLength = errors.New("geom: attribute array length mismatch")
	ErrIndexOutOfRange = errors.New("geom: index out of range")
	ErrIndexCount      = errors.New("geom: triangle index count not a multiple of 3")
	ErrInvalidGeometry = errors.New("geom: invalid geometry handle")
)

// Add validates g and moves it into the store, returning its handle.
func (s *Store) Add(g Geometry) (GeometryID, error) {
	n := len(g.Positions)
	if n == 0 {
		return -1, ErrNoVertices
	}
	if len(g.Normals) != n {
		return -1, fmt.Errorf("%w: %d normals for %d positions", ErrAttributeLength, len(g.Normals), n)
	}
	if g.TexCoords != nil && len(g.TexCoords) != n {
		return -1, fmt.Errorf("%w: %d texcoords for %d positions", ErrAttributeLength, len(g.TexCoords), n)
	}
	if g.Topology == TopologyTriangles && len(g.Indices)%3 != 0 {
		return -1, fmt.Errorf("%w: %d indices", ErrIndexCount, len(g.Indices))
	}
	for _, idx := range g.Indices {
		if int(idx) >= n {
			return -1, fmt.Errorf("%w: index %d with %d vertices", ErrIndexOutOfRange, idx, n)
		}
	}

	s.geoms = append(s.geoms, g)
	return GeometryID(len(s.geoms) - 1), nil
}

// Geometry returns the geometry for a handle, or an error for a handle the
// store never issued.
func (s *Store) Geometry(id GeometryID) (*Geometry, error) {
	if id < 0 || int(id) >= len(s.geoms) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGeometry, id)
	}
	return &s.geoms[id], nil
}

// Len returns the number of geometries in the store.
func (s *Store) Len() int { return len(s.geoms) }

// TriangleTotal returns the total triangle count across all geometries.
// Non-triangle topologies contribute zero.
func (s *Store) TriangleTotal() int {
	total := 0
	for i := range s.geoms {
		total += s.geoms[i].TriangleCount()
	}
	return total
}

// MaxVertexCount returns the largest per-geometry vertex count, used by the
// pipeline to size its transformed-vertex scratch array.
func (s *Store) MaxVertexCount() int {
	maxN := 0
	for i := range s.geoms {
		if n := s.geoms[i].VertexCount(); n > maxN {
			maxN = n
		}
	}
	return maxN
}
