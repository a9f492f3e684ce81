// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package softpipe

import (
	"fmt"

	"github.com/gogpu/softpipe/geom"
)

// assemble runs primitive assembly for one geometry: every three
// consecutive indices gather into one Triangle record placed at the
// geometry's base offset in the shared triangle array, one worker per
// primitive. Disjoint base regions let multiple geometries assemble into
// the same array without contention.
//
// Non-triangle topologies are counted and skipped: an accepted limitation,
// not an error. It reads c.verts, so the vertex stage for this geometry
// must have completed.
func (c *RenderContext) assemble(g *geom.Geometry, base int) error {
	if g.Topology != geom.TopologyTriangles {
		c.skippedPrims.Add(int64(primitiveCount(g)))
		return nil
	}

	n := g.TriangleCount()
	if base+n > len(c.tris) {
		return fmt.Errorf("softpipe: triangle array overflow: base %d + %d > %d", base, n, len(c.tris))
	}

	c.pool.Range(n, func(p int) {
		i0 := g.Indices[3*p]
		i1 := g.Indices[3*p+1]
		i2 := g.Indices[3*p+2]
		c.tris[base+p] = Triangle{
			V:  [3]TransformedVertex{c.verts[i0], c.verts[i1], c.verts[i2]},
			ID: base + p,
		}
	})
	return nil
}

// primitiveCount returns how many primitives a geometry's index list
// describes under its topology.
func primitiveCount(g *geom.Geometry) int {
	switch g.Topology {
	case geom.TopologyPoints:
		return len(g.Indices)
	case geom.TopologyLines:
		return len(g.Indices) / 2
	default:
		return len(g.Indices) / 3
	}
}
