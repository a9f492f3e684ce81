// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/softpipe/geom"
	"github.com/gogpu/softpipe/math3"
)

// LoadOBJ reads a Wavefront OBJ file and returns its mesh as a single
// triangle geometry.
func LoadOBJ(path string) (geom.Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("scene: open obj: %w", err)
	}
	defer f.Close()

	g, err := ParseOBJ(f)
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return g, nil
}

// ParseOBJ parses Wavefront OBJ data.
//
// Supported directives: v, vn, vt, f (with v, v/vt, v//vn, and v/vt/vn
// reference forms, negative indices allowed); polygons triangulate as
// fans. Everything else (groups, materials, smoothing) is ignored.
// Faces without normal references get a flat per-face normal; texture
// coordinates appear in the result only when every face references them.
func ParseOBJ(r io.Reader) (geom.Geometry, error) {
	var (
		positions []math3.Vec3
		normals   []math3.Vec3
		texcoords []math3.Vec2
	)

	// corner is one parsed face corner; indices are 0-based, -1 = absent.
	type corner struct {
		p, t, n int
	}
	var faces [][]corner

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return geom.Geometry{}, fmt.Errorf("line %d: v: %w", lineNo, err)
			}
			positions = append(positions, math3.V3(v[0], v[1], v[2]))

		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return geom.Geometry{}, fmt.Errorf("line %d: vn: %w", lineNo, err)
			}
			normals = append(normals, math3.V3(v[0], v[1], v[2]))

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return geom.Geometry{}, fmt.Errorf("line %d: vt: %w", lineNo, err)
			}
			// OBJ uses a bottom-left origin; the texel grid is top-down.
			texcoords = append(texcoords, math3.V2(v[0], 1-v[1]))

		case "f":
			if len(fields) < 4 {
				return geom.Geometry{}, fmt.Errorf("line %d: face with %d corners", lineNo, len(fields)-1)
			}
			face := make([]corner, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				p, t, n, err := parseFaceRef(ref, len(positions), len(texcoords), len(normals))
				if err != nil {
					return geom.Geometry{}, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face = append(face, corner{p: p, t: t, n: n})
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return geom.Geometry{}, err
	}
	if len(faces) == 0 {
		return geom.Geometry{}, fmt.Errorf("no faces")
	}

	// Every corner needs its own texcoord slot only if any face has them.
	hasUV := true
	for _, face := range faces {
		for _, cr := range face {
			if cr.t < 0 {
				hasUV = false
			}
		}
	}

	g := geom.Geometry{Topology: geom.TopologyTriangles}

	// Unify (position, texcoord, normal) triplets into single indices.
	seen := make(map[[3]int]uint32)
	emit := func(cr corner, flatNormal math3.Vec3) uint32 {
		key := [3]int{cr.p, cr.t, cr.n}
		if cr.n < 0 {
			// Flat normals are per face, never shared across faces.
			key[2] = -len(g.Positions) - 2
		}
		if idx, ok := seen[key]; ok && cr.n >= 0 {
			return idx
		}

		idx := uint32(len(g.Positions))
		g.Positions = append(g.Positions, positions[cr.p])
		if cr.n >= 0 {
			g.Normals = append(g.Normals, normals[cr.n].Normalize())
		} else {
			g.Normals = append(g.Normals, flatNormal)
		}
		if hasUV {
			g.TexCoords = append(g.TexCoords, texcoords[cr.t])
		}
		seen[key] = idx
		return idx
	}

	for _, face := range faces {
		// Fan-triangulate; the flat normal comes from the first triangle.
		flat := positions[face[1].p].Sub(positions[face[0].p]).
			Cross(positions[face[2].p].Sub(positions[face[0].p])).Normalize()

		for i := 1; i+1 < len(face); i++ {
			g.Indices = append(g.Indices,
				emit(face[0], flat),
				emit(face[i], flat),
				emit(face[i+1], flat),
			)
		}
	}
	return g, nil
}

// parseFloats parses exactly n leading float fields.
func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, have %d", n, len(fields))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseFaceRef parses one face corner reference (v, v/vt, v//vn, v/vt/vn)
// into 0-based indices; absent components return -1. OBJ indices are
// 1-based and may be negative (relative to the end of the array).
func parseFaceRef(ref string, np, nt, nn int) (p, t, n int, err error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("bad face reference %q", ref)
	}

	resolve := func(s string, count int) (int, error) {
		if s == "" {
			return -1, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("bad index %q", s)
		}
		if v < 0 {
			v += count
		} else {
			v--
		}
		if v < 0 || v >= count {
			return 0, fmt.Errorf("index %q out of range (%d entries)", s, count)
		}
		return v, nil
	}

	if p, err = resolve(parts[0], np); err != nil || p < 0 {
		if err == nil {
			err = fmt.Errorf("face reference %q has no position", ref)
		}
		return 0, 0, 0, err
	}
	t, n = -1, -1
	if len(parts) > 1 {
		if t, err = resolve(parts[1], nt); err != nil {
			return 0, 0, 0, err
		}
	}
	if len(parts) > 2 {
		if n, err = resolve(parts[2], nn); err != nil {
			return 0, 0, 0, err
		}
	}
	return p, t, n, nil
}
