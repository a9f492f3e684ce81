// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"math"
	"testing"

	"github.com/gogpu/softpipe/math3"
)

func vecNear(a, b math3.Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
}

func TestTurntable_Matrices(t *testing.T) {
	cam := NewTurntable(1)
	mvp, mv, normal := cam.Matrices(0)

	// At angle 0 the camera sits on the +z axis; the origin lands on the
	// eye-space -z axis at the camera distance (elevation tilts it).
	origin := mv.MulPoint(math3.V3(0, 0, 0))
	wantDist := math.Hypot(cam.Distance, cam.Elevation)
	if math.Abs(origin.Length()-wantDist) > 1e-9 {
		t.Errorf("|eye-space origin| = %v, want %v", origin.Length(), wantDist)
	}
	if origin.Z >= 0 {
		t.Errorf("eye-space origin z = %v, want negative (in front of camera)", origin.Z)
	}

	// The origin projects to the NDC center line.
	clip := mvp.MulVec4(math3.V4(0, 0, 0, 1))
	ndc := clip.PerspectiveDivide()
	if math.Abs(ndc.X) > 1e-9 {
		t.Errorf("origin ndc x = %v, want 0", ndc.X)
	}

	// The normal matrix of the rigid view keeps normals unit length.
	n := normal.MulDir(math3.V3(0, 1, 0))
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Errorf("transformed normal length = %v, want 1", n.Length())
	}
}

func TestTurntable_Orbit(t *testing.T) {
	cam := NewTurntable(1)
	cam.Elevation = 0

	// A quarter turn swings the viewing axis from +z to +x: the point a
	// quarter turn around the orbit must land on the same eye coordinates.
	_, mv0, _ := cam.Matrices(0)
	_, mv1, _ := cam.Matrices(math.Pi / 2)

	e0 := mv0.MulPoint(math3.V3(0, 0, 1))
	e1 := mv1.MulPoint(math3.V3(1, 0, 0))

	if !vecNear(e0, e1) {
		t.Errorf("quarter turn mapping: e0 = %v, e1 = %v, want equal", e0, e1)
	}
}
