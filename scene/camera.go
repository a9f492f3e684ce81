// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"math"

	"github.com/gogpu/softpipe/math3"
)

// Turntable is the orbit camera the commands use: it circles the origin at
// a fixed distance and elevation and hands the pipeline the matrix triple
// it needs per frame.
type Turntable struct {
	// Distance is the camera's distance from the origin.
	Distance float64

	// Elevation is the camera height above the y=0 plane.
	Elevation float64

	// FOV is the vertical field of view in degrees.
	FOV float64

	// Aspect is width/height of the viewport.
	Aspect float64

	// Near and Far are the clip plane distances.
	Near, Far float64
}

// NewTurntable returns a turntable with sensible framing for a mesh of
// roughly unit scale.
func NewTurntable(aspect float64) Turntable {
	return Turntable{
		Distance:  3,
		Elevation: 1,
		FOV:       45,
		Aspect:    aspect,
		Near:      0.1,
		Far:       100,
	}
}

// Matrices returns the model-view-projection, model-view, and normal
// matrix for the camera rotated angle radians around the y axis.
func (t Turntable) Matrices(angle float64) (mvp, mv, normal math3.Mat4) {
	sin, cos := math.Sincos(angle)
	eye := math3.V3(t.Distance*sin, t.Elevation, t.Distance*cos)

	view := math3.LookAt(eye, math3.V3(0, 0, 0), math3.V3(0, 1, 0))
	proj := math3.Perspective(t.FOV*math.Pi/180, t.Aspect, t.Near, t.Far)

	mv = view // model transform is identity; the camera orbits instead
	mvp = proj.Mul(mv)
	normal = math3.NormalMatrix(mv)
	return mvp, mv, normal
}
