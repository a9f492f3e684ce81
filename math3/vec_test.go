// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package math3

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVec3_DotCross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	z := V3(0, 0, 1)

	if got := x.Dot(y); got != 0 {
		t.Errorf("x.Dot(y) = %v, want 0", got)
	}
	if got := x.Cross(y); !vecAlmostEqual(got, z) {
		t.Errorf("x.Cross(y) = %v, want %v", got, z)
	}
	if got := y.Cross(x); !vecAlmostEqual(got, z.Scale(-1)) {
		t.Errorf("y.Cross(x) = %v, want %v", got, z.Scale(-1))
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := V3(3, 4, 0).Normalize()
	if !almostEqual(v.Length(), 1) {
		t.Errorf("Length() = %v, want 1", v.Length())
	}
	if !vecAlmostEqual(v, V3(0.6, 0.8, 0)) {
		t.Errorf("Normalize() = %v, want (0.6, 0.8, 0)", v)
	}

	// Zero vector stays zero instead of producing NaN.
	zero := V3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("zero.Normalize() = %v, want zero", zero)
	}
}

func TestVec4_PerspectiveDivide(t *testing.T) {
	v := V4(2, 4, 6, 2).PerspectiveDivide()
	if !almostEqual(v.X, 1) || !almostEqual(v.Y, 2) || !almostEqual(v.Z, 3) {
		t.Errorf("PerspectiveDivide() = %v, want (1, 2, 3, 2)", v)
	}
	if v.W != 2 {
		t.Errorf("W = %v, want 2 (preserved)", v.W)
	}

	// w = 0 passes through unchanged.
	v = V4(1, 2, 3, 0).PerspectiveDivide()
	if v != V4(1, 2, 3, 0) {
		t.Errorf("divide by w=0 = %v, want unchanged", v)
	}
}
