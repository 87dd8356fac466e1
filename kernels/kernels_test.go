// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernels

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestVortexIsRotatedSource(tst *testing.T) {
	chk.PrintTitle("vortex velocity is a 90deg ccw rotation of source velocity")
	us, vs := SourceVelocity(2.5, 0.1, -0.2, 1.3, 0.7)
	uv, vv := VortexVelocity(2.5, 0.1, -0.2, 1.3, 0.7)
	chk.Scalar(tst, "u", 1e-14, uv, -vs)
	chk.Scalar(tst, "v", 1e-14, vv, us)
}

func TestSourceStreamMatchesVelocity(tst *testing.T) {
	chk.PrintTitle("source stream function gradient matches velocity (finite difference)")
	s, xs, ys := 1.7, 0.0, 0.0
	X, Y := 1.1, 0.6
	h := 1e-6
	// u = d(psi)/dY, v = -d(psi)/dX
	dpsidY := (SourceStream(s, xs, ys, X, Y+h) - SourceStream(s, xs, ys, X, Y-h)) / (2 * h)
	dpsidX := (SourceStream(s, xs, ys, X+h, Y) - SourceStream(s, xs, ys, X-h, Y)) / (2 * h)
	u, v := SourceVelocity(s, xs, ys, X, Y)
	chk.Scalar(tst, "u", 1e-6, u, dpsidY)
	chk.Scalar(tst, "v", 1e-6, v, -dpsidX)
}

func TestUniformStreamGradient(tst *testing.T) {
	chk.PrintTitle("uniform flow stream function gradient matches velocity")
	ux, uy := 1.3, -0.4
	X, Y := 0.5, 0.2
	h := 1e-6
	dpsidY := (UniformStream(ux, uy, X, Y+h) - UniformStream(ux, uy, X, Y-h)) / (2 * h)
	dpsidX := (UniformStream(ux, uy, X+h, Y) - UniformStream(ux, uy, X-h, Y)) / (2 * h)
	chk.Scalar(tst, "u", 1e-9, ux, dpsidY)
	chk.Scalar(tst, "v", 1e-9, uy, -dpsidX)
}

func TestDoubletVelocityDecaysInverseSquare(tst *testing.T) {
	chk.PrintTitle("doublet velocity decays like 1/r^2")
	s, alpha := 1.0, math.Pi/6
	u1, v1 := DoubletVelocity(s, alpha, 0, 0, 2, 0)
	u2, v2 := DoubletVelocity(s, alpha, 0, 0, 4, 0)
	// velocity ~ 1/r^2, so doubling distance should quarter the magnitude
	m1 := math.Hypot(u1, v1)
	m2 := math.Hypot(u2, v2)
	chk.Scalar(tst, "ratio", 1e-9, m1/m2, 4.0)
}
