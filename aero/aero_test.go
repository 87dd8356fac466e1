// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/mjfairch/ubem2d/geometry"
)

func TestDragLiftVectorsOrthonormal(tst *testing.T) {
	chk.PrintTitle("drag/lift unit vectors are orthonormal")
	Dx, Dy, Lx, Ly := DragLiftVectors(3.0, -1.0)
	chk.Scalar(tst, "|D|", 1e-14, Dx*Dx+Dy*Dy, 1)
	chk.Scalar(tst, "|L|", 1e-14, Lx*Lx+Ly*Ly, 1)
	chk.Scalar(tst, "D.L", 1e-14, Dx*Lx+Dy*Ly, 0)
}

func TestDragLiftVectorsSignConvention(tst *testing.T) {
	chk.PrintTitle("lift direction follows the gravity sign convention")
	_, _, Lx, Ly := DragLiftVectors(1, 0)
	chk.Scalar(tst, "Lx", 1e-14, Lx, 0)
	chk.Scalar(tst, "Ly", 1e-14, Ly, 1)
	_, _, Lx, Ly = DragLiftVectors(-1, 0)
	chk.Scalar(tst, "Lx", 1e-14, Lx, 0)
	chk.Scalar(tst, "Ly", 1e-14, Ly, 1)
}

func regularPolygon(n int) (x, y []float64) {
	x = make([]float64, n+1)
	y = make([]float64, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x[i] = math.Cos(theta)
		y[i] = math.Sin(theta)
	}
	return
}

func TestUniformPressureGivesZeroForce(tst *testing.T) {
	chk.PrintTitle("uniform pressure distribution around a closed body gives zero net force")
	x, y := regularPolygon(40)
	b, err := geometry.NewBody(x, y)
	if err != nil {
		tst.Fatalf("NewBody failed: %v", err)
	}
	cp := make([]float64, b.NEdge())
	for i := range cp {
		cp[i] = 0.37
	}
	Fx, Fy := Forces(b.Edge(), b.Nx(), b.Ny(), cp)
	CFx, CFy := ForceCoefficients(Fx, Fy, b.Diameter())
	chk.Scalar(tst, "CFx", 1e-9, CFx, 0)
	chk.Scalar(tst, "CFy", 1e-9, CFy, 0)
}

func TestMomentOrientationFlipsSign(tst *testing.T) {
	chk.PrintTitle("moment sign flips between CCW and CW conventions")
	Fx := []float64{1.0}
	Fy := []float64{0.0}
	x := []float64{0.0}
	y := []float64{1.0}
	mCCW := Moments(Fx, Fy, x, y, 0, 0, geometry.CCW)
	mCW := Moments(Fx, Fy, x, y, 0, 0, geometry.CW)
	chk.Scalar(tst, "moment sign flip", 1e-14, mCCW[0], -mCW[0])
}
