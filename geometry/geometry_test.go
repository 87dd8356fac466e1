// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// regularPolygon returns the n+1 corners (closed) of a regular n-gon
// inscribed in a unit circle, traversed counterclockwise starting at angle
// zero if ccw is true, clockwise otherwise.
func regularPolygon(n int, ccw bool) (x, y []float64) {
	x = make([]float64, n+1)
	y = make([]float64, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		if !ccw {
			theta = -theta
		}
		x[i] = math.Cos(theta)
		y[i] = math.Sin(theta)
	}
	return
}

func TestTurningAngleClosedPolygon(tst *testing.T) {
	chk.PrintTitle("turning angle of closed polygons")
	xccw, yccw := regularPolygon(20, true)
	ta := TurningAngle(xccw, yccw, true)
	chk.Scalar(tst, "ccw turning angle", 1e-9, ta, 2*math.Pi)

	xcw, ycw := regularPolygon(20, false)
	ta = TurningAngle(xcw, ycw, true)
	chk.Scalar(tst, "cw turning angle", 1e-9, ta, -2*math.Pi)
}

func TestTurningAngleReversalNegates(tst *testing.T) {
	chk.PrintTitle("turning angle negates under reversal")
	x, y := regularPolygon(15, true)
	ta := TurningAngle(x, y, true)
	n := len(x)
	xr, yr := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		xr[i], yr[i] = x[n-1-i], y[n-1-i]
	}
	tar := TurningAngle(xr, yr, true)
	chk.Scalar(tst, "reversed turning angle", 1e-9, tar, -ta)
}

func TestBodyOrthonormalFrame(tst *testing.T) {
	chk.PrintTitle("body tangent/normal orthonormal frame")
	x, y := regularPolygon(30, true)
	b, err := NewBody(x, y)
	if err != nil {
		tst.Fatalf("NewBody failed: %v", err)
	}
	tx, ty, nx, ny := b.Tx(), b.Ty(), b.Nx(), b.Ny()
	for i := range tx {
		chk.Scalar(tst, "tangent unit length", 1e-12, tx[i]*tx[i]+ty[i]*ty[i], 1)
		chk.Scalar(tst, "normal unit length", 1e-12, nx[i]*nx[i]+ny[i]*ny[i], 1)
		chk.Scalar(tst, "tangent.normal orthogonality", 1e-12, tx[i]*nx[i]+ty[i]*ny[i], 0)
	}
}

func TestBodyNormalsPointOutward(tst *testing.T) {
	chk.PrintTitle("body normals point outward from a closed CCW polygon")
	x, y := regularPolygon(40, true)
	b, err := NewBody(x, y)
	if err != nil {
		tst.Fatalf("NewBody failed: %v", err)
	}
	xmid, ymid, nx, ny := b.Xmid(), b.Ymid(), b.Nx(), b.Ny()
	for i := range xmid {
		// for a unit circle, the outward normal at the midpoint is
		// (approximately) the radial direction itself
		r := math.Hypot(xmid[i], ymid[i])
		dot := (xmid[i]/r)*nx[i] + (ymid[i]/r)*ny[i]
		if dot < 0.9 {
			tst.Errorf("normal at panel %d does not point outward: dot=%g", i, dot)
		}
	}
}

func TestZeroTurningAngleIsInvalid(tst *testing.T) {
	chk.PrintTitle("zero turning angle is an invalid body")
	// a degenerate back-and-forth line has zero turning angle
	x := []float64{0, 1, 0}
	y := []float64{0, 0, 0}
	_, err := NewBody(x, y)
	if err == nil {
		tst.Errorf("expected an error for a degenerate body")
	}
}

func TestClosedCentroidExcludesDuplicateCorner(tst *testing.T) {
	chk.PrintTitle("closed broken-line centroid excludes the duplicated corner")
	x := []float64{0, 2, 2, 0, 0}
	y := []float64{0, 0, 2, 2, 0}
	bl, err := NewBrokenLine(x, y)
	if err != nil {
		tst.Fatalf("NewBrokenLine failed: %v", err)
	}
	if !bl.Closed() {
		tst.Fatalf("expected broken line to be closed")
	}
	x0, y0 := bl.Centroid()
	chk.Scalar(tst, "centroid x", 1e-12, x0, 1.0)
	chk.Scalar(tst, "centroid y", 1e-12, y0, 1.0)
}

func TestDiameterInvariantUnderRigidMotion(tst *testing.T) {
	chk.PrintTitle("diameter is preserved exactly under rigid motion")
	x, y := regularPolygon(25, true)
	b, err := NewBody(x, y)
	if err != nil {
		tst.Fatalf("NewBody failed: %v", err)
	}
	d0 := b.Diameter()
	b.Rotate(0.37)
	b.Translate(3.1, -2.2)
	d1 := b.Diameter()
	chk.Scalar(tst, "diameter", 1e-13, d1, d0)
}
