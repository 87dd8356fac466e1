// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/mjfairch/ubem2d/geometry"
)

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

func TestInfluenceSelfDiagonal(tst *testing.T) {
	chk.PrintTitle("influence matrix self-influence diagonal entries")
	x, y := regularPolygon(24, true)
	b, err := geometry.NewBody(x, y)
	if err != nil {
		tst.Fatalf("NewBody failed: %v", err)
	}
	g := GeomFromBody(b)
	inf := Assemble(g, b.Nx(), b.Ny())
	n := g.N()
	for i := 0; i < n; i++ {
		chk.Scalar(tst, "At diagonal", 1e-14, inf.At.At(i, i), 0)
		chk.Scalar(tst, "An diagonal", 1e-14, inf.An.At(i, i), 0.5)
		chk.Scalar(tst, "Bt diagonal", 1e-14, inf.Bt.At(i, i), 0.5)
		chk.Scalar(tst, "Bn diagonal", 1e-14, inf.Bn.At(i, i), 0)
	}
}

// TestInfluenceCylinderSymmetry checks the classical Hess-Smith property
// that, for a body with panels numbered symmetrically about a diameter, An
// is symmetric and At is antisymmetric (a cylinder's source-induced normal
// velocity is reciprocal, its tangential velocity is not).
func TestInfluenceCylinderSymmetry(tst *testing.T) {
	chk.PrintTitle("source influence on a circle: An symmetric, At antisymmetric")
	x, y := regularPolygon(36, true)
	b, err := geometry.NewBody(x, y)
	if err != nil {
		tst.Fatalf("NewBody failed: %v", err)
	}
	g := GeomFromBody(b)
	inf := Assemble(g, b.Nx(), b.Ny())
	n := g.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			chk.Scalar(tst, "An symmetry", 1e-9, inf.An.At(i, j), inf.An.At(j, i))
			chk.Scalar(tst, "At antisymmetry", 1e-9, inf.At.At(i, j), -inf.At.At(j, i))
		}
	}
}

func TestSourceVelocityFieldFarFromPanelMatchesPointSource(tst *testing.T) {
	chk.PrintTitle("panel velocity far from the panel matches an equivalent point source")
	L, s := 0.01, 3.0
	x1, y1 := 0.0, 0.0
	tx, ty := 1.0, 0.0
	X, Y := 100.0, 37.0
	u, v := SourceVelocity(x1, y1, tx, ty, L, s, X, Y)
	// total panel strength concentrated at its midpoint, as a point source
	// of strength s*L
	xm, ym := 0.5*L, 0.0
	dx, dy := X-xm, Y-ym
	r2 := dx*dx + dy*dy
	c := (s * L) / (2 * math.Pi)
	up, vp := c*dx/r2, c*dy/r2
	chk.Scalar(tst, "u", 1e-6, u, up)
	chk.Scalar(tst, "v", 1e-6, v, vp)
}

func TestConcatGeomIndexRanges(tst *testing.T) {
	chk.PrintTitle("concatenated multi-body geometry panel index ranges")
	x1, y1 := regularPolygon(10, true)
	x2, y2 := regularPolygon(6, true)
	for i := range x2 {
		x2[i] += 5
	}
	b1, err := geometry.NewBody(x1, y1)
	if err != nil {
		tst.Fatalf("NewBody failed: %v", err)
	}
	b2, err := geometry.NewBody(x2, y2)
	if err != nil {
		tst.Fatalf("NewBody failed: %v", err)
	}
	g, idx := ConcatGeom(GeomFromBody(b1), GeomFromBody(b2))
	if idx[0] != 0 || idx[1] != 10 || idx[2] != 16 {
		tst.Errorf("unexpected index ranges: %v", idx)
	}
	if g.N() != 16 {
		tst.Errorf("expected 16 total panels, got %d", g.N())
	}
}
