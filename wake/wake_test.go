// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wake

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestAppendAndCirculation(tst *testing.T) {
	chk.PrintTitle("wake append and total circulation")
	w := NewWake()
	w.Append(1.0, 0, 0)
	w.Append(-0.5, 1, 0)
	w.Append(2.0, 2, 0)
	chk.IntAssert(w.Len(), 3)
	chk.Scalar(tst, "circulation", 1e-14, w.Circulation(), 2.5)
}

func TestVelocityMatchesPointVortexFarField(tst *testing.T) {
	chk.PrintTitle("wake velocity far from a single vortex matches the point-vortex formula")
	w := NewWake()
	w.Append(3.0, 0, 0)
	X, Y := 10.0, 4.0
	u, v := w.VelocityAt(X, Y)
	r2 := X*X + Y*Y
	c := 3.0 / (2 * math.Pi)
	uExpect := -c * Y / r2
	vExpect := c * X / r2
	chk.Scalar(tst, "u", 1e-9, u, uExpect)
	chk.Scalar(tst, "v", 1e-9, v, vExpect)
}

func TestSelfAdvectPreservesCirculation(tst *testing.T) {
	chk.PrintTitle("self-advection conserves total circulation")
	w := NewWake()
	w.Append(1.0, 0, 0)
	w.Append(-1.0, 1, 0)
	w.Append(0.6, 0, 1)
	before := w.Circulation()
	w.SelfAdvect(0.01)
	chk.Scalar(tst, "circulation", 1e-14, w.Circulation(), before)
}

func TestAdvectRejectsLengthMismatch(tst *testing.T) {
	chk.PrintTitle("advect panics on length mismatch")
	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("expected panic on length mismatch")
		}
	}()
	w := NewWake()
	w.Append(1.0, 0, 0)
	w.Advect([]float64{1, 2}, []float64{1, 2}, 0.1)
}

func TestCoresLumpsSameSignRuns(tst *testing.T) {
	chk.PrintTitle("vortex cores lump consecutive same-sign runs")
	w := NewWake()
	w.Append(1.0, 0, 0)
	w.Append(1.0, 1, 0)
	w.Append(-2.0, 2, 0)
	w.Append(0.0, 3, 0) // dropped: zero strength
	w.Append(-1.0, 4, 0)
	gam, x, y := w.Cores()
	if len(gam) != 2 {
		tst.Fatalf("expected 2 cores, got %d", len(gam))
	}
	chk.Scalar(tst, "core 0 strength", 1e-14, gam[0], 2.0)
	chk.Scalar(tst, "core 0 x", 1e-14, x[0], 0.5)
	chk.Scalar(tst, "core 0 y", 1e-14, y[0], 0.0)
	chk.Scalar(tst, "core 1 strength", 1e-14, gam[1], -3.0)
	expectedX := (-2.0*2 + -1.0*4) / -3.0
	chk.Scalar(tst, "core 1 x", 1e-14, x[1], expectedX)
}
