// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SourceVelocity returns the velocity induced at field point (X,Y) by a
// straight source panel starting at (x1,y1), with unit tangent (tx,ty),
// length L and uniform strength s.
func SourceVelocity(x1, y1, tx, ty, L, s, X, Y float64) (u, v float64) {
	dX, dY := X-x1, Y-y1
	B := -2 * (dX*tx + dY*ty)
	C := dX*dX + dY*dY
	coef := s / (2 * math.Pi)
	u = coef * Integral(-tx, dX, B, C, L)
	v = coef * Integral(-ty, dY, B, C, L)
	return
}

// VortexVelocity returns the velocity induced at field point (X,Y) by a
// straight vortex panel starting at (x1,y1), with unit tangent (tx,ty),
// length L and uniform strength s. A vortex panel's velocity is the
// source panel's velocity rotated 90 degrees counterclockwise.
func VortexVelocity(x1, y1, tx, ty, L, s, X, Y float64) (u, v float64) {
	us, vs := SourceVelocity(x1, y1, tx, ty, L, s, X, Y)
	return -vs, us
}

// Geom holds the per-panel geometric data needed to evaluate panel
// influences: one entry per panel, in a fixed, caller-defined order (for
// example, the concatenation of several bodies' panels in the multi-body
// Hess-Smith system).
type Geom struct {
	X1, Y1     []float64 // initial corner of each panel
	Tx, Ty     []float64 // unit tangent of each panel
	Edge       []float64 // length of each panel
	Xmid, Ymid []float64 // midpoint of each panel
}

// N returns the number of panels
func (g Geom) N() int { return len(g.Edge) }

func (g Geom) checkLengths(where string) {
	n := len(g.Edge)
	if len(g.X1) != n || len(g.Y1) != n || len(g.Tx) != n || len(g.Ty) != n ||
		len(g.Xmid) != n || len(g.Ymid) != n {
		chk.Panic("panel: %s: Geom fields have inconsistent lengths", where)
	}
}

// SourceVelocityAt returns the velocity induced at field point (X,Y) by the
// full set of source panels in g, with per-panel strengths s (len(s) must
// equal g.N()).
func SourceVelocityAt(g Geom, s []float64, X, Y float64) (u, v float64) {
	g.checkLengths("SourceVelocityAt")
	if len(s) != g.N() {
		chk.Panic("panel: SourceVelocityAt: len(s)=%d != N=%d", len(s), g.N())
	}
	for j := 0; j < g.N(); j++ {
		uj, vj := SourceVelocity(g.X1[j], g.Y1[j], g.Tx[j], g.Ty[j], g.Edge[j], s[j], X, Y)
		u += uj
		v += vj
	}
	return
}

// VortexVelocityAt returns the velocity induced at field point (X,Y) by the
// full set of vortex panels in g, with per-panel strengths s.
func VortexVelocityAt(g Geom, s []float64, X, Y float64) (u, v float64) {
	g.checkLengths("VortexVelocityAt")
	if len(s) != g.N() {
		chk.Panic("panel: VortexVelocityAt: len(s)=%d != N=%d", len(s), g.N())
	}
	for j := 0; j < g.N(); j++ {
		uj, vj := VortexVelocity(g.X1[j], g.Y1[j], g.Tx[j], g.Ty[j], g.Edge[j], s[j], X, Y)
		u += uj
		v += vj
	}
	return
}

// SourceVelocityField returns the velocity induced at each of the given
// field points (X,Y) by the source panels in g with strengths s.
func SourceVelocityField(g Geom, s []float64, X, Y []float64) (u, v []float64) {
	if len(X) != len(Y) {
		chk.Panic("panel: SourceVelocityField: len(X)=%d != len(Y)=%d", len(X), len(Y))
	}
	u = make([]float64, len(X))
	v = make([]float64, len(X))
	for i := range X {
		u[i], v[i] = SourceVelocityAt(g, s, X[i], Y[i])
	}
	return
}

// VortexVelocityField returns the velocity induced at each of the given
// field points (X,Y) by the vortex panels in g with strengths s.
func VortexVelocityField(g Geom, s []float64, X, Y []float64) (u, v []float64) {
	if len(X) != len(Y) {
		chk.Panic("panel: VortexVelocityField: len(X)=%d != len(Y)=%d", len(X), len(Y))
	}
	u = make([]float64, len(X))
	v = make([]float64, len(X))
	for i := range X {
		u[i], v[i] = VortexVelocityAt(g, s, X[i], Y[i])
	}
	return
}
