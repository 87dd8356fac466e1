// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wake implements a free point-vortex wake: an append-only list of
// discrete vortices shed from a body's trailing edge, each advected by the
// local flow velocity at every time step.
package wake

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// DefaultCoreRadius is the regularization length scale used by Velocity
// when a wake is constructed with NewWake; it desingularizes the 1/r
// point-vortex kernel at short range, where an unregularized wake-self-
// induction step would otherwise blow up.
const DefaultCoreRadius = 1.e-6

// Wake is a free point-vortex wake. Vortices are only ever appended, never
// removed or reordered, so wake index i always refers to the i-th vortex
// shed, for the life of the wake.
type Wake struct {
	gam, x, y []float64
	eps       float64
}

// New returns an empty wake with the given regularization radius eps.
func New(eps float64) *Wake {
	return &Wake{eps: eps}
}

// NewWake returns an empty wake with the default regularization radius.
func NewWake() *Wake {
	return New(DefaultCoreRadius)
}

// Len returns the number of vortices currently in the wake.
func (w *Wake) Len() int { return len(w.gam) }

// Gam returns the circulation of every vortex in the wake.
func (w *Wake) Gam() []float64 { return w.gam }

// X returns the x-coordinate of every vortex in the wake.
func (w *Wake) X() []float64 { return w.x }

// Y returns the y-coordinate of every vortex in the wake.
func (w *Wake) Y() []float64 { return w.y }

// Circulation returns the sum of all vortex circulations currently in the
// wake, the total bound circulation shed so far.
func (w *Wake) Circulation() float64 {
	var s float64
	for _, g := range w.gam {
		s += g
	}
	return s
}

// Append adds a new vortex of circulation gam at (x,y) to the wake.
func (w *Wake) Append(gam, x, y float64) {
	w.gam = append(w.gam, gam)
	w.x = append(w.x, x)
	w.y = append(w.y, y)
}

// Velocity returns the velocity induced by every vortex in the wake at the
// field points (X,Y), which must have equal length.
func (w *Wake) Velocity(X, Y []float64) (u, v []float64) {
	if len(X) != len(Y) {
		chk.Panic("wake: Velocity: len(X)=%d != len(Y)=%d", len(X), len(Y))
	}
	u = make([]float64, len(X))
	v = make([]float64, len(X))
	e2 := w.eps * w.eps
	for i := range w.gam {
		c := w.gam[i] / (2 * math.Pi)
		for k := range X {
			dx := X[k] - w.x[i]
			dy := Y[k] - w.y[i]
			d2 := dx*dx + dy*dy + e2
			u[k] -= c * dy / d2
			v[k] += c * dx / d2
		}
	}
	return
}

// VelocityAt returns the velocity induced by the wake at the single field
// point (X,Y).
func (w *Wake) VelocityAt(X, Y float64) (u, v float64) {
	us, vs := w.Velocity([]float64{X}, []float64{Y})
	return us[0], vs[0]
}

// SelfVelocity returns the velocity induced by the wake at its own vortex
// positions, the velocity used to self-advect a free wake.
func (w *Wake) SelfVelocity() (u, v []float64) {
	return w.Velocity(w.x, w.y)
}

// SelfAdvect moves every vortex by its self-induced velocity over a step dt
// (forward Euler).
func (w *Wake) SelfAdvect(dt float64) {
	u, v := w.SelfVelocity()
	w.Advect(u, v, dt)
}

// Advect moves every vortex i by (vx[i],vy[i])*dt (forward Euler). vx and vy
// must have length equal to the wake's current vortex count.
func (w *Wake) Advect(vx, vy []float64, dt float64) {
	n := w.Len()
	if len(vx) != n || len(vy) != n {
		chk.Panic("wake: Advect: len(vx)=%d, len(vy)=%d, want %d", len(vx), len(vy), n)
	}
	for i := 0; i < n; i++ {
		w.x[i] += vx[i] * dt
		w.y[i] += vy[i] * dt
	}
}

// Cores lumps consecutive runs of same-signed vortex circulation into a
// single equivalent "core" vortex per run, located at the circulation-
// weighted centroid of the run (the vortex-strength analogue of a center of
// mass). Zero-strength vortices are dropped first. Lumping keeps the
// far-field induced velocity of a long-lived wake accurate while bounding
// the cost of evaluating it, since a naturally rolled-up wake quickly
// accumulates thousands of individually weak, same-signed vortices that are
// well approximated by a handful of lumped cores.
func (w *Wake) Cores() (gam, x, y []float64) {
	var mu, xx, yy []float64
	for i, g := range w.gam {
		if g != 0 {
			mu = append(mu, g)
			xx = append(xx, w.x[i])
			yy = append(yy, w.y[i])
		}
	}
	n := len(mu)
	if n == 0 {
		return nil, nil, nil
	}
	i0 := []int{0}
	for i := 1; i < n; i++ {
		if sign(mu[i]) != sign(mu[i-1]) {
			i0 = append(i0, i)
		}
	}
	i1 := append(append([]int{}, i0[1:]...), n)
	gam = make([]float64, len(i0))
	x = make([]float64, len(i0))
	y = make([]float64, len(i0))
	for j := range i0 {
		var cs, cx, cy float64
		for k := i0[j]; k < i1[j]; k++ {
			cs += mu[k]
			cx += mu[k] * xx[k]
			cy += mu[k] * yy[k]
		}
		gam[j] = cs
		x[j] = cx / cs
		y[j] = cy / cs
	}
	return
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
