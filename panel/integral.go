// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package panel reduces the line integrals of singular Green's functions
// (sources, vortices) over straight panels to closed-form per-panel
// contributions, and assembles them into dense influence matrices.
package panel

import "math"

// Integral evaluates the definite integral
//
//	I(nu,mu,B,C,L) = \int_0^L (nu*s + mu) / (s^2 + B*s + C) ds
//
// in closed form. D = 4*C - B*B; when D <= 0 the field point is collinear
// with the panel's supporting line and the arctangent term is omitted
// (it would otherwise be evaluated across a singularity). C must be
// nonzero: callers avoid evaluating panel integrals at a panel's own
// initial corner (C=0 occurs only there), always evaluating at the
// midpoints of other panels instead.
func Integral(nu, mu, B, C, L float64) float64 {
	D := 4*C - B*B
	z := 0.5 * nu * math.Log(math.Abs((L*L+B*L+C)/C))
	if D > 0 {
		sd := math.Sqrt(D)
		t := 2*mu - B*nu
		z += (t / sd) * (math.Atan((2*L+B)/sd) - math.Atan(B/sd))
	}
	return z
}
