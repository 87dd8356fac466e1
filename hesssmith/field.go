// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hesssmith

import "github.com/mjfairch/ubem2d/panel"

// VelocityField returns the net velocity (U,V) at each of the given field
// points (X,Y), due to the onset flow (ux,uy) plus the source and vortex
// distributions of every body in the solution.
func (s *System) VelocityField(ux, uy float64, soln Solution, X, Y []float64) (U, V []float64) {
	U = make([]float64, len(X))
	V = make([]float64, len(Y))
	for i := range X {
		U[i] = ux
		V[i] = uy
	}
	for k, body := range s.bodies {
		a, b := s.BodyRange(k)
		u, v := panel.SourceVelocityField(body, soln.Sigma[a:b+1], X, Y)
		for i := range X {
			U[i] += u[i]
			V[i] += v[i]
		}
		gammaPerPanel := make([]float64, body.N())
		for i := range gammaPerPanel {
			gammaPerPanel[i] = soln.Gamma[k]
		}
		u, v = panel.VortexVelocityField(body, gammaPerPanel, X, Y)
		for i := range X {
			U[i] += u[i]
			V[i] += v[i]
		}
	}
	return
}

// PressureField returns the Bernoulli pressure coefficient at each of the
// given field points, from the net velocity field there.
func PressureField(uMag float64, U, V []float64) []float64 {
	cp := make([]float64, len(U))
	for i := range U {
		q2 := U[i]*U[i] + V[i]*V[i]
		cp[i] = 1 - q2/(uMag*uMag)
	}
	return cp
}
