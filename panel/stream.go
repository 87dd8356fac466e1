// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import "github.com/mjfairch/ubem2d/kernels"

// DefaultStreamSubpanels is the customary number of midpoint-rule
// subintervals to pass as m to SourceStreamField/VortexStreamField, which
// always take m explicitly; stream-function values are only needed for visualization-grade
// contours, so a cheap Riemann sum suffices where velocities require the
// exact closed form.
const DefaultStreamSubpanels = 5

// SourceStreamField returns the stream function at each of the given field
// points due to the source panels in g with strengths s, approximated by a
// midpoint Riemann sum of m sub-panels per panel.
func SourceStreamField(g Geom, s []float64, X, Y []float64, m int) []float64 {
	g.checkLengths("SourceStreamField")
	z := make([]float64, len(X))
	for j := 0; j < g.N(); j++ {
		dl := g.Edge[j] / float64(m)
		strength := s[j] * dl
		xx := g.X1[j] + 0.5*dl*g.Tx[j]
		yy := g.Y1[j] + 0.5*dl*g.Ty[j]
		for k := 0; k < m; k++ {
			for i := range X {
				z[i] += kernels.SourceStream(strength, xx, yy, X[i], Y[i])
			}
			xx += dl * g.Tx[j]
			yy += dl * g.Ty[j]
		}
	}
	return z
}

// VortexStreamField returns the stream function at each of the given field
// points due to the vortex panels in g with strengths s, approximated by a
// midpoint Riemann sum of m sub-panels per panel.
func VortexStreamField(g Geom, s []float64, X, Y []float64, m int) []float64 {
	g.checkLengths("VortexStreamField")
	z := make([]float64, len(X))
	for j := 0; j < g.N(); j++ {
		dl := g.Edge[j] / float64(m)
		strength := s[j] * dl
		xx := g.X1[j] + 0.5*dl*g.Tx[j]
		yy := g.Y1[j] + 0.5*dl*g.Ty[j]
		for k := 0; k < m; k++ {
			for i := range X {
				z[i] += kernels.VortexStream(strength, xx, yy, X[i], Y[i])
			}
			xx += dl * g.Tx[j]
			yy += dl * g.Ty[j]
		}
	}
	return z
}
