// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Influence holds the four dense influence matrices relating unit source
// and vortex panel strengths to the normal and tangential velocity
// components they induce at every panel midpoint:
//
//	At[i][j], An[i][j]: tangential/normal velocity at midpoint i due to a
//	                     unit-strength source panel j
//	Bt[i][j], Bn[i][j]: tangential/normal velocity at midpoint i due to a
//	                     unit-strength vortex panel j
//
// The diagonal (self-influence) entries are not evaluated through the
// general panel integral, which is singular at s=0; they are set to their
// known analytical limits instead (see Assemble).
type Influence struct {
	At, An, Bt, Bn *mat.Dense
}

// Assemble builds the influence matrices for a set of panels g (source
// panels) against field points described by the same set of panels
// (midpoints g.Xmid/Ymid, with unit normals nx,ny and unit tangents
// g.Tx,g.Ty), as used in the Hess-Smith and Basu-Hancock linear systems.
// nx, ny are the outward unit normals at each panel's midpoint.
func Assemble(g Geom, nx, ny []float64) Influence {
	g.checkLengths("Assemble")
	n := g.N()
	if len(nx) != n || len(ny) != n {
		chk.Panic("panel: Assemble: len(nx)=%d, len(ny)=%d, want %d", len(nx), len(ny), n)
	}
	At := mat.NewDense(n, n, nil)
	An := mat.NewDense(n, n, nil)
	Bt := mat.NewDense(n, n, nil)
	Bn := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				// self-influence: a panel induces no tangential velocity on
				// itself from its own source distribution, and exactly
				// +-1/2 of its own normal/tangential strength from its own
				// uniform source/vortex sheet (Hess-Smith limit).
				At.Set(i, j, 0)
				An.Set(i, j, 0.5)
				Bt.Set(i, j, 0.5)
				Bn.Set(i, j, 0)
				continue
			}
			us, vs := SourceVelocity(g.X1[j], g.Y1[j], g.Tx[j], g.Ty[j], g.Edge[j], 1, g.Xmid[i], g.Ymid[i])
			uv, vv := VortexVelocity(g.X1[j], g.Y1[j], g.Tx[j], g.Ty[j], g.Edge[j], 1, g.Xmid[i], g.Ymid[i])
			At.Set(i, j, us*g.Tx[i]+vs*g.Ty[i])
			An.Set(i, j, us*nx[i]+vs*ny[i])
			Bt.Set(i, j, uv*g.Tx[i]+vv*g.Ty[i])
			Bn.Set(i, j, uv*nx[i]+vv*ny[i])
		}
	}
	return Influence{At: At, An: An, Bt: Bt, Bn: Bn}
}
