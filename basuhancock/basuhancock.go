// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package basuhancock implements the unsteady panel method of Basu and
// Hancock: a single airfoil with a shed point-vortex wake and an implicit
// Kutta condition enforced at the trailing edge. The first call to Step
// primes the solver with a steady Hess-Smith solution; every later call
// advances the airfoil-plus-wake system by one time step.
package basuhancock

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"

	"github.com/mjfairch/ubem2d/geometry"
	"github.com/mjfairch/ubem2d/hesssmith"
	"github.com/mjfairch/ubem2d/panel"
	"github.com/mjfairch/ubem2d/wake"
)

// Config collects the tunables of the solver. Zero-value fields are
// invalid; use DefaultConfig to start from reasonable values.
type Config struct {
	Xref, Yref float64 // far-field reference point for potential integration
	NRef       int     // number of straight sub-steps from (Xref,Yref) to the leading edge
	MaxIters   int     // cap on the implicit Kutta fixed-point iteration
	Tol        float64 // convergence tolerance on the shed wake-panel velocity
	MaxErr     float64 // maximum tolerated Neumann/Kutta boundary residual
	WakepFree  bool    // let the shed wake panel's heading track local flow instead of the bisector
	WakeBody   bool    // include body-induced velocity when advecting the wake
	WakeSelf   bool    // include wake self-induced velocity when advecting the wake
}

// DefaultConfig returns the configuration used by the reference solver.
func DefaultConfig() Config {
	return Config{
		Xref: -10, Yref: 0,
		NRef: 20, MaxIters: 200,
		Tol: 1e-6, MaxErr: 1e-5,
		WakepFree: true, WakeBody: true, WakeSelf: true,
	}
}

// Solver couples one geometry.Airfoil with one wake.Wake. Its body-panel
// influence matrices and their An factorization are computed once, from
// the airfoil's geometry at construction time, and reused unchanged for
// every later step even as the airfoil moves; only the live airfoil
// normals, tangents and midpoints -- which do move -- enter the onset,
// wake-panel and wake flow terms. This is the same linearization the
// reference solver uses; re-factoring An every step would price out the
// method's whole appeal against a body-fitted unsteady panel code.
type Solver struct {
	body *geometry.Airfoil
	wake *wake.Wake
	cfg  Config

	steps int

	at0, an0, bt0, bn0 *mat.Dense
	lu0                mat.LU
	btRowSum, bnRowSum []float64

	xmidPrev, ymidPrev []float64
	sigma              []float64
	gamma              float64
	phi                []float64
	circBound          float64
	delk, thk          float64
}

// New builds a solver for the given airfoil and wake. The airfoil's
// current orientation is taken as the reference configuration against
// which the frozen influence matrices are assembled.
func New(body *geometry.Airfoil, wk *wake.Wake, cfg Config) *Solver {
	g := panel.GeomFromBody(body)
	inf := panel.Assemble(g, body.Nx(), body.Ny())
	n := g.N()
	s := &Solver{
		body: body, wake: wk, cfg: cfg,
		at0: inf.At, an0: inf.An, bt0: inf.Bt, bn0: inf.Bn,
		btRowSum: make([]float64, n), bnRowSum: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s.btRowSum[i] += inf.Bt.At(i, j)
			s.bnRowSum[i] += inf.Bn.At(i, j)
		}
	}
	s.lu0.Factorize(inf.An)
	return s
}

// Steps returns the number of completed steps, including the initial
// steady priming step.
func (s *Solver) Steps() int { return s.steps }

// CircBound returns the bound circulation, gamma times the airfoil
// perimeter, as of the most recently completed step.
func (s *Solver) CircBound() float64 { return s.circBound }

// StepResult holds the per-panel solution and the wake vortex, if any,
// shed during the step.
type StepResult struct {
	Sigma                  []float64
	Gamma                  float64
	Cp                     []float64
	ShedCirc, ShedX, ShedY float64
}

// Step advances the solver by one step. The first call, regardless of dt,
// primes the solver with a steady Hess-Smith solution and sheds no wake
// vortex. Every later call requires a nonzero dt and performs one
// unsteady implicit-Kutta step, returning ErrSolverConvergence if the
// fixed-point iteration fails to converge within Config.MaxIters or meets a
// quadratic for the shed circulation with no real root, or
// ErrBoundaryResidual if the converged solution violates the Neumann or
// Kutta boundary condition by more than Config.MaxErr.
func (s *Solver) Step(dt, ux, uy float64) (StepResult, error) {
	if s.steps == 0 {
		return s.steadyStep(ux, uy)
	}
	if dt == 0 {
		chk.Panic("basuhancock: Step: dt must be nonzero after the priming step")
	}
	return s.unsteadyStep(dt, ux, uy)
}

func (s *Solver) steadyStep(ux, uy float64) (StepResult, error) {
	g := panel.GeomFromBody(s.body)
	sys := hesssmith.New([]panel.Geom{g}, [][]float64{s.body.Nx()}, [][]float64{s.body.Ny()})
	soln := sys.Solve(ux, uy)
	qt := sys.TangentialFlow(ux, uy, soln)
	cp := hesssmith.PressureCoefficient(math.Hypot(ux, uy), qt)
	phi := s.computePotential(ux, uy, qt, soln.Sigma, soln.Gamma[0], 0)
	s.delk = s.body.Perimeter() / float64(s.body.NEdge())
	s.thk = s.trailingEdgeBisector()
	return s.postStep(soln.Sigma, soln.Gamma[0], phi, cp, 0, 0, 0), nil
}

func (s *Solver) unsteadyStep(dt, ux, uy float64) (StepResult, error) {
	n := s.body.NEdge()
	xmid, ymid := s.body.Xmid(), s.body.Ymid()
	nx, ny := s.body.Nx(), s.body.Ny()
	vn := make([]float64, n)
	for i := 0; i < n; i++ {
		dxdt := (xmid[i] - s.xmidPrev[i]) / dt
		dydt := (ymid[i] - s.ymidPrev[i]) / dt
		vn[i] = dxdt*nx[i] + dydt*ny[i]
	}

	delk0, thk0 := s.delk, s.thk
	sigk, gamk, uwk, vwk, err := s.solveImplicitKutta(ux, uy, vn, dt)
	if err != nil {
		s.delk, s.thk = delk0, thk0
		return StepResult{}, err
	}

	L := s.body.Perimeter()
	gamwk := (L / s.delk) * (s.gamma - gamk) // Kelvin circulation theorem

	qt, qn := s.flow(ux, uy, sigk, gamk, gamwk)
	residual := make([]float64, n)
	for i := range qn {
		residual[i] = qn[i] - vn[i]
	}
	errNeumann := la.VecNorm(residual)
	q0 := math.Hypot(qt[0], qn[0])
	qN := math.Hypot(qt[n-1], qn[n-1])
	errKutta := math.Abs(q0*q0 - qN*qN - 2*L*(gamk-s.gamma)/dt)

	if errNeumann > s.cfg.MaxErr {
		s.delk, s.thk = delk0, thk0
		return StepResult{}, &ErrBoundaryResidual{Which: "neumann", Residual: errNeumann, Max: s.cfg.MaxErr}
	}
	if errKutta > s.cfg.MaxErr {
		s.delk, s.thk = delk0, thk0
		return StepResult{}, &ErrBoundaryResidual{Which: "kutta", Residual: errKutta, Max: s.cfg.MaxErr}
	}

	phik := s.computePotential(ux, uy, qt, sigk, gamk, gamwk)
	spdinf2 := ux*ux + uy*uy
	cp := make([]float64, n)
	for i := 0; i < n; i++ {
		dphidt := (phik[i] - s.phi[i]) / dt
		q2 := qt[i]*qt[i] + qn[i]*qn[i]
		cp[i] = 1 - (q2+2*dphidt)/spdinf2
	}

	shedCirc := gamwk * s.delk
	x0, y0 := s.body.X()[0], s.body.Y()[0]
	shedX := x0 + 0.5*s.delk*math.Cos(s.thk) + uwk*dt
	shedY := y0 + 0.5*s.delk*math.Sin(s.thk) + vwk*dt
	s.wake.Append(shedCirc, shedX, shedY)
	s.advectWake(ux, uy, sigk, gamk, dt)

	return s.postStep(sigk, gamk, phik, cp, shedCirc, shedX, shedY), nil
}

func (s *Solver) postStep(sigma []float64, gamma float64, phi, cp []float64, shedCirc, shedX, shedY float64) StepResult {
	s.steps++
	s.circBound = gamma * s.body.Perimeter()
	s.xmidPrev = append(s.xmidPrev[:0], s.body.Xmid()...)
	s.ymidPrev = append(s.ymidPrev[:0], s.body.Ymid()...)
	s.sigma = sigma
	s.gamma = gamma
	s.phi = phi
	return StepResult{Sigma: sigma, Gamma: gamma, Cp: cp, ShedCirc: shedCirc, ShedX: shedX, ShedY: shedY}
}

// trailingEdgeBisector returns the heading angle of the bisector of the
// body's first and last panel tangents, i.e. the natural direction in
// which a trailing-edge wake panel points.
func (s *Solver) trailingEdgeBisector() float64 {
	tx, ty := s.body.Tx(), s.body.Ty()
	n := len(tx)
	dx := 0.5 * (tx[n-1] - tx[0])
	dy := 0.5 * (ty[n-1] - ty[0])
	return math.Atan2(dy, dx)
}

// flowOnset returns the background flow's tangential and normal
// components at every panel midpoint, using the airfoil's current
// (live) tangents and normals.
func (s *Solver) flowOnset(ux, uy float64) (ut, un []float64) {
	tx, ty := s.body.Tx(), s.body.Ty()
	nx, ny := s.body.Nx(), s.body.Ny()
	n := len(tx)
	ut = make([]float64, n)
	un = make([]float64, n)
	for i := 0; i < n; i++ {
		ut[i] = ux*tx[i] + uy*ty[i]
		un[i] = ux*nx[i] + uy*ny[i]
	}
	return
}

// flowBodyPanels returns the flow induced at every panel midpoint by the
// body's own source and vortex distribution, using the frozen influence
// matrices.
func (s *Solver) flowBodyPanels(sigma []float64, gamma float64) (ft, fn []float64) {
	n := s.at0.RawMatrix().Rows
	ft = make([]float64, n)
	fn = make([]float64, n)
	for i := 0; i < n; i++ {
		ft[i] = gamma * s.btRowSum[i]
		fn[i] = gamma * s.bnRowSum[i]
		for j := 0; j < n; j++ {
			ft[i] += s.at0.At(i, j) * sigma[j]
			fn[i] += s.an0.At(i, j) * sigma[j]
		}
	}
	return
}

// unitWakePanelFlow returns the tangential and normal flow induced at
// every (live) body midpoint by a unit-strength wake panel anchored at
// the (live) trailing edge with heading s.thk and length s.delk.
func (s *Solver) unitWakePanelFlow() (wpt, wpn []float64) {
	x1, y1 := s.body.X()[0], s.body.Y()[0]
	tx, ty := math.Cos(s.thk), math.Sin(s.thk)
	xmid, ymid := s.body.Xmid(), s.body.Ymid()
	u, v := vortexVelocityFieldSinglePanel(x1, y1, tx, ty, s.delk, 1, xmid, ymid)
	btx, bty := s.body.Tx(), s.body.Ty()
	bnx, bny := s.body.Nx(), s.body.Ny()
	n := len(xmid)
	wpt = make([]float64, n)
	wpn = make([]float64, n)
	for i := 0; i < n; i++ {
		wpt[i] = u[i]*btx[i] + v[i]*bty[i]
		wpn[i] = u[i]*bnx[i] + v[i]*bny[i]
	}
	return
}

func (s *Solver) flowWakePanel(gammaWake float64) (ft, fn []float64) {
	wpt, wpn := s.unitWakePanelFlow()
	ft = make([]float64, len(wpt))
	fn = make([]float64, len(wpn))
	for i := range wpt {
		ft[i] = gammaWake * wpt[i]
		fn[i] = gammaWake * wpn[i]
	}
	return
}

// flowWake returns the tangential and normal flow induced at every (live)
// body midpoint by the existing shed wake.
func (s *Solver) flowWake() (ft, fn []float64) {
	xmid, ymid := s.body.Xmid(), s.body.Ymid()
	u, v := s.wake.Velocity(xmid, ymid)
	tx, ty := s.body.Tx(), s.body.Ty()
	nx, ny := s.body.Nx(), s.body.Ny()
	n := len(xmid)
	ft = make([]float64, n)
	fn = make([]float64, n)
	for i := 0; i < n; i++ {
		ft[i] = u[i]*tx[i] + v[i]*ty[i]
		fn[i] = u[i]*nx[i] + v[i]*ny[i]
	}
	return
}

// flow returns the total tangential and normal flow at every body
// midpoint for the given body and wake-panel strengths.
func (s *Solver) flow(ux, uy float64, sigma []float64, gamma, gammaWake float64) (qt, qn []float64) {
	uit, uin := s.flowOnset(ux, uy)
	pft, pfn := s.flowBodyPanels(sigma, gamma)
	wpt, wpn := s.flowWakePanel(gammaWake)
	wt, wn := s.flowWake()
	n := len(uit)
	qt = make([]float64, n)
	qn = make([]float64, n)
	for i := 0; i < n; i++ {
		qt[i] = uit[i] + pft[i] + wpt[i] + wt[i]
		qn[i] = uin[i] + pfn[i] + wpn[i] + wn[i]
	}
	return
}

// solveAn solves An*x = rhs using the frozen An factorization.
func (s *Solver) solveAn(rhs []float64) []float64 {
	b := mat.NewVecDense(len(rhs), append([]float64(nil), rhs...))
	x := mat.NewVecDense(len(rhs), nil)
	if err := s.lu0.SolveVecTo(x, false, b); err != nil {
		chk.Panic("basuhancock: solveAn: singular An matrix: %v", err)
	}
	out := make([]float64, len(rhs))
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out
}

func dotRow(m *mat.Dense, row int, v []float64) float64 {
	var s float64
	for j := range v {
		s += m.At(row, j) * v[j]
	}
	return s
}

// smallestRootQuadratic solves a*x^2+b*x+c=0 and returns the real root of
// smaller absolute value. It reports false if the coefficients describe
// no line (a=b=0) or the roots are complex.
func smallestRootQuadratic(a, b, c float64) (float64, bool) {
	if a == 0 {
		if b == 0 {
			return 0, false
		}
		return -c / b, true
	}
	d := b*b - 4*a*c
	if d < 0 {
		return 0, false
	}
	sq := math.Sqrt(d)
	r1 := (-b + sq) / (2 * a)
	r2 := (-b - sq) / (2 * a)
	if math.Abs(r1) < math.Abs(r2) {
		return r1, true
	}
	return r2, true
}

// solveImplicitKutta solves the fixed point problem for the trailing-edge
// wake panel: its strength, geometry and the resulting body source and
// vortex strengths all depend on one another. vn is the kinematic normal
// velocity of the body at every panel midpoint, already reflecting the
// airfoil's own motion since the previous step.
func (s *Solver) solveImplicitKutta(ux, uy float64, vn []float64, dt float64) (sigma []float64, gamma, uwk, vwk float64, err error) {
	uit, uin := s.flowOnset(ux, uy)
	wvt, wvn := s.flowWake()
	L := s.body.Perimeter()
	n := s.body.NEdge()
	if !s.cfg.WakepFree {
		s.thk = s.trailingEdgeBisector()
	}

	var uwkPrev, vwkPrev float64
	for iter := 0; iter < s.cfg.MaxIters; iter++ {
		wpt, wpn := s.unitWakePanelFlow()
		ratio := L / s.delk
		bk := make([]float64, n)
		ck := make([]float64, n)
		for i := 0; i < n; i++ {
			bk[i] = ratio*wpn[i] - s.bnRowSum[i]
			ck[i] = -uin[i] - ratio*s.gamma*wpn[i] - wvn[i] + vn[i]
		}
		xx := s.solveAn(bk)
		yy := s.solveAn(ck)

		alpha1 := dotRow(s.at0, 0, xx) + s.btRowSum[0] - ratio*wpt[0]
		beta1 := dotRow(s.at0, 0, yy) + ratio*s.gamma*wpt[0] + wvt[0] + uit[0]
		alphaN := dotRow(s.at0, n-1, xx) + s.btRowSum[n-1] - ratio*wpt[n-1]
		betaN := dotRow(s.at0, n-1, yy) + ratio*s.gamma*wpt[n-1] + wvt[n-1] + uit[n-1]

		zeta := alpha1*alpha1 - alphaN*alphaN
		eta := 2 * (alpha1*beta1 - alphaN*betaN - L/dt)
		chi := beta1*beta1 - betaN*betaN + 2*L*s.gamma/dt + vn[0]*vn[0] - vn[n-1]*vn[n-1]

		gk, ok := smallestRootQuadratic(zeta, eta, chi)
		if !ok {
			return nil, 0, 0, 0, &ErrSolverConvergence{MaxIters: s.cfg.MaxIters}
		}
		sigk := make([]float64, n)
		for i := range sigk {
			sigk[i] = gk*xx[i] + yy[i]
		}

		x1, y1 := s.body.X()[0], s.body.Y()[0]
		xwk := x1 + 0.5*s.delk*math.Cos(s.thk)
		ywk := y1 + 0.5*s.delk*math.Sin(s.thk)
		g := panel.GeomFromBody(s.body)
		gArr := make([]float64, n)
		for i := range gArr {
			gArr[i] = gk
		}
		uv, vv := panel.VortexVelocityAt(g, gArr, xwk, ywk)
		us, vs := panel.SourceVelocityAt(g, sigk, xwk, ywk)
		uw, vw := s.wake.VelocityAt(xwk, ywk)
		uwkNew := uv + us + uw + ux
		vwkNew := vv + vs + vw + uy

		s.delk = math.Hypot(uwkNew, vwkNew) * dt
		if s.cfg.WakepFree {
			s.thk = math.Atan2(vwkNew, uwkNew)
		}

		if iter > 0 {
			d := la.VecNorm([]float64{uwkNew - uwkPrev, vwkNew - vwkPrev})
			if d < s.cfg.Tol {
				return sigk, gk, uwkNew, vwkNew, nil
			}
		}
		uwkPrev, vwkPrev = uwkNew, vwkNew
		sigma, gamma, uwk, vwk = sigk, gk, uwkNew, vwkNew
	}
	return nil, 0, 0, 0, &ErrSolverConvergence{MaxIters: s.cfg.MaxIters}
}

// computePotential returns the velocity potential at every panel
// midpoint, found by line-integrating the total velocity field from
// (Xref,Yref) to the leading edge and marching tangential flow around
// both surfaces from there.
func (s *Solver) computePotential(ux, uy float64, qt, sigma []float64, gamma, gammaWake float64) []float64 {
	n := s.body.NEdge()
	le := s.body.Le()
	xle, yle := s.body.LeadingEdge()
	xpp := utl.LinSpace(s.cfg.Xref, xle, s.cfg.NRef+1)
	ypp := utl.LinSpace(s.cfg.Yref, yle, s.cfg.NRef+1)

	m := s.cfg.NRef
	Xp := xpp[:m]
	Yp := ypp[:m]
	u := make([]float64, m)
	v := make([]float64, m)
	for i := range u {
		u[i], v[i] = ux, uy
	}

	g := panel.GeomFromBody(s.body)
	us, vs := panel.SourceVelocityField(g, sigma, Xp, Yp)
	gArr := make([]float64, n)
	for i := range gArr {
		gArr[i] = gamma
	}
	uv, vv := panel.VortexVelocityField(g, gArr, Xp, Yp)
	uw, vw := s.wake.Velocity(Xp, Yp)
	for i := 0; i < m; i++ {
		u[i] += us[i] + uv[i] + uw[i]
		v[i] += vs[i] + vv[i] + vw[i]
	}
	if s.delk != 0 {
		x1, y1 := s.body.X()[0], s.body.Y()[0]
		tx, ty := math.Cos(s.thk), math.Sin(s.thk)
		uwp, vwp := vortexVelocityFieldSinglePanel(x1, y1, tx, ty, s.delk, gammaWake, Xp, Yp)
		for i := 0; i < m; i++ {
			u[i] += uwp[i]
			v[i] += vwp[i]
		}
	}

	var sum float64
	for i := 0; i < m; i++ {
		sum += u[i]*(xpp[i+1]-xpp[i]) + v[i]*(ypp[i+1]-ypp[i])
	}

	phi := make([]float64, n+1)
	phi[le] = sum
	edge := s.body.Edge()
	for i := le - 1; i >= 0; i-- {
		phi[i] = phi[i+1] - qt[i]*edge[i]
	}
	for i := le + 1; i <= n; i++ {
		phi[i] = phi[i-1] + qt[i-1]*edge[i-1]
	}

	mid := make([]float64, n)
	for i := 0; i < n; i++ {
		mid[i] = 0.5 * (phi[i] + phi[i+1])
	}
	return mid
}

// advectWake advances every wake vortex by one explicit Euler step under
// the combined onset, (optionally) body-induced, and (optionally)
// self-induced velocity.
func (s *Solver) advectWake(ux, uy float64, sigma []float64, gamma, dt float64) {
	nv := s.wake.Len()
	vx := make([]float64, nv)
	vy := make([]float64, nv)
	for i := range vx {
		vx[i], vy[i] = ux, uy
	}
	if s.cfg.WakeBody {
		g := panel.GeomFromBody(s.body)
		us, vs := panel.SourceVelocityField(g, sigma, s.wake.X(), s.wake.Y())
		gArr := make([]float64, g.N())
		for i := range gArr {
			gArr[i] = gamma
		}
		uv, vv := panel.VortexVelocityField(g, gArr, s.wake.X(), s.wake.Y())
		for i := 0; i < nv; i++ {
			vx[i] += us[i] + uv[i]
			vy[i] += vs[i] + vv[i]
		}
	}
	if s.cfg.WakeSelf {
		us, vs := s.wake.SelfVelocity()
		for i := 0; i < nv; i++ {
			vx[i] += us[i]
			vy[i] += vs[i]
		}
	}
	s.wake.Advect(vx, vy, dt)
}

func vortexVelocityFieldSinglePanel(x1, y1, tx, ty, L, strength float64, X, Y []float64) (u, v []float64) {
	u = make([]float64, len(X))
	v = make([]float64, len(X))
	for i := range X {
		u[i], v[i] = panel.VortexVelocity(x1, y1, tx, ty, L, strength, X[i], Y[i])
	}
	return
}
