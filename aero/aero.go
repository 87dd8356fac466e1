// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package aero turns a panel-method pressure solution into aerodynamic
// forces, moments, and their nondimensional coefficients.
package aero

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/mjfairch/ubem2d/geometry"
)

// Forces returns the per-panel force components given panel lengths,
// outward unit normals, and the pressure coefficient at each panel
// midpoint. Normals are assumed outward-pointing, hence the minus sign.
func Forces(edge, nx, ny, cp []float64) (Fx, Fy []float64) {
	n := len(edge)
	if len(nx) != n || len(ny) != n || len(cp) != n {
		chk.Panic("aero: Forces: slice length mismatch")
	}
	Fx = make([]float64, n)
	Fy = make([]float64, n)
	for i := 0; i < n; i++ {
		Fx[i] = -cp[i] * edge[i] * nx[i]
		Fy[i] = -cp[i] * edge[i] * ny[i]
	}
	return
}

// ForceCoefficients sums a per-panel force distribution and nondimensionalizes
// it by a characteristic length.
func ForceCoefficients(Fx, Fy []float64, charLen float64) (CFx, CFy float64) {
	if len(Fx) != len(Fy) {
		chk.Panic("aero: ForceCoefficients: len(Fx)=%d != len(Fy)=%d", len(Fx), len(Fy))
	}
	for i := range Fx {
		CFx += Fx[i]
		CFy += Fy[i]
	}
	CFx /= charLen
	CFy /= charLen
	return
}

// DragLiftVectors returns unit vectors in the drag and lift directions for
// onset flow (ux,uy). The drag direction is the onset flow direction; the
// lift direction is the drag direction rotated 90 degrees CCW if it points
// rightward (Dx>=0), CW otherwise, matching the convention that lift points
// away from local gravity, assumed along -y.
func DragLiftVectors(ux, uy float64) (Dx, Dy, Lx, Ly float64) {
	mag := math.Hypot(ux, uy)
	Dx, Dy = ux/mag, uy/mag
	if Dx >= 0 {
		Lx, Ly = -Dy, Dx
	} else {
		Lx, Ly = Dy, -Dx
	}
	return
}

// DragLiftCoefficients projects the force coefficients onto the drag and
// lift directions determined by the onset flow.
func DragLiftCoefficients(CFx, CFy, ux, uy float64) (CD, CL float64) {
	Dx, Dy, Lx, Ly := DragLiftVectors(ux, uy)
	CD = CFx*Dx + CFy*Dy
	CL = CFx*Lx + CFy*Ly
	return
}

// Moments returns the moment of each per-panel force (Fx,Fy) applied at
// (x,y) about the axis through (x0,y0), positive in the sense given by
// orientation.
func Moments(Fx, Fy, x, y []float64, x0, y0 float64, sense geometry.Orientation) []float64 {
	n := len(Fx)
	if len(Fy) != n || len(x) != n || len(y) != n {
		chk.Panic("aero: Moments: slice length mismatch")
	}
	m := make([]float64, n)
	for i := 0; i < n; i++ {
		v := (x[i]-x0)*Fy[i] - (y[i]-y0)*Fx[i]
		if sense == geometry.CW {
			v = -v
		}
		m[i] = v
	}
	return m
}

// MomentCoefficient sums a per-panel moment distribution and
// nondimensionalizes it by the square of a characteristic length.
func MomentCoefficient(m []float64, charLen float64) float64 {
	var s float64
	for _, v := range m {
		s += v
	}
	return s / (charLen * charLen)
}

// body is the subset of geometry.Body's accessors needed to compute force
// and moment coefficients.
type body interface {
	Edge() []float64
	Nx() []float64
	Ny() []float64
	Xmid() []float64
	Ymid() []float64
	Diameter() float64
}

// BodyCDCLCM returns the drag, lift, and moment coefficients for a body
// given the onset flow and the pressure coefficient at each panel midpoint.
// Moments are taken about (x0,y0) in the sense given by momentSense; the
// body's diameter is the characteristic length.
func BodyCDCLCM(ux, uy float64, b body, cp []float64, x0, y0 float64, momentSense geometry.Orientation) (CD, CL, CM float64) {
	Fx, Fy := Forces(b.Edge(), b.Nx(), b.Ny(), cp)
	CFx, CFy := ForceCoefficients(Fx, Fy, b.Diameter())
	CD, CL = DragLiftCoefficients(CFx, CFy, ux, uy)
	m := Moments(Fx, Fy, b.Xmid(), b.Ymid(), x0, y0, momentSense)
	CM = MomentCoefficient(m, b.Diameter())
	return
}

// airfoil is the subset of geometry.Airfoil's accessors needed to compute
// force and moment coefficients about a chord-line reference point.
type airfoil interface {
	body
	ChordPoint(pp float64) (x0, y0 float64)
	PitchUp() geometry.Orientation
}

// AirfoilCDCLCM returns the drag, lift, and moment coefficients for an
// airfoil given the onset flow and pressure distribution. Moments are taken
// about the chord-line point at fractional position pp (0 = leading edge, 1
// = trailing edge), positive in the airfoil's pitch-up sense.
func AirfoilCDCLCM(ux, uy float64, foil airfoil, cp []float64, pp float64) (CD, CL, CM float64) {
	x0, y0 := foil.ChordPoint(pp)
	return BodyCDCLCM(ux, uy, foil, cp, x0, y0, foil.PitchUp())
}
