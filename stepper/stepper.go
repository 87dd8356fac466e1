// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stepper drives an airfoil through a prescribed pitch-heave
// motion, advancing an unsteady basuhancock.Solver one time step per
// kinematic sample and reading off the resulting aerodynamic coefficients,
// step energies, and bound circulation.
package stepper

import (
	"math"

	"github.com/mjfairch/ubem2d/aero"
	"github.com/mjfairch/ubem2d/basuhancock"
	"github.com/mjfairch/ubem2d/geometry"
	"github.com/mjfairch/ubem2d/kinematics"
	"github.com/mjfairch/ubem2d/wake"
)

// Kinematics is one prescribed-motion sample: pitch in degrees and heave
// as a fraction of chord, at time T.
type Kinematics struct {
	T, Pitch, Heave float64
}

// Sensors collects the aerodynamic coefficients, step energies, and bound
// circulation measured from one solver step.
type Sensors struct {
	CT, CL, CM float64 // thrust, lift, and moment coefficients
	Ein, Eout  float64 // energy consumed and produced by the step
	BoundCirc  float64 // bound circulation at the end of the step
}

// Output pairs the kinematic sample that drove a step with the sensors
// measured from it.
type Output struct {
	Kinematics Kinematics
	Sensors    Sensors
}

// Stepper couples an airfoil, its unsteady solver, and the prescribed
// pitch-heave motion that drives it.
type Stepper struct {
	foil   *geometry.Airfoil
	solver *basuhancock.Solver
	pp     float64
	ux, uy float64

	t0, alp0, y0 float64
}

// New builds a Stepper for foil, shedding into wk, with pitch prescribed
// about chord fraction pp (0=leading edge, 1=trailing edge), under onset
// flow (ux,uy). foil is taken in its initial, undeflected orientation.
func New(foil *geometry.Airfoil, wk *wake.Wake, pp, ux, uy float64) *Stepper {
	return &Stepper{
		foil:   foil,
		solver: basuhancock.New(foil, wk, basuhancock.DefaultConfig()),
		pp:     pp,
		ux:     ux,
		uy:     uy,
	}
}

// Step pitches and heaves the airfoil by the increment since the previous
// sample, advances the solver by one time step, and returns the
// resulting aerodynamic sensors. The first call primes the solver with a
// steady solution regardless of k.T.
func (s *Stepper) Step(k Kinematics) (Output, error) {
	dt := k.T - s.t0
	dalp := (k.Pitch - s.alp0) * math.Pi / 180
	dy := (k.Heave - s.y0) * s.foil.Chord()

	s.foil.Pitch(dalp, s.pp)
	s.foil.Heave(dy)

	res, err := s.solver.Step(dt, s.ux, s.uy)
	if err != nil {
		return Output{}, err
	}

	sens := s.sensors(res, dalp, dy, dt)
	s.t0, s.alp0, s.y0 = k.T, k.Pitch, k.Heave
	return Output{Kinematics: k, Sensors: sens}, nil
}

func (s *Stepper) sensors(res basuhancock.StepResult, dalp, dy, dt float64) Sensors {
	CD, CL, CM := aero.AirfoilCDCLCM(s.ux, s.uy, s.foil, res.Cp, s.pp)
	CT := -CD
	Dx, Dy, Lx, Ly := aero.DragLiftVectors(s.ux, s.uy)
	CFx := -Dx*CT + Lx*CL
	CFy := -Dy*CT + Ly*CL
	Ein := -(CFy*dy + CM*dalp)
	Eout := -(CFx * math.Hypot(s.ux, s.uy) * dt)
	return Sensors{
		CT: CT, CL: CL, CM: CM,
		Ein: Ein, Eout: Eout,
		BoundCirc: res.Gamma * s.foil.Perimeter(),
	}
}

// Result is one element of the channel returned by Run: either a
// completed Output or a terminal Err if a solver step failed.
type Result struct {
	Output Output
	Err    error
}

// Run drains every sample from kin, stepping s once per sample, and sends
// the corresponding Result on the returned channel. The channel closes
// when kin closes, or immediately after the first step that returns an
// error.
func Run(s *Stepper, kin <-chan kinematics.Sample) <-chan Result {
	out := make(chan Result)
	go func() {
		defer close(out)
		for sample := range kin {
			o, err := s.Step(Kinematics{T: sample.T, Pitch: sample.Pitch, Heave: sample.Heave})
			if err != nil {
				out <- Result{Err: err}
				return
			}
			out <- Result{Output: o}
		}
	}()
	return out
}
