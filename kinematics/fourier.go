// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kinematics generates the prescribed (pitch, heave) motion of an
// airfoil as a lazy sequence of time-stamped samples, for driving the
// unsteady solver one step at a time.
package kinematics

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// FourierSeries is the sum of sine harmonics
//
//	y(t) = sum_{n=0}^{N-1} amplitudes[n]*sin(2*pi*(n+1)*freq*t - phases[n])
//
// used to prescribe a periodic pitch or heave motion.
type FourierSeries struct {
	freq              float64
	amplitudes, phase []float64
}

// NewFourierSeries returns a Fourier series with the given nonzero
// fundamental frequency (Hz) and per-harmonic amplitude/phase (radians).
// amplitudes and phases must have equal length; phases may be nil, in
// which case every phase is zero.
func NewFourierSeries(freq float64, amplitudes, phases []float64) *FourierSeries {
	if freq == 0 {
		chk.Panic("kinematics: NewFourierSeries: base frequency cannot be zero")
	}
	if phases == nil {
		phases = make([]float64, len(amplitudes))
	}
	if len(phases) != len(amplitudes) {
		chk.Panic("kinematics: NewFourierSeries: len(amplitudes)=%d != len(phases)=%d",
			len(amplitudes), len(phases))
	}
	return &FourierSeries{freq: freq, amplitudes: amplitudes, phase: phases}
}

// Len returns the number of harmonics, counting those of zero amplitude.
func (f *FourierSeries) Len() int { return len(f.amplitudes) }

// Period returns 1/baseFrequency, the period of the fundamental mode.
func (f *FourierSeries) Period() float64 { return 1 / f.freq }

// Eval sums all harmonics of the series at time t.
func (f *FourierSeries) Eval(t float64) float64 {
	var y float64
	for n := 0; n < len(f.amplitudes); n++ {
		y += f.amplitudes[n] * math.Sin(2*math.Pi*float64(n+1)*f.freq*t-f.phase[n])
	}
	return y
}

// zero is a FourierSeries of no harmonics, always evaluating to zero; used
// as the default pitch or heave series when only one of the two is driven.
var zero = &FourierSeries{freq: 1}
