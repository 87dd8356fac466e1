// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

// Sample is one time-stamped kinematic sample: the pitch angle (degrees)
// and heave (as a fraction of chord) prescribed at time T.
type Sample struct {
	T, Pitch, Heave float64
}

// TimeStepper starts a goroutine producing the arithmetic sequence
// t0, t0+dt, t0+2dt, ... on the returned channel, stopping (and closing
// the channel) the first time stop(step, t) reports true for the value
// about to be produced. A nil stop never halts the sequence; the caller
// is then responsible for abandoning the channel once done with it.
func TimeStepper(dt, t0 float64, stop func(step int, t float64) bool) <-chan float64 {
	out := make(chan float64)
	go func() {
		defer close(out)
		t := t0
		for step := 0; ; step++ {
			if stop != nil && stop(step, t) {
				return
			}
			out <- t
			t += dt
		}
	}()
	return out
}

// Driver lazily generates (time, pitch, heave) samples by evaluating pitch
// and heave Fourier series at each time value produced by times. Either
// series may be nil, in which case that component is held at zero.
func Driver(times <-chan float64, pitch, heave *FourierSeries) <-chan Sample {
	if pitch == nil {
		pitch = zero
	}
	if heave == nil {
		heave = zero
	}
	out := make(chan Sample)
	go func() {
		defer close(out)
		for t := range times {
			out <- Sample{T: t, Pitch: pitch.Eval(t), Heave: heave.Eval(t)}
		}
	}()
	return out
}
