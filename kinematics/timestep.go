// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import "math"

// TimeStep returns the largest time step dt that places at least
// resolution steps across the fastest time scale present in the motion,
// min(tau, fastPeriod). If period is nonzero, the motion is periodic with
// that period and dt is additionally chosen to evenly divide it, returning
// the number of steps per cycle as stepsPerCycle; otherwise stepsPerCycle
// is zero.
func TimeStep(resolution int, tau, fastPeriod, period float64) (dt float64, stepsPerCycle int) {
	fast := math.Min(tau, fastPeriod)
	if period == 0 {
		return fast / float64(resolution), 0
	}
	stepsPerCycle = int(math.Ceil(float64(resolution) * period / fast))
	return period / float64(stepsPerCycle), stepsPerCycle
}
