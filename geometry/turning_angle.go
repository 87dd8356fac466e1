// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import "math"

// TurningAngle computes the turning angle of the broken line whose corners
// are at the points (x,y): the sum of the changes in heading angle as one
// moves along the broken line, with branch-cut corrections keeping each
// individual turn in [-pi,pi]. If closed is true, a final turn back to the
// initial heading is included, so that a simple closed CCW polygon returns
// 2*pi and a CW polygon returns -2*pi.
func TurningAngle(x, y []float64, closed bool) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	heading := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		heading[i] = math.Atan2(y[i+1]-y[i], x[i+1]-x[i])
	}
	if closed {
		heading = append(heading, heading[0])
	}
	total := 0.0
	for i := 1; i < len(heading); i++ {
		dth := heading[i] - heading[i-1]
		switch {
		case dth < -math.Pi:
			dth += 2 * math.Pi
		case dth > math.Pi:
			dth -= 2 * math.Pi
		}
		total += dth
	}
	return total
}
