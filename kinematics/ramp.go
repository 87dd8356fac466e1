// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinematics

import "math"

// ExponentialRamp is the smooth, increasing function that is identically
// zero for x<=0 and approaches 1 as x goes to infinity:
//
//	exp(x<=0) = 0
//	exp(x>0)  = exp(-1/x)
func ExponentialRamp(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Exp(-1 / x)
}

// FiniteRamp is a smooth, increasing ramp that is exactly 0 for x<=0 and
// exactly 1 for x>=1, achieving both extremes on the compact interval
// [0,1] (unlike ExponentialRamp, which only approaches 1 in the limit).
func FiniteRamp(x float64) float64 {
	e0, e1 := ExponentialRamp(x), ExponentialRamp(1-x)
	return e0 / (e0 + e1)
}

// SmoothRamp returns a smooth ramp rising from y0 at t0 to y1 at t1, with
// zero derivative at both endpoints, evaluated at t. t0 must differ from
// t1.
func SmoothRamp(t, t0, t1, y0, y1 float64) float64 {
	u := (t - t0) / (t1 - t0)
	return y0 + (y1-y0)*FiniteRamp(u)
}
