// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernels implements the elementary solutions of Laplace's
// equation used throughout the panel method: uniform flow, and the point
// source/sink, point vortex, and point doublet singularities, along with
// their stream functions.
package kernels

import "math"

// UniformVelocity returns the (constant) velocity field of a uniform onset
// flow (ux,uy) at any field point.
func UniformVelocity(ux, uy float64) (u, v float64) {
	return ux, uy
}

// UniformStream returns the stream function of a uniform onset flow
// (ux,uy) at field point (X,Y).
func UniformStream(ux, uy, X, Y float64) float64 {
	return ux*Y - uy*X
}

// SourceVelocity returns the velocity induced at (X,Y) by a point
// source/sink of strength s located at (xs,ys).
func SourceVelocity(s, xs, ys, X, Y float64) (u, v float64) {
	dx, dy := X-xs, Y-ys
	r2 := dx*dx + dy*dy
	c := s / (2 * math.Pi)
	return c * dx / r2, c * dy / r2
}

// SourceStream returns the stream function at (X,Y) due to a point
// source/sink of strength s located at (xs,ys).
func SourceStream(s, xs, ys, X, Y float64) float64 {
	return (s / (2 * math.Pi)) * math.Atan2(Y-ys, X-xs)
}

// VortexVelocity returns the velocity induced at (X,Y) by a point vortex of
// circulation gamma located at (xv,yv). A vortex is a point source rotated
// 90 degrees counterclockwise.
func VortexVelocity(gamma, xv, yv, X, Y float64) (u, v float64) {
	us, vs := SourceVelocity(gamma, xv, yv, X, Y)
	return -vs, us
}

// VortexStream returns the stream function at (X,Y) due to a point vortex
// of circulation gamma located at (xv,yv).
func VortexStream(gamma, xv, yv, X, Y float64) float64 {
	dx, dy := X-xv, Y-yv
	r2 := dx*dx + dy*dy
	return -(gamma / (4 * math.Pi)) * math.Log(r2)
}

// DoubletVelocity returns the velocity induced at (X,Y) by a point doublet
// of strength s and axis angle alpha located at (xd,yd).
func DoubletVelocity(s, alpha, xd, yd, X, Y float64) (u, v float64) {
	dx, dy := X-xd, Y-yd
	r2 := dx*dx + dy*dy
	r4 := r2 * r2
	c, sn := math.Cos(alpha), math.Sin(alpha)
	diff := dx*dx - dy*dy
	prod := 2 * dx * dy
	coef := s / (2 * math.Pi)
	u = coef * (diff*c + prod*sn) / r4
	v = coef * (prod*c - diff*sn) / r4
	return
}
