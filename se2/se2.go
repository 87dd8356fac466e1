// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package se2 implements the Lie group SE(2) of orientation-preserving
// isometries of the Euclidean plane: rotations about the origin followed
// by a translation.
package se2

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Elem represents an element (theta, x, y) of SE(2); theta is the rotation
// angle in radians and (x,y) is the translation applied after rotation.
type Elem struct {
	Theta float64 // rotation angle
	X     float64 // translation, x-component
	Y     float64 // translation, y-component
}

// New returns a new SE(2) element
func New(theta, x, y float64) Elem {
	return Elem{Theta: theta, X: x, Y: y}
}

// Id returns the identity element of SE(2)
func Id() Elem {
	return Elem{}
}

// Compose returns the product o*h, representing the rigid motion h followed
// by o. Composition is associative but not commutative in general; pure
// translations commute with each other, as do pure rotations.
func (o Elem) Compose(h Elem) Elem {
	c, s := math.Cos(o.Theta), math.Sin(o.Theta)
	return Elem{
		Theta: o.Theta + h.Theta,
		X:     c*h.X - s*h.Y + o.X,
		Y:     s*h.X + c*h.Y + o.Y,
	}
}

// Inv returns the inverse of o
func (o Elem) Inv() Elem {
	c, s := math.Cos(o.Theta), math.Sin(o.Theta)
	return Elem{
		Theta: -o.Theta,
		X:     -o.X*c - o.Y*s,
		Y:     o.X*s - o.Y*c,
	}
}

// MapVector applies the rotational part of o to the vector (vx,vy), ignoring
// translation
func (o Elem) MapVector(vx, vy float64) (float64, float64) {
	c, s := math.Cos(o.Theta), math.Sin(o.Theta)
	return c*vx - s*vy, s*vx + c*vy
}

// MapPoint applies o to the point (x,y), rotating about the axis (x0,y0)
// before translating. MapPoint with axis at the origin reduces to MapVector
// plus the translation (x,y).
func (o Elem) MapPoint(x, y, x0, y0 float64) (float64, float64) {
	c, s := math.Cos(o.Theta), math.Sin(o.Theta)
	dx, dy := x-x0, y-y0
	return c*dx - s*dy + o.X + x0, s*dx + c*dy + o.Y + y0
}

// MapPoints applies o to parallel slices of points, sharing a single axis.
// Panics if xs and ys differ in length (an internal invariant: callers
// always build these slices in lock-step).
func (o Elem) MapPoints(xs, ys []float64, x0, y0 float64) (xo, yo []float64) {
	if len(xs) != len(ys) {
		chk.Panic("se2: MapPoints: xs and ys must have equal length (%d != %d)", len(xs), len(ys))
	}
	xo = make([]float64, len(xs))
	yo = make([]float64, len(ys))
	for i := range xs {
		xo[i], yo[i] = o.MapPoint(xs[i], ys[i], x0, y0)
	}
	return
}
