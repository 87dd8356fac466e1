// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import "math"

// Airfoil is a closed Body with a distinguished trailing-edge corner at
// index 0 and leading-edge corner at index Le. Corners run from the
// trailing edge, along one surface, to the leading edge, and back along
// the other surface to the trailing edge.
type Airfoil struct {
	Body
	le      int
	pitchUp Orientation // sense of rotation that pitches the nose up
}

// NewAirfoil returns a new Airfoil. x,y must list corners from the trailing
// edge (index 0) to the leading edge (index le) and back to the trailing
// edge; 0 < le < len(x)-1. If pitchUp is not given, it is inferred by
// assuming the airfoil sits with its chord roughly horizontal: if the
// leading edge is to the right of the trailing edge, a nose-up rotation is
// counterclockwise, otherwise clockwise.
func NewAirfoil(x, y []float64, le int, pitchUp ...Orientation) (*Airfoil, error) {
	if le <= 0 || le >= len(x)-1 {
		return nil, &ErrInvalidOrientation{Reason: "leading-edge index out of range"}
	}
	a := new(Airfoil)
	a.le = le
	if len(pitchUp) > 0 {
		a.pitchUp = pitchUp[0]
	} else if x[le] > x[0] {
		a.pitchUp = CCW
	} else {
		a.pitchUp = CW
	}
	if err := a.SetCorners(x, y); err != nil {
		return nil, err
	}
	return a, nil
}

// Le returns the index of the leading-edge corner
func (a *Airfoil) Le() int { return a.le }

// PitchUp returns the sense of rotation that pitches the nose up
func (a *Airfoil) PitchUp() Orientation { return a.pitchUp }

// LeadingEdge returns the coordinates of the leading-edge corner
func (a *Airfoil) LeadingEdge() (x, y float64) {
	xs, ys := a.X(), a.Y()
	return xs[a.le], ys[a.le]
}

// TrailingEdge returns the coordinates of the trailing-edge corner
func (a *Airfoil) TrailingEdge() (x, y float64) {
	xs, ys := a.X(), a.Y()
	return xs[0], ys[0]
}

// Chord returns the Euclidean distance from leading edge to trailing edge
func (a *Airfoil) Chord() float64 {
	xle, yle := a.LeadingEdge()
	xte, yte := a.TrailingEdge()
	return math.Hypot(xte-xle, yte-yle)
}

// ChordPoint returns the point LE + frac*(TE-LE) on the chord line; frac=0
// is the leading edge, frac=1 is the trailing edge.
func (a *Airfoil) ChordPoint(frac float64) (x, y float64) {
	xle, yle := a.LeadingEdge()
	xte, yte := a.TrailingEdge()
	return xle + frac*(xte-xle), yle + frac*(yte-yle)
}

// Pitch rotates the airfoil by alpha radians (nose-up positive) about the
// axis at ChordPoint(pp).
func (a *Airfoil) Pitch(alpha, pp float64) {
	xp, yp := a.ChordPoint(pp)
	theta := alpha
	if a.pitchUp == CW {
		theta = -alpha
	}
	a.RotateAbout(theta, xp, yp)
}

// Surge translates the airfoil by dx along the x-axis
func (a *Airfoil) Surge(dx float64) {
	a.Translate(dx, 0)
}

// Heave translates the airfoil by dy along the y-axis
func (a *Airfoil) Heave(dy float64) {
	a.Translate(0, dy)
}

// SetCorners replaces the corners, refreshing all derived geometry.
func (a *Airfoil) SetCorners(x, y []float64) error {
	ta := TurningAngle(x, y, true)
	var rot Orientation
	switch {
	case ta > 0:
		rot = CW
	case ta < 0:
		rot = CCW
	default:
		return &ErrInvalidOrientation{Reason: "zero turning angle: cannot determine normal orientation"}
	}
	a.Body.rot = rot
	return a.Body.SetCorners(x, y)
}

// RotateAbout rotates by theta about axis (x0,y0), refreshing all derived
// geometry. Airfoil overrides Body's rigid motions only to keep the return
// type fluent-free and explicit; behavior is identical to Body.
func (a *Airfoil) RotateAbout(theta, x0, y0 float64) {
	a.Body.RotateAbout(theta, x0, y0)
}

// Translate translates by (dx,dy)
func (a *Airfoil) Translate(dx, dy float64) {
	a.Body.Translate(dx, dy)
}
