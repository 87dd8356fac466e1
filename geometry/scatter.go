// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geometry implements the body-geometry hierarchy used by the
// panel-method solvers: an ordered scatter of planar points, specialized
// into a broken line of straight panels, specialized into an oriented body
// with outward normals, specialized into an airfoil with a distinguished
// leading/trailing edge.
//
// Each level is a plain value type that holds the level below it by value
// and exposes its own mutators; mutators never rely on virtual dispatch —
// each one updates its embedded geometry and then recomputes its own
// cached fields (tangents, normals, midpoints, ...) via an explicit
// refresh step.
package geometry

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/mjfairch/ubem2d/se2"
)

// ErrSizeMismatch reports that two parallel coordinate slices disagree in
// length at an API boundary.
type ErrSizeMismatch struct {
	Where string
}

func (e *ErrSizeMismatch) Error() string {
	return "geometry: size mismatch in " + e.Where
}

// Scatter represents a collection of arbitrary points in the plane.
type Scatter struct {
	x, y     []float64
	diameter float64 // cached; negative means "stale, must recompute"
}

// NewScatter returns a new Scatter holding the given corners. x and y must
// have equal length.
func NewScatter(x, y []float64) (*Scatter, error) {
	s := new(Scatter)
	if err := s.SetCorners(x, y); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of points
func (s *Scatter) Len() int { return len(s.x) }

// X returns the x-coordinates of the points
func (s *Scatter) X() []float64 { return s.x }

// Y returns the y-coordinates of the points
func (s *Scatter) Y() []float64 { return s.y }

// Diameter returns the maximum pairwise distance between points, computing
// it (an O(n^2) operation) only the first time it is needed after a
// structural change.
func (s *Scatter) Diameter() float64 {
	if s.diameter < 0 {
		d2 := 0.0
		n := len(s.x)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := s.x[j] - s.x[i]
				dy := s.y[j] - s.y[i]
				if v := dx*dx + dy*dy; v > d2 {
					d2 = v
				}
			}
		}
		s.diameter = math.Sqrt(d2)
	}
	return s.diameter
}

// Centroid returns the arithmetic mean of all points
func (s *Scatter) Centroid() (x0, y0 float64) {
	n := float64(len(s.x))
	for i := range s.x {
		x0 += s.x[i]
		y0 += s.y[i]
	}
	return x0 / n, y0 / n
}

// SetCorners replaces the points, invalidating the cached diameter.
func (s *Scatter) SetCorners(x, y []float64) error {
	if len(x) != len(y) {
		return &ErrSizeMismatch{Where: "Scatter.SetCorners"}
	}
	s.x = x
	s.y = y
	s.diameter = -1
	return nil
}

// GlideAbout applies the rigid motion g to every point, rotating about the
// axis (x0,y0). The diameter is invariant under rigid motions and is
// preserved exactly rather than recomputed.
func (s *Scatter) GlideAbout(g se2.Elem, x0, y0 float64) {
	diam := s.diameter
	xx, yy := g.MapPoints(s.x, s.y, x0, y0)
	s.x, s.y = xx, yy
	s.diameter = diam
}

// Glide applies the rigid motion g to every point, rotating about the
// centroid.
func (s *Scatter) Glide(g se2.Elem) {
	x0, y0 := s.Centroid()
	s.GlideAbout(g, x0, y0)
}

// Scale scales the cloud of points about its centroid; the centroid is
// unchanged and the diameter scales by |factor|.
func (s *Scatter) Scale(factor float64) {
	diam := s.diameter
	x0, y0 := s.Centroid()
	for i := range s.x {
		s.x[i] = (s.x[i]-x0)*factor + x0
		s.y[i] = (s.y[i]-y0)*factor + y0
	}
	if diam >= 0 {
		s.diameter = math.Abs(factor) * diam
	}
}

// Translate translates every point by (dx,dy)
func (s *Scatter) Translate(dx, dy float64) {
	s.Glide(se2.New(0, dx, dy))
}

// RotateAbout rotates every point by theta about the axis (x0,y0)
func (s *Scatter) RotateAbout(theta, x0, y0 float64) {
	s.GlideAbout(se2.New(theta, 0, 0), x0, y0)
}

// Rotate rotates every point by theta about the centroid
func (s *Scatter) Rotate(theta float64) {
	s.Glide(se2.New(theta, 0, 0))
}

// Center translates the scatter so that its centroid coincides with the
// origin.
func (s *Scatter) Center() {
	x0, y0 := s.Centroid()
	s.Translate(-x0, -y0)
}

// mustEqualLen panics (a programmer-error invariant, not a caller-facing
// condition) if the given slices disagree in length.
func mustEqualLen(where string, lens ...int) {
	for i := 1; i < len(lens); i++ {
		if lens[i] != lens[0] {
			chk.Panic("geometry: %s: slice length mismatch (%v)", where, lens)
		}
	}
}
