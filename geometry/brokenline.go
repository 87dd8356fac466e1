// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"

	"github.com/mjfairch/ubem2d/se2"
)

// closedTolFactor is the absolute tolerance, in multiples of machine epsilon,
// used to decide whether a broken line's first and last corners coincide.
const closedTolFactor = 10

// BrokenLine is a sequence of straight panels joining consecutive corners
// of a Scatter. With N corners there are N-1 panels; panel i runs from
// corner i to corner i+1.
type BrokenLine struct {
	Scatter
	tx, ty     []float64 // unit tangents, one per panel
	theta      []float64 // heading angle of each panel
	xmid, ymid []float64 // panel midpoints
	edge       []float64 // panel lengths
	perimeter  float64
}

// NewBrokenLine returns a new BrokenLine through the given corners.
func NewBrokenLine(x, y []float64) (*BrokenLine, error) {
	bl := new(BrokenLine)
	if err := bl.SetCorners(x, y); err != nil {
		return nil, err
	}
	return bl, nil
}

// JoinBrokenLine returns a BrokenLine of n corners uniformly spaced along
// the straight segment from (x1,y1) to (x2,y2).
func JoinBrokenLine(x1, y1, x2, y2 float64, n int) *BrokenLine {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		x[i] = x1 + t*(x2-x1)
		y[i] = y1 + t*(y2-y1)
	}
	bl, err := NewBrokenLine(x, y)
	if err != nil {
		panic(err) // cannot happen: x and y are constructed with equal length
	}
	return bl
}

// Tx returns the x-component of each panel's unit tangent
func (b *BrokenLine) Tx() []float64 { return b.tx }

// Ty returns the y-component of each panel's unit tangent
func (b *BrokenLine) Ty() []float64 { return b.ty }

// Theta returns each panel's heading angle, atan2(ty,tx)
func (b *BrokenLine) Theta() []float64 { return b.theta }

// Xmid returns the x-coordinate of each panel's midpoint
func (b *BrokenLine) Xmid() []float64 { return b.xmid }

// Ymid returns the y-coordinate of each panel's midpoint
func (b *BrokenLine) Ymid() []float64 { return b.ymid }

// Edge returns each panel's length
func (b *BrokenLine) Edge() []float64 { return b.edge }

// NEdge returns the number of panels, N-1 for N corners
func (b *BrokenLine) NEdge() int { return len(b.edge) }

// Perimeter returns the sum of all panel lengths
func (b *BrokenLine) Perimeter() float64 { return b.perimeter }

// Closed reports whether the first and last corners coincide to within
// 10*machine-epsilon.
func (b *BrokenLine) Closed() bool {
	tol := closedTolFactor * math.Nextafter(1, 2) - closedTolFactor
	x, y := b.Scatter.X(), b.Scatter.Y()
	n := len(x)
	return math.Abs(x[0]-x[n-1]) < tol && math.Abs(y[0]-y[n-1]) < tol
}

// Centroid overrides Scatter.Centroid: for a closed broken line, the
// duplicated closing corner is excluded so it is not counted twice.
func (b *BrokenLine) Centroid() (x0, y0 float64) {
	x, y := b.Scatter.X(), b.Scatter.Y()
	n := len(x)
	if b.Closed() {
		n--
	}
	for i := 0; i < n; i++ {
		x0 += x[i]
		y0 += y[i]
	}
	return x0 / float64(n), y0 / float64(n)
}

// refresh recomputes tangents, headings, midpoints, edge lengths and
// perimeter from the current corners. Called after every mutation.
func (b *BrokenLine) refresh() {
	x, y := b.Scatter.X(), b.Scatter.Y()
	n := len(x) - 1
	b.tx = make([]float64, n)
	b.ty = make([]float64, n)
	b.theta = make([]float64, n)
	b.xmid = make([]float64, n)
	b.ymid = make([]float64, n)
	b.edge = make([]float64, n)
	b.perimeter = 0
	for i := 0; i < n; i++ {
		dx := x[i+1] - x[i]
		dy := y[i+1] - y[i]
		L := math.Hypot(dx, dy)
		b.edge[i] = L
		b.tx[i] = dx / L
		b.ty[i] = dy / L
		b.theta[i] = math.Atan2(b.ty[i], b.tx[i])
		b.xmid[i] = x[i] + 0.5*dx
		b.ymid[i] = y[i] + 0.5*dy
		b.perimeter += L
	}
}

// SetCorners replaces the corners and refreshes all derived panel data.
func (b *BrokenLine) SetCorners(x, y []float64) error {
	if err := b.Scatter.SetCorners(x, y); err != nil {
		return err
	}
	if len(x) < 2 {
		return &ErrSizeMismatch{Where: "BrokenLine.SetCorners: need at least 2 corners"}
	}
	b.refresh()
	return nil
}

// GlideAbout applies the rigid motion g about axis (x0,y0) and refreshes.
func (b *BrokenLine) GlideAbout(g se2.Elem, x0, y0 float64) {
	b.Scatter.GlideAbout(g, x0, y0)
	b.refresh()
}

// Glide applies the rigid motion g about the centroid and refreshes.
func (b *BrokenLine) Glide(g se2.Elem) {
	x0, y0 := b.Centroid()
	b.GlideAbout(g, x0, y0)
}

// Scale scales about the centroid and refreshes.
func (b *BrokenLine) Scale(factor float64) {
	x0, y0 := b.Centroid()
	diam := b.Scatter.diameter
	x, y := b.Scatter.X(), b.Scatter.Y()
	for i := range x {
		x[i] = (x[i]-x0)*factor + x0
		y[i] = (y[i]-y0)*factor + y0
	}
	if diam >= 0 {
		b.Scatter.diameter = math.Abs(factor) * diam
	} else {
		b.Scatter.diameter = -1
	}
	b.refresh()
}

// Translate translates every corner by (dx,dy) and refreshes.
func (b *BrokenLine) Translate(dx, dy float64) {
	b.Glide(se2.New(0, dx, dy))
}

// Rotate rotates about the centroid by theta and refreshes.
func (b *BrokenLine) Rotate(theta float64) {
	b.Glide(se2.New(theta, 0, 0))
}

// RotateAbout rotates by theta about axis (x0,y0) and refreshes.
func (b *BrokenLine) RotateAbout(theta, x0, y0 float64) {
	b.GlideAbout(se2.New(theta, 0, 0), x0, y0)
}

// Center translates so the centroid coincides with the origin.
func (b *BrokenLine) Center() {
	x0, y0 := b.Centroid()
	b.Translate(-x0, -y0)
}
