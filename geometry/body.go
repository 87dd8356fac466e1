// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"

	"github.com/mjfairch/ubem2d/se2"
)

// ErrInvalidOrientation reports that a Body's normal-vector orientation
// could not be determined, or was given an invalid value.
type ErrInvalidOrientation struct {
	Reason string
}

func (e *ErrInvalidOrientation) Error() string {
	return "geometry: invalid orientation: " + e.Reason
}

// Body extends BrokenLine with outward-pointing panel normals, obtained by
// rotating each panel's tangent by 90 degrees in a fixed sense (CW or CCW).
type Body struct {
	BrokenLine
	rot    Orientation // sense in which tangents are rotated into normals
	nx, ny []float64   // unit normals, one per panel
	beta   []float64   // atan2(ny,nx)
}

// NewBody returns a new Body through the given corners. If an explicit
// orientation is not given, it is inferred from the turning angle of the
// closed polygon: positive turning angle selects normals from a clockwise
// rotation of the tangent, negative selects counterclockwise. A body whose
// turning angle is zero cannot have its orientation inferred and is
// rejected as invalid.
func NewBody(x, y []float64, rot ...Orientation) (*Body, error) {
	b := new(Body)
	var orientation Orientation
	if len(rot) > 0 {
		orientation = rot[0]
	} else {
		ta := TurningAngle(x, y, true)
		switch {
		case ta > 0:
			orientation = CW
		case ta < 0:
			orientation = CCW
		default:
			return nil, &ErrInvalidOrientation{Reason: "zero turning angle: cannot determine normal orientation"}
		}
	}
	b.rot = orientation
	if err := b.SetCorners(x, y); err != nil {
		return nil, err
	}
	return b, nil
}

// Nx returns the x-component of each panel's outward unit normal
func (b *Body) Nx() []float64 { return b.nx }

// Ny returns the y-component of each panel's outward unit normal
func (b *Body) Ny() []float64 { return b.ny }

// Beta returns atan2(ny,nx) for each panel
func (b *Body) Beta() []float64 { return b.beta }

// Rot returns the tangent-to-normal rotation sense
func (b *Body) Rot() Orientation { return b.rot }

// refreshNormals recomputes normals from the current tangents
func (b *Body) refreshNormals() {
	n := len(b.tx)
	b.nx = make([]float64, n)
	b.ny = make([]float64, n)
	b.beta = make([]float64, n)
	for i := 0; i < n; i++ {
		if b.rot == CCW {
			b.nx[i] = -b.ty[i]
			b.ny[i] = b.tx[i]
		} else {
			b.nx[i] = b.ty[i]
			b.ny[i] = -b.tx[i]
		}
		b.beta[i] = math.Atan2(b.ny[i], b.nx[i])
	}
}

// SetCorners replaces the corners, refreshing panel data and normals.
func (b *Body) SetCorners(x, y []float64) error {
	if err := b.BrokenLine.SetCorners(x, y); err != nil {
		return err
	}
	b.refreshNormals()
	return nil
}

// GlideAbout applies g about axis (x0,y0), refreshing panel data and normals.
func (b *Body) GlideAbout(g se2.Elem, x0, y0 float64) {
	b.BrokenLine.GlideAbout(g, x0, y0)
	b.refreshNormals()
}

// Glide applies g about the centroid, refreshing panel data and normals.
func (b *Body) Glide(g se2.Elem) {
	x0, y0 := b.Centroid()
	b.GlideAbout(g, x0, y0)
}

// Scale scales about the centroid, refreshing panel data and normals.
func (b *Body) Scale(factor float64) {
	b.BrokenLine.Scale(factor)
	b.refreshNormals()
}

// Translate translates by (dx,dy), refreshing panel data and normals.
func (b *Body) Translate(dx, dy float64) {
	b.Glide(se2.New(0, dx, dy))
}

// Rotate rotates about the centroid by theta, refreshing panel data and normals.
func (b *Body) Rotate(theta float64) {
	b.Glide(se2.New(theta, 0, 0))
}

// RotateAbout rotates by theta about axis (x0,y0), refreshing panel data and normals.
func (b *Body) RotateAbout(theta, x0, y0 float64) {
	b.GlideAbout(se2.New(theta, 0, 0), x0, y0)
}

// Center translates so the centroid coincides with the origin.
func (b *Body) Center() {
	x0, y0 := b.Centroid()
	b.Translate(-x0, -y0)
}
