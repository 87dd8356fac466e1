// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import "github.com/mjfairch/ubem2d/geometry"

// body is the subset of geometry.Body's accessors needed to build a Geom;
// satisfied by *geometry.Body and *geometry.Airfoil.
type body interface {
	X() []float64
	Y() []float64
	Tx() []float64
	Ty() []float64
	Edge() []float64
	Xmid() []float64
	Ymid() []float64
}

// GeomFromBody extracts the panel geometry of a single body into a Geom,
// with panel i running from corner i to corner i+1.
func GeomFromBody(b body) Geom {
	n := len(b.Edge())
	return Geom{
		X1:   b.X()[:n],
		Y1:   b.Y()[:n],
		Tx:   b.Tx(),
		Ty:   b.Ty(),
		Edge: b.Edge(),
		Xmid: b.Xmid(),
		Ymid: b.Ymid(),
	}
}

// ConcatGeom concatenates the panel geometries of several bodies, in order,
// into a single Geom suitable for a multi-body influence-matrix assembly.
// It also returns idx, the panel index ranges [idx[k], idx[k+1]) occupied
// by body k.
func ConcatGeom(bodies ...Geom) (g Geom, idx []int) {
	idx = make([]int, len(bodies)+1)
	total := 0
	for k, b := range bodies {
		idx[k] = total
		total += b.N()
	}
	idx[len(bodies)] = total
	g = Geom{
		X1:   make([]float64, 0, total),
		Y1:   make([]float64, 0, total),
		Tx:   make([]float64, 0, total),
		Ty:   make([]float64, 0, total),
		Edge: make([]float64, 0, total),
		Xmid: make([]float64, 0, total),
		Ymid: make([]float64, 0, total),
	}
	for _, b := range bodies {
		g.X1 = append(g.X1, b.X1...)
		g.Y1 = append(g.Y1, b.Y1...)
		g.Tx = append(g.Tx, b.Tx...)
		g.Ty = append(g.Ty, b.Ty...)
		g.Edge = append(g.Edge, b.Edge...)
		g.Xmid = append(g.Xmid, b.Xmid...)
		g.Ymid = append(g.Ymid, b.Ymid...)
	}
	return
}
