// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package se2

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestAssociativity(tst *testing.T) {
	chk.PrintTitle("se2 associativity")
	g := New(0.3, 1.0, -2.0)
	h := New(-1.1, 0.5, 0.5)
	k := New(2.7, -3.0, 1.0)
	lhs := g.Compose(h).Compose(k)
	rhs := g.Compose(h.Compose(k))
	chk.Scalar(tst, "theta", 1e-14, lhs.Theta, rhs.Theta)
	chk.Scalar(tst, "x", 1e-12, lhs.X, rhs.X)
	chk.Scalar(tst, "y", 1e-12, lhs.Y, rhs.Y)
}

func TestInverse(tst *testing.T) {
	chk.PrintTitle("se2 inverse")
	g := New(0.77, 2.2, -5.5)
	id := Id()
	a := g.Compose(g.Inv())
	b := g.Inv().Compose(g)
	chk.Scalar(tst, "g*g^-1 theta", 1e-14, a.Theta, id.Theta)
	chk.Scalar(tst, "g*g^-1 x", 1e-12, a.X, id.X)
	chk.Scalar(tst, "g*g^-1 y", 1e-12, a.Y, id.Y)
	chk.Scalar(tst, "g^-1*g theta", 1e-14, b.Theta, id.Theta)
	chk.Scalar(tst, "g^-1*g x", 1e-12, b.X, id.X)
	chk.Scalar(tst, "g^-1*g y", 1e-12, b.Y, id.Y)
}

func TestTranslationsCommute(tst *testing.T) {
	chk.PrintTitle("se2 translations commute")
	a := New(0, 1, 2)
	b := New(0, -3, 5)
	ab := a.Compose(b)
	ba := b.Compose(a)
	chk.Scalar(tst, "x", 1e-14, ab.X, ba.X)
	chk.Scalar(tst, "y", 1e-14, ab.Y, ba.Y)
}

func TestRotationsCommute(tst *testing.T) {
	chk.PrintTitle("se2 rotations commute")
	a := New(0.4, 0, 0)
	b := New(-1.3, 0, 0)
	ab := a.Compose(b)
	ba := b.Compose(a)
	chk.Scalar(tst, "theta", 1e-14, ab.Theta, ba.Theta)
}

func TestMapPointReducesToMapVectorAtOrigin(tst *testing.T) {
	chk.PrintTitle("se2 map_point reduces to map_vector")
	g := New(math.Pi/4, 1.5, -0.5)
	vx, vy := g.MapVector(2.0, 3.0)
	px, py := g.MapPoint(2.0, 3.0, 0, 0)
	chk.Scalar(tst, "x", 1e-14, px, vx+g.X)
	chk.Scalar(tst, "y", 1e-14, py, vy+g.Y)
}

func TestRotationAboutAxisExample(tst *testing.T) {
	chk.PrintTitle("se2 rotation about an arbitrary axis")
	g := New(math.Pi/2, 0, 0)
	x, y := g.MapPoint(1, 0, 1, 0)
	chk.Scalar(tst, "x", 1e-14, x, 1.0)
	chk.Scalar(tst, "y", 1e-14, y, 0.0)
}
