// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// diamondAirfoil returns a tiny symmetric diamond-shaped "airfoil": trailing
// edge at (1,0), leading edge at (0,0), upper surface peaking at (0.5,0.1),
// lower surface dipping to (0.5,-0.1).
func diamondAirfoil(tst *testing.T) *Airfoil {
	x := []float64{1, 0.5, 0, 0.5, 1}
	y := []float64{0, 0.1, 0, -0.1, 0}
	a, err := NewAirfoil(x, y, 2)
	if err != nil {
		tst.Fatalf("NewAirfoil failed: %v", err)
	}
	return a
}

func TestAirfoilChordAndChordPoint(tst *testing.T) {
	chk.PrintTitle("airfoil chord and chord_point")
	a := diamondAirfoil(tst)
	chk.Scalar(tst, "chord", 1e-12, a.Chord(), 1.0)
	xq, yq := a.ChordPoint(0.25)
	chk.Scalar(tst, "quarter chord x", 1e-12, xq, 0.25)
	chk.Scalar(tst, "quarter chord y", 1e-12, yq, 0.0)
	xle, yle := a.LeadingEdge()
	chk.Scalar(tst, "le x", 1e-12, xle, 0.0)
	chk.Scalar(tst, "le y", 1e-12, yle, 0.0)
	xte, yte := a.TrailingEdge()
	chk.Scalar(tst, "te x", 1e-12, xte, 1.0)
	chk.Scalar(tst, "te y", 1e-12, yte, 0.0)
}

func TestAirfoilPitchAboutLeadingEdge(tst *testing.T) {
	chk.PrintTitle("airfoil pitch about the leading edge")
	a := diamondAirfoil(tst)
	a.Pitch(math.Pi/2, 0) // pivot at leading edge (pp=0)
	xte, yte := a.TrailingEdge()
	xle, yle := a.LeadingEdge()
	chk.Scalar(tst, "le stays put x", 1e-9, xle, 0.0)
	chk.Scalar(tst, "le stays put y", 1e-9, yle, 0.0)
	chk.Scalar(tst, "chord preserved", 1e-9, math.Hypot(xte-xle, yte-yle), 1.0)
}

func TestAirfoilHeave(tst *testing.T) {
	chk.PrintTitle("airfoil heave")
	a := diamondAirfoil(tst)
	a.Heave(0.3)
	_, yte := a.TrailingEdge()
	chk.Scalar(tst, "te y after heave", 1e-12, yte, 0.3)
}

func TestAirfoilRoundTrip(tst *testing.T) {
	chk.PrintTitle("airfoil file round trip")
	a := diamondAirfoil(tst)
	dir := tst.TempDir()
	path := filepath.Join(dir, "diamond.dat")
	if err := a.Save(path); err != nil {
		tst.Fatalf("Save failed: %v", err)
	}
	b, err := LoadAirfoil(path)
	if err != nil {
		tst.Fatalf("LoadAirfoil failed: %v", err)
	}
	if b.Le() != a.Le() {
		tst.Errorf("le index mismatch: got %d want %d", b.Le(), a.Le())
	}
	xa, ya := a.X(), a.Y()
	xb, yb := b.X(), b.Y()
	chk.Array(tst, "x", 1e-14, xa, xb)
	chk.Array(tst, "y", 1e-14, ya, yb)
	os.Remove(path)
}
