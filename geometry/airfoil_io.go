// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
)

// ErrIO reports a malformed airfoil coordinate file.
type ErrIO struct {
	Path   string
	Reason string
}

func (e *ErrIO) Error() string {
	return io.Sf("geometry: cannot load airfoil %q: %s", e.Path, e.Reason)
}

// LoadAirfoil reads airfoil coordinates from a text file. The first line
// holds two integers "N le"; each of the following N lines holds the
// whitespace-separated floats "x y" of one corner. The file is loaded
// as-is, with no transformation.
func LoadAirfoil(path string) (*Airfoil, error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		return nil, &ErrIO{Path: path, Reason: err.Error()}
	}
	lines := strings.Split(strings.ReplaceAll(string(buf), "\r\n", "\n"), "\n")
	if len(lines) < 1 {
		return nil, &ErrIO{Path: path, Reason: "empty file"}
	}
	header := strings.Fields(lines[0])
	if len(header) != 2 {
		return nil, &ErrIO{Path: path, Reason: "first line must be \"N le\""}
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, &ErrIO{Path: path, Reason: "bad corner count: " + err.Error()}
	}
	le, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, &ErrIO{Path: path, Reason: "bad leading-edge index: " + err.Error()}
	}
	if len(lines)-1 < n {
		return nil, &ErrIO{Path: path, Reason: "fewer coordinate lines than declared"}
	}
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		fields := strings.Fields(lines[1+i])
		if len(fields) != 2 {
			return nil, &ErrIO{Path: path, Reason: io.Sf("line %d: expected \"x y\"", i+2)}
		}
		xi, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, &ErrIO{Path: path, Reason: err.Error()}
		}
		yi, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &ErrIO{Path: path, Reason: err.Error()}
		}
		x[i], y[i] = xi, yi
	}
	foil, err := NewAirfoil(x, y, le)
	if err != nil {
		return nil, &ErrIO{Path: path, Reason: err.Error()}
	}
	return foil, nil
}

// Save writes the airfoil's coordinates to path in the format read by
// LoadAirfoil, such that LoadAirfoil(path) afterwards reproduces the same
// coordinates and leading-edge index exactly.
func (a *Airfoil) Save(path string) error {
	var buf bytes.Buffer
	x, y := a.X(), a.Y()
	buf.WriteString(io.Sf("%d\t%d\n", len(x), a.le))
	for i := range x {
		buf.WriteString(io.Sf("%.17g\t%.17g\n", x[i], y[i]))
	}
	return io.WriteFileV(path, &buf)
}
