// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

// Orientation tags the sense in which tangent vectors are rotated into
// normal vectors, or more generally the winding sense of a closed curve.
type Orientation int

const (
	// CW is the clockwise orientation
	CW Orientation = iota
	// CCW is the counterclockwise orientation
	CCW
)

// Reverse returns the opposite orientation
func (o Orientation) Reverse() Orientation {
	if o == CW {
		return CCW
	}
	return CW
}

// String implements fmt.Stringer
func (o Orientation) String() string {
	if o == CCW {
		return "counterclockwise"
	}
	return "clockwise"
}
