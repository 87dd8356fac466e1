// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basuhancock

import "github.com/cpmech/gosl/io"

// ErrSolverConvergence reports that the implicit Kutta fixed-point
// iteration failed to converge within MaxIters, or stopped early because
// the quadratic for the shed circulation had no real root.
type ErrSolverConvergence struct {
	MaxIters int
}

func (e *ErrSolverConvergence) Error() string {
	return io.Sf("basuhancock: wake-panel iteration failed to converge after %d iterations", e.MaxIters)
}

// ErrBoundaryResidual reports that, after the implicit Kutta iteration
// converged, the Neumann or Kutta boundary-condition residual exceeded
// MaxErr. The step is rejected and no solver state is updated.
type ErrBoundaryResidual struct {
	Which         string // "neumann" or "kutta"
	Residual, Max float64
}

func (e *ErrBoundaryResidual) Error() string {
	return io.Sf("basuhancock: %s residual %g exceeds maxerr %g", e.Which, e.Residual, e.Max)
}
