// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import (
	"errors"

	"github.com/cpmech/gosl/chk"
)

// ErrToleranceExceeded is returned by ToleranceIteration when MaxIterations
// is set and the fixed-point loop fails to converge within that many
// iterations. It is a distinct failure kind from a solver error, per the
// error-handling design: numerical non-termination is not a contract
// violation.
var ErrToleranceExceeded = errors.New("iter: tolerance iteration exceeded MaxIterations without converging")

// panicf reports a contract violation. Contract violations (non-positive
// timestep, mismatched sizes, reading past stored history depth, and so on)
// are programmer errors and are never recovered from.
func panicf(format string, args ...interface{}) {
	chk.Panic(format, args...)
}

// wrapErr wraps a recoverable failure (solver factorisation, solver
// convergence) with context, without altering its identity for errors.Is.
func wrapErr(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return chk.Err(format+": %w", append(args, err)...)
}
