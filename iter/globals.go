// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

// Default tolerances referenced throughout the package. Callers needing
// different values pass them explicitly (e.g. NewToleranceIteration); these
// are only the package-wide defaults used when a caller does not override.
const (
	// Epsilon is a strictness threshold near zero, used to detect
	// degenerate timesteps and to decide whether theta is small enough
	// to be treated as the explicit scheme.
	Epsilon = 1e-12

	// Scale is the relative-error floor used by relativeError.
	Scale = 1.
)
