// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

// Domain describes the spatial grid a Solve call marches a solution over.
// Implementations live in package grid; Domain is declared here, rather
// than there, so Solve can reference it without iter importing grid.
type Domain interface {
	// Identity returns the identity matrix sized to the domain.
	Identity() SparseMatrix

	// Size returns the number of grid points (the dimension of every
	// Vector and SparseMatrix the domain produces or consumes).
	Size() int

	// Coordinates returns the spatial coordinate of grid point i.
	Coordinates(i int) []float64

	// DefaultInterpolantFactory returns the factory Solve uses to wrap a
	// terminal Vector into an Interpolant when the caller does not
	// supply one explicitly.
	DefaultInterpolantFactory() InterpolantFactory
}

// InterpolantFactory builds an Interpolant over a domain's grid values.
type InterpolantFactory interface {
	Make(v Vector) Interpolant
}

// Interpolant evaluates an off-grid point from a solved Vector.
type Interpolant interface {
	At(x ...float64) float64
}

// Map applies a ScalarFunc pointwise over a domain's grid points to
// produce an initial condition Vector.
type Map interface {
	Apply(f ScalarFunc) Vector
}

// ScalarFunc is a plain scalar function of a spatial coordinate, used for
// initial conditions, boundary conditions and payoffs.
type ScalarFunc func(x ...float64) float64
