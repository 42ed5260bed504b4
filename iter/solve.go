// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

// Solve marches initialCondition, sampled pointwise onto domain's grid,
// through outer (and any iteration it wraps via SetInnerIteration), solving
// root's linear system once per timestep with solver, and wraps the
// terminal iterand in an Interpolant built by domain's default
// InterpolantFactory.
func Solve(domain Domain, initialCondition ScalarFunc, outer *Iteration, root IterationNode, solver LinearSolver) (Interpolant, error) {
	return SolveWithMap(pointwiseMap{domain}, domain.DefaultInterpolantFactory(), initialCondition, outer, root, solver)
}

// SolveWithMap is Solve with an explicit Map and InterpolantFactory, for
// callers that want a non-default sampling or interpolation scheme.
func SolveWithMap(m Map, factory InterpolantFactory, initialCondition ScalarFunc, outer *Iteration, root IterationNode, solver LinearSolver) (Interpolant, error) {
	x0 := m.Apply(initialCondition)
	outer.allocateHistories()
	// -1 is a bogus time: the outermost iteration's setTime hook always
	// establishes the true implicitTime before it is ever read.
	x, err := outer.run(x0, root, solver, -1, false)
	if err != nil {
		return nil, err
	}
	return factory.Make(x), nil
}

// pointwiseMap is the default Map: it evaluates f at every grid point's
// coordinates.
type pointwiseMap struct {
	domain Domain
}

// Apply implements Map.
func (m pointwiseMap) Apply(f ScalarFunc) Vector {
	n := m.domain.Size()
	v := make(Vector, n)
	for i := 0; i < n; i++ {
		v[i] = f(m.domain.Coordinates(i)...)
	}
	return v
}
