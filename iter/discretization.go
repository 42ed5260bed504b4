// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

// DirichletBoundary pins the solution at Index to Value(t, x), where x is
// the spatial coordinate of Index in the owning Domain.
type DirichletBoundary struct {
	Index int
	Value func(t float64, x []float64) float64
}

// Discretization is an IterationNode specialised for PDE spatial
// discretizations: it wraps an undecorated system supplying Ad(t)/bd(t)
// (pre-boundary) and overlays a sparse set of Dirichlet boundary
// conditions on top. A(t) zeroes every registered boundary row except for
// a 1 on the diagonal; B(t) is Bd(t) with every registered boundary index
// overwritten by its boundary function evaluated at that index's
// coordinate.
type Discretization struct {
	NodeBase
	domain   Domain
	interior LinearSystem
	boundary []DirichletBoundary
}

// NewDiscretization builds a Discretization wrapping interior (the
// undecorated Ad/bd producer) with the given boundary conditions.
func NewDiscretization(domain Domain, interior LinearSystem, boundary ...DirichletBoundary) *Discretization {
	d := &Discretization{domain: domain, interior: interior, boundary: boundary}
	d.Init(d)
	return d
}

// A returns the interior system's matrix with every boundary row zeroed
// except for the diagonal.
func (d *Discretization) A(t float64) SparseMatrix {
	return d.overlayA(d.interior.A(t))
}

// B returns the interior system's vector with every boundary index
// overwritten by its boundary function.
func (d *Discretization) B(t float64) Vector {
	return d.overlayB(t, d.interior.B(t))
}

// IsATheSame defers to the interior system when it implements the same
// check; otherwise every step is assumed to change A.
func (d *Discretization) IsATheSame() bool {
	if same, ok := d.interior.(interface{ IsATheSame() bool }); ok {
		return same.IsATheSame()
	}
	return false
}

// MinimumLookback defers to the interior system when it implements the
// same check; otherwise 1, the NodeBase default.
func (d *Discretization) MinimumLookback() int {
	if mlb, ok := d.interior.(interface{ MinimumLookback() int }); ok {
		return mlb.MinimumLookback()
	}
	return 1
}

func (d *Discretization) overlayA(raw SparseMatrix) SparseMatrix {
	a := raw
	for _, bc := range d.boundary {
		a = a.ZeroRow(bc.Index)
	}
	return a
}

func (d *Discretization) overlayB(t float64, raw Vector) Vector {
	b := VecClone(raw)
	for _, bc := range d.boundary {
		b[bc.Index] = bc.Value(t, d.domain.Coordinates(bc.Index))
	}
	return b
}
