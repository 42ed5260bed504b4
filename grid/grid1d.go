// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/pdesolve/iter"
	"github.com/cpmech/pdesolve/linsol"
)

// Grid1D is a 1-D rectilinear domain implementing iter.Domain. The zero
// value is not usable; build one with NewGrid1D.
type Grid1D struct {
	axis Axis
}

// NewGrid1D builds a domain over the given axis.
func NewGrid1D(axis Axis) *Grid1D {
	if len(axis) < 2 {
		chk.Panic("grid.NewGrid1D: axis needs at least 2 nodes, got %d", len(axis))
	}
	return &Grid1D{axis: axis}
}

// Axis returns the domain's node coordinates.
func (g *Grid1D) Axis() Axis { return g.axis }

// Refined returns a new domain whose axis has times rounds of midpoint
// insertion applied.
func (g *Grid1D) Refined(times int) *Grid1D {
	return NewGrid1D(g.axis.Refined(times))
}

// Identity implements iter.Domain.
func (g *Grid1D) Identity() iter.SparseMatrix {
	return linsol.Identity(len(g.axis))
}

// Size implements iter.Domain.
func (g *Grid1D) Size() int { return len(g.axis) }

// Coordinates implements iter.Domain.
func (g *Grid1D) Coordinates(i int) []float64 {
	if i < 0 || i >= len(g.axis) {
		chk.Panic("grid.Grid1D.Coordinates: index %d out of range [0,%d)", i, len(g.axis))
	}
	return []float64{g.axis[i]}
}

// DefaultInterpolantFactory implements iter.Domain, returning a
// piecewise-linear factory over this grid's axis.
func (g *Grid1D) DefaultInterpolantFactory() iter.InterpolantFactory {
	return PiecewiseLinearFactory{axis: g.axis}
}
