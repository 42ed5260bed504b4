// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/pdesolve/iter"
)

// PiecewiseLinear interpolates a vector of nodal values over an Axis:
// linear between neighbouring nodes, linearly extrapolated outside the
// axis span.
type PiecewiseLinear struct {
	axis   Axis
	values iter.Vector
}

// NewPiecewiseLinear builds an interpolant from nodal values on axis.
func NewPiecewiseLinear(axis Axis, values iter.Vector) *PiecewiseLinear {
	if len(values) != len(axis) {
		chk.Panic("grid.NewPiecewiseLinear: %d values for %d axis nodes", len(values), len(axis))
	}
	return &PiecewiseLinear{axis: axis, values: values}
}

// At implements iter.Interpolant for a single spatial coordinate.
func (p *PiecewiseLinear) At(x ...float64) float64 {
	if len(x) != 1 {
		chk.Panic("grid.PiecewiseLinear.At: want 1 coordinate, got %d", len(x))
	}
	i := p.axis.search(x[0])
	x0, x1 := p.axis[i], p.axis[i+1]
	w := (x[0] - x0) / (x1 - x0)
	return (1-w)*p.values[i] + w*p.values[i+1]
}

// PiecewiseLinearFactory builds PiecewiseLinear interpolants over a fixed
// axis, implementing iter.InterpolantFactory.
type PiecewiseLinearFactory struct {
	axis Axis
}

// NewPiecewiseLinearFactory returns a factory for the given axis.
func NewPiecewiseLinearFactory(axis Axis) PiecewiseLinearFactory {
	return PiecewiseLinearFactory{axis: axis}
}

// Make implements iter.InterpolantFactory.
func (f PiecewiseLinearFactory) Make(v iter.Vector) iter.Interpolant {
	return NewPiecewiseLinear(f.axis, iter.VecClone(v))
}
