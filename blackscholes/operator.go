// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blackscholes supplies the Black-Scholes spatial operator,
// payoff functions and the penalty method for American-exercise
// constraints, as iteration nodes for the iter engine.
package blackscholes

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/pdesolve/grid"
	"github.com/cpmech/pdesolve/iter"
	"github.com/cpmech/pdesolve/linsol"
)

// Operator is the spatial Black-Scholes operator in the form marched by a
// theta scheme: A(t) discretizes
//
//	(L V)_i = -[ sigma^2 S^2 / 2 V_SS + (r - q) S V_S - r V ]_i
//
// on the grid's (generally nonuniform) axis, so that (I + dt A) x1 = x0
// is one implicit step of V_t = -LV marched in backward time. The
// convection term uses central differencing where it keeps both
// off-diagonal coefficients nonnegative and falls back to one-sided
// (upwind) differencing otherwise. It implements iter.System and, through
// the embedded ControlledLinearSystem, accepts control inputs for any
// coefficient built with iter.NewControl.
type Operator struct {
	iter.ControlledLinearSystem

	grid       *grid.Grid1D
	rate       *iter.Controllable
	volatility *iter.Controllable
	dividend   *iter.Controllable
}

// NewOperator builds the operator over g with controllable rate,
// volatility and continuous dividend coefficients.
func NewOperator(g *grid.Grid1D, rate, volatility, dividend *iter.Controllable) *Operator {
	o := &Operator{grid: g, rate: rate, volatility: volatility, dividend: dividend}
	o.RegisterControl(rate)
	o.RegisterControl(volatility)
	o.RegisterControl(dividend)
	return o
}

// NewConstOperator builds the operator with constant coefficients.
func NewConstOperator(g *grid.Grid1D, rate, volatility, dividend float64) *Operator {
	return NewOperator(g,
		iter.NewConstant(rate),
		iter.NewConstant(volatility),
		iter.NewConstant(dividend),
	)
}

// A implements iter.System.
func (o *Operator) A(t float64) iter.SparseMatrix {
	axis := o.grid.Axis()
	n := len(axis)
	m := linsol.NewMatrix(n)

	// S = 0: the PDE degenerates to V_t = -rV.
	m.Set(0, 0, o.rate.Value(t, axis[0:1]))

	for i := 1; i < n-1; i++ {
		x := axis[i : i+1]
		s := axis[i]
		r := o.rate.Value(t, x)
		v := o.volatility.Value(t, x)
		q := o.dividend.Value(t, x)

		dSb := s - axis[i-1]
		dSf := axis[i+1] - s
		dSc := dSb + dSf

		vv := v * v * s * s
		drift := (r - q) * s

		alpha := vv/dSb/dSc - drift/dSc
		beta := vv/dSf/dSc + drift/dSc
		if alpha < 0 {
			// Forward differencing for the drift
			alpha = vv / dSb / dSc
			beta = vv/dSf/dSc + drift/dSf
		} else if beta < 0 {
			// Backward differencing for the drift
			alpha = vv/dSb/dSc - drift/dSb
			beta = vv / dSf / dSc
		}

		m.Set(i, i-1, -alpha)
		m.Set(i, i, alpha+beta+r)
		m.Set(i, i+1, -beta)
	}

	// Far field: diffusion is negligible relative to drift, so the last
	// row drops V_SS and one-sides the convection term.
	{
		x := axis[n-1 : n]
		s := axis[n-1]
		r := o.rate.Value(t, x)
		q := o.dividend.Value(t, x)
		dSb := s - axis[n-2]
		drift := (r - q) * s
		m.Set(n-1, n-2, drift/dSb)
		m.Set(n-1, n-1, -drift/dSb+r)
	}

	return m
}

// B implements iter.System: the Black-Scholes equation is homogeneous.
func (o *Operator) B(t float64) iter.Vector {
	return make(iter.Vector, o.grid.Size())
}

// IsATheSame implements iter.System: A is reusable whenever every
// coefficient is constant in time.
func (o *Operator) IsATheSame() bool {
	return o.rate.IsConstantInTime() &&
		o.volatility.IsConstantInTime() &&
		o.dividend.IsConstantInTime()
}

// assertSameGrid panics unless v is sized to g.
func assertSameGrid(g *grid.Grid1D, v iter.Vector, caller string) {
	if len(v) != g.Size() {
		chk.Panic("%s: vector length %d != grid size %d", caller, len(v), g.Size())
	}
}
