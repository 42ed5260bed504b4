// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackscholes

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/pdesolve/grid"
	"github.com/cpmech/pdesolve/iter"
	"github.com/cpmech/pdesolve/linsol"
)

// DefaultPenalty is the penalty coefficient used when a PenaltyMethod is
// built with NewPenaltyMethod: the reciprocal of a typical tolerance, so
// constraint violations of that order survive in the solution.
const DefaultPenalty = 1e6

// PenaltyMethod enforces the American-exercise constraint V >= payoff by
// adding a large diagonal penalty to the rows where the most recent
// fixed-point iterand violates it:
//
//	A(t) = inner.A(t) + large * P
//	b(t) = inner.B(t) + large * P * g
//
// with P_ii = 1 where iterand(0)_i < g_i, and g the payoff sampled on the
// grid. The node is meant to be attached to a ToleranceIteration nested
// inside the time stepper that drives the wrapped discretization; each
// fixed-point pass re-solves with the active set implied by the previous
// pass until successive iterands agree within the tolerance iteration's
// tolerance.
type PenaltyMethod struct {
	iter.NodeBase

	grid       *grid.Grid1D
	inner      iter.IterationNode
	constraint iter.Vector
	large      float64
}

// NewPenaltyMethod builds a penalty node over g wrapping inner, with the
// constraint g(x) sampled pointwise from payoff and the default penalty
// coefficient.
func NewPenaltyMethod(g *grid.Grid1D, inner iter.IterationNode, payoff iter.ScalarFunc) *PenaltyMethod {
	return NewPenaltyMethodWithCoefficient(g, inner, payoff, DefaultPenalty)
}

// NewPenaltyMethodWithCoefficient is NewPenaltyMethod with an explicit
// penalty coefficient, which must be positive.
func NewPenaltyMethodWithCoefficient(g *grid.Grid1D, inner iter.IterationNode, payoff iter.ScalarFunc, large float64) *PenaltyMethod {
	if large <= 0 {
		chk.Panic("blackscholes.NewPenaltyMethod: penalty coefficient must be > 0, got %v", large)
	}
	constraint := make(iter.Vector, g.Size())
	for i := range constraint {
		constraint[i] = payoff(g.Coordinates(i)...)
	}
	p := &PenaltyMethod{grid: g, inner: inner, constraint: constraint, large: large}
	p.Init(p)
	return p
}

// active reports the grid indices where the previous iterand violates the
// constraint.
func (p *PenaltyMethod) active() []bool {
	prev := p.Iterand(0)
	assertSameGrid(p.grid, prev, "blackscholes.PenaltyMethod")
	mask := make([]bool, len(prev))
	for i := range prev {
		mask[i] = prev[i] < p.constraint[i]
	}
	return mask
}

// A implements iter.LinearSystem.
func (p *PenaltyMethod) A(t float64) iter.SparseMatrix {
	base := p.inner.A(t)
	m, ok := base.(*linsol.Matrix)
	if !ok {
		chk.Panic("blackscholes.PenaltyMethod.A: inner matrix is %T, not *linsol.Matrix", base)
	}
	n := p.grid.Size()
	penalty := linsol.NewMatrix(n)
	for i, on := range p.active() {
		if on {
			penalty.Set(i, i, p.large)
		}
	}
	return m.Add(penalty)
}

// B implements iter.LinearSystem.
func (p *PenaltyMethod) B(t float64) iter.Vector {
	b := iter.VecClone(p.inner.B(t))
	for i, on := range p.active() {
		if on {
			b[i] += p.large * p.constraint[i]
		}
	}
	return b
}

// IsATheSame always reports false: the active set is recomputed from the
// previous iterand on every pass.
func (p *PenaltyMethod) IsATheSame() bool { return false }
