// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import "math"

// System is the undecorated spatial operator a CrankNicolson scheme
// time-discretizes: A_sys(t), b_sys(t), plus a same-matrix check the
// theta-scheme folds into its own IsATheSame.
type System interface {
	A(t float64) SparseMatrix
	B(t float64) Vector
	IsATheSame() bool
}

// CrankNicolson is a one-parameter family of time discretizations of an
// underlying System, parameterised by ThetaInverse (theta = 1/ThetaInverse):
// ThetaInverse=1 is fully implicit, =2 is Crank-Nicolson, =+Inf is fully
// explicit (theta=0). It embeds Discretization, inheriting the Dirichlet
// boundary overlay and the NodeBase history accessors.
type CrankNicolson struct {
	Discretization
	sys          System
	thetaInverse float64
	forward      bool
}

func newThetaScheme(domain Domain, sys System, thetaInverse float64, forward bool, boundary ...DirichletBoundary) *CrankNicolson {
	c := &CrankNicolson{
		Discretization: Discretization{domain: domain, boundary: boundary},
		sys:            sys,
		thetaInverse:   thetaInverse,
		forward:        forward,
	}
	c.Init(c)
	return c
}

// NewImplicit builds a fully implicit (ThetaInverse=1) scheme.
func NewImplicit(domain Domain, sys System, forward bool, boundary ...DirichletBoundary) *CrankNicolson {
	return newThetaScheme(domain, sys, 1, forward, boundary...)
}

// NewCrankNicolson builds the canonical Crank-Nicolson (ThetaInverse=2)
// scheme.
func NewCrankNicolson(domain Domain, sys System, forward bool, boundary ...DirichletBoundary) *CrankNicolson {
	return newThetaScheme(domain, sys, 2, forward, boundary...)
}

// NewExplicit builds a fully explicit (ThetaInverse=+Inf, theta=0) scheme.
func NewExplicit(domain Domain, sys System, forward bool, boundary ...DirichletBoundary) *CrankNicolson {
	return newThetaScheme(domain, sys, math.Inf(1), forward, boundary...)
}

// A returns Ad(t1) per the scheme's ThetaInverse.
func (c *CrankNicolson) A(t1 float64) SparseMatrix {
	return c.effectiveA(t1, c.thetaInverse)
}

// B returns bd(t1) per the scheme's ThetaInverse.
func (c *CrankNicolson) B(t1 float64) Vector {
	return c.effectiveB(t1, c.thetaInverse)
}

// IsATheSame holds when theta is small enough that Ad is always the
// identity, or when both the timestep and the underlying system are
// unchanged from the previous step.
func (c *CrankNicolson) IsATheSame() bool {
	return c.effectiveIsATheSame(c.thetaInverse)
}

func (c *CrankNicolson) delta(t1 float64) float64 {
	t0 := c.Time(0)
	var dt float64
	if c.forward {
		dt = t1 - t0
	} else {
		dt = t0 - t1
	}
	if dt <= Epsilon {
		panicf("CrankNicolson: degenerate timestep dt=%v (t0=%v, t1=%v)", dt, t0, t1)
	}
	return dt
}

func (c *CrankNicolson) effectiveA(t1, thetaInverse float64) SparseMatrix {
	theta := 1 / thetaInverse
	if theta < Epsilon {
		return c.overlayA(c.domain.Identity())
	}
	dt := c.delta(t1)
	ad := c.domain.Identity().Add(c.sys.A(t1).Scale(theta * dt))
	return c.overlayA(ad)
}

func (c *CrankNicolson) effectiveB(t1, thetaInverse float64) Vector {
	theta := 1 / thetaInverse
	dt := c.delta(t1)
	t0 := c.Time(0)
	x0 := c.Iterand(0)
	lhs := c.domain.Identity().Add(c.sys.A(t0).Scale(-(1 - theta) * dt))
	bd := lhs.MulVec(x0)
	bd = VecAdd(bd, VecScale(c.sys.B(t1), theta))
	bd = VecAdd(bd, VecScale(c.sys.B(t0), 1-theta))
	return c.overlayB(t1, bd)
}

func (c *CrankNicolson) effectiveIsATheSame(thetaInverse float64) bool {
	theta := 1 / thetaInverse
	if theta < Epsilon {
		return true
	}
	return c.IsTimestepTheSame() && c.sys.IsATheSame()
}

// Rannacher wraps a CrankNicolson scheme and runs its first two steps
// (per solve) fully implicit, regardless of the wrapped scheme's own
// ThetaInverse, then delegates to it for the rest. This is the standard
// smoothing start used to damp the spurious oscillations Crank-Nicolson
// produces from a non-smooth initial condition (e.g. an option payoff).
type Rannacher struct {
	*CrankNicolson
	implicitSteps int
	stepsTaken    int
}

// NewRannacher builds a Rannacher-smoothed scheme around a CrankNicolson
// built with the given ThetaInverse (2, canonically).
func NewRannacher(domain Domain, sys System, thetaInverse float64, forward bool, boundary ...DirichletBoundary) *Rannacher {
	r := &Rannacher{
		CrankNicolson: newThetaScheme(domain, sys, thetaInverse, forward, boundary...),
		implicitSteps: 2,
	}
	r.Init(r)
	return r
}

func (r *Rannacher) activeThetaInverse() float64 {
	if r.stepsTaken < r.implicitSteps {
		return 1
	}
	return r.thetaInverse
}

// A delegates to the wrapped scheme, forcing ThetaInverse=1 for the first
// two steps since Clear() was last called.
func (r *Rannacher) A(t1 float64) SparseMatrix {
	return r.effectiveA(t1, r.activeThetaInverse())
}

// B delegates to the wrapped scheme under the same forced ThetaInverse.
func (r *Rannacher) B(t1 float64) Vector {
	return r.effectiveB(t1, r.activeThetaInverse())
}

// IsATheSame is unconditionally false for the first two steps and for the
// step right after them (where theta switches back and A changes even if
// the timestep does not), then delegates to the wrapped scheme.
func (r *Rannacher) IsATheSame() bool {
	if r.stepsTaken <= r.implicitSteps {
		return false
	}
	return r.effectiveIsATheSame(r.activeThetaInverse())
}

// Clear resets the implicit-start step counter.
func (r *Rannacher) Clear() {
	r.stepsTaken = 0
}

// OnIterationEnd advances the implicit-start step counter.
func (r *Rannacher) OnIterationEnd() {
	r.stepsTaken++
}
