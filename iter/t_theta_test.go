// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// recordingSolver is a denseSolver that also keeps the assembled A and b
// of every step.
type recordingSolver struct {
	denseSolver
	as []*denseMatrix
	bs []Vector
}

func (s *recordingSolver) Initialize(a SparseMatrix) error {
	s.as = append(s.as, a.(*denseMatrix))
	return s.denseSolver.Initialize(a)
}

func (s *recordingSolver) Solve(b, warmStart Vector) (Vector, error) {
	s.bs = append(s.bs, VecClone(b))
	return s.denseSolver.Solve(b, warmStart)
}

// oneStepTheta runs a single reverse step from t=1 to t=0 with dt=1 on
// A_sys = diag(2, 3), b_sys = (5, 7), x0 = (1, 1), and returns the
// assembled system and the solved iterand.
func oneStepTheta(tst *testing.T, build func(Domain, System) *CrankNicolson) (a *denseMatrix, b, x Vector) {
	dom := testDomain{n: 2}
	sys := constSystem{a: denseDiagonal(2, 3), b: Vector{5, 7}}

	stepper := NewReverseTimeIteration(0, 1, ConstantStepSize(1))
	scheme := build(dom, sys)
	scheme.SetIteration(stepper.Iteration)

	solver := new(recordingSolver)
	sol, err := Solve(dom, func(x ...float64) float64 { return 1 }, stepper.Iteration, scheme, solver)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return nil, nil, nil
	}
	chk.IntAssert(len(solver.as), 1)
	chk.IntAssert(len(solver.bs), 1)
	return solver.as[0], solver.bs[0], Vector{sol.At(0), sol.At(1)}
}

func Test_theta01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("theta01. implicit assembly: (I + dt A) x1 = x0 + dt b")

	a, b, x := oneStepTheta(tst, func(dom Domain, sys System) *CrankNicolson {
		return NewImplicit(dom, sys, false)
	})
	if a == nil {
		return
	}

	chk.Vector(tst, "A row 0", 1e-15, a.d[0], []float64{3, 0})
	chk.Vector(tst, "A row 1", 1e-15, a.d[1], []float64{0, 4})
	chk.Vector(tst, "b", 1e-15, b, Vector{6, 8})
	chk.Vector(tst, "x", 1e-14, x, Vector{2, 2})

	// residual: Ad x - bd = 0
	chk.Vector(tst, "residual", 1e-13, VecSub(a.MulVec(x), b), make(Vector, 2))
}

func Test_theta02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("theta02. Crank-Nicolson assembly: symmetric average")

	a, b, x := oneStepTheta(tst, func(dom Domain, sys System) *CrankNicolson {
		return NewCrankNicolson(dom, sys, false)
	})
	if a == nil {
		return
	}

	chk.Vector(tst, "A row 0", 1e-15, a.d[0], []float64{2, 0})
	chk.Vector(tst, "A row 1", 1e-15, a.d[1], []float64{0, 2.5})
	chk.Vector(tst, "b", 1e-15, b, Vector{5, 6.5})
	chk.Vector(tst, "x", 1e-14, x, Vector{2.5, 2.6})
	chk.Vector(tst, "residual", 1e-13, VecSub(a.MulVec(x), b), make(Vector, 2))
}

func Test_theta03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("theta03. explicit assembly: x1 = (I - dt A) x0 + dt b")

	a, b, x := oneStepTheta(tst, func(dom Domain, sys System) *CrankNicolson {
		return NewExplicit(dom, sys, false)
	})
	if a == nil {
		return
	}

	chk.Vector(tst, "A row 0", 1e-15, a.d[0], []float64{1, 0})
	chk.Vector(tst, "A row 1", 1e-15, a.d[1], []float64{0, 1})
	chk.Vector(tst, "b", 1e-15, b, Vector{4, 5})
	chk.Vector(tst, "x", 1e-14, x, Vector{4, 5})
}

func Test_theta04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("theta04. degenerate timestep panics")

	dom := testDomain{n: 1}
	sys := constSystem{a: denseDiagonal(1), b: make(Vector, 1)}

	stepper := NewReverseTimeIteration(0, 1, ConstantStepSize(1))
	scheme := NewImplicit(dom, sys, false)
	scheme.SetIteration(stepper.Iteration)
	stepper.Iteration.allocateHistories()
	stepper.Iteration.history.push(1, Vector{1})

	// t1 == t0 means dt = 0
	if !mustPanic(func() { scheme.A(1) }) {
		tst.Errorf("zero dt must panic\n")
	}
}

func Test_rannacher01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rannacher01. two implicit startup steps, then Crank-Nicolson")

	// decay problem: steps 1-2 implicit, steps 3-4 Crank-Nicolson
	dom := testDomain{n: 1}
	sys := constSystem{a: denseDiagonal(1), b: make(Vector, 1), same: true}

	stepper := NewReverseTimeIteration(0, 1, ConstantStepSize(0.25))
	scheme := NewRannacher(dom, sys, 2, false)
	scheme.SetIteration(stepper.Iteration)

	solver := new(recordingSolver)
	sol, err := Solve(dom, func(x ...float64) float64 { return 1 }, stepper.Iteration, scheme, solver)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}

	implicit := 1 / (1 + 0.25)
	cn := (1 - 0.125) / (1 + 0.125)
	want := implicit * implicit * cn * cn
	io.Pforan("x = %v  (want %v)\n", sol.At(0), want)
	chk.Scalar(tst, "smoothed decay", 1e-13, sol.At(0), want)

	// A is rebuilt for steps 1, 2 and 3 (the switchover) and reused on 4
	chk.IntAssert(solver.nInit, 3)
	chk.Scalar(tst, "A step 1", 1e-15, solver.as[0].d[0][0], 1.25)
	chk.Scalar(tst, "A step 2", 1e-15, solver.as[1].d[0][0], 1.25)
	chk.Scalar(tst, "A step 3", 1e-15, solver.as[2].d[0][0], 1.125)
}

func Test_theta05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("theta05. explicit scheme always reuses A")

	dom := testDomain{n: 1}
	sys := constSystem{a: denseDiagonal(1), b: make(Vector, 1)}

	stepper := NewForwardTimeIteration(0, 1, ConstantStepSize(0.25))
	scheme := NewExplicit(dom, sys, true)
	scheme.SetIteration(stepper.Iteration)

	solver := new(recordingSolver)
	_, err := Solve(dom, func(x ...float64) float64 { return 1 }, stepper.Iteration, scheme, solver)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}

	// A = I on every step: factorized once even though the underlying
	// system never reports sameness
	chk.IntAssert(solver.nInit, 1)
	chk.IntAssert(len(stepper.Iterations()), 4)
	if math.IsNaN(float64(solver.bs[0][0])) {
		tst.Errorf("unexpected NaN in assembled b\n")
	}
}
