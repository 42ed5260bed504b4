// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/pdesolve/iter"
)

// SparseAdapter drives a gosl/la.LinSol the way fem/s_implicit.go's
// SolverImplicit.Run does: InitR and then Fact on every Initialize/Factorize
// pair, SolveR per right-hand side. Name selects the backend
// passed to la.GetSolver ("umfpack", "mumps", or "" for gosl's default);
// Symmetric, Verbose and Timing are forwarded to InitR unchanged.
type SparseAdapter struct {
	Name      string
	Symmetric bool
	Verbose   bool
	Timing    bool

	solver la.LinSol
	rows   int
}

// NewSparseAdapter returns a SparseAdapter backed by la.GetSolver(name).
func NewSparseAdapter(name string) *SparseAdapter {
	return &SparseAdapter{Name: name, solver: la.GetSolver(name)}
}

// Initialize implements iter.LinearSolver: converts a into a gosl/la.Triplet
// and calls InitR, discarding any previous factorization.
func (s *SparseAdapter) Initialize(a iter.SparseMatrix) error {
	m, ok := a.(*Matrix)
	if !ok {
		return chk.Err("linsol.SparseAdapter.Initialize: a is %T, not *linsol.Matrix", a)
	}
	s.rows = m.Rows()
	return s.solver.InitR(m.triplet(), s.Symmetric, s.Verbose, s.Timing)
}

// Factorize implements iter.LinearSolver.
func (s *SparseAdapter) Factorize() error {
	return s.solver.Fact()
}

// Solve implements iter.LinearSolver: solves A*x = b into a freshly
// allocated result, via la.LinSol.SolveR (fem/s_implicit.go's
// d.LinSol.SolveR(d.Wb, d.Fb, false) call shape). The warm start is
// ignored; la.LinSol backends are direct solvers.
func (s *SparseAdapter) Solve(b, warmStart iter.Vector) (iter.Vector, error) {
	x := make(iter.Vector, s.rows)
	if err := s.solver.SolveR(x, b, false); err != nil {
		return nil, err
	}
	return x, nil
}

// Clean implements iter.LinearSolver.
func (s *SparseAdapter) Clean() {
	s.solver.Clean()
}
