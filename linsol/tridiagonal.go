// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/pdesolve/iter"
)

// TridiagonalSolver solves A*x=b by the Thomas algorithm when A is known to
// be tridiagonal, as every 1-D Black-Scholes discretization in this module
// is. A full sparse factorization (SparseAdapter, gosl/la.LinSol) would
// work too, but is needless overhead for a band this narrow; this is
// plain Go arithmetic over la.VecFill-initialized buffers.
type TridiagonalSolver struct {
	n               int
	lower, diag, up float64slices
	cPrime, denom   float64slices // Factorize's forward-sweep outputs
}

type float64slices = []float64

// NewTridiagonalSolver returns an empty TridiagonalSolver. Initialize must
// be called with a tridiagonal matrix before Factorize or Solve.
func NewTridiagonalSolver() *TridiagonalSolver {
	return &TridiagonalSolver{}
}

// Initialize implements iter.LinearSolver: extracts a's three bands. a must
// have no entry with |i-j| > 1; any such entry is a contract violation
// (this solver was handed a matrix it cannot represent).
func (s *TridiagonalSolver) Initialize(a iter.SparseMatrix) error {
	m, ok := a.(*Matrix)
	if !ok {
		chk.Panic("linsol.TridiagonalSolver.Initialize: a is %T, not *linsol.Matrix", a)
	}
	n := m.Rows()
	s.n = n
	s.lower = make(float64slices, n)
	s.diag = make(float64slices, n)
	s.up = make(float64slices, n)
	la.VecFill(s.lower, 0)
	la.VecFill(s.diag, 0)
	la.VecFill(s.up, 0)
	for _, e := range m.entries {
		switch e.i - e.j {
		case 0:
			s.diag[e.i] += e.v
		case -1:
			s.up[e.i] += e.v
		case 1:
			s.lower[e.i] += e.v
		default:
			chk.Panic("linsol.TridiagonalSolver.Initialize: entry (%d,%d) is outside the tridiagonal band", e.i, e.j)
		}
	}
	return nil
}

// Factorize runs the Thomas algorithm's forward elimination sweep,
// producing the modified upper-band and diagonal coefficients Solve's
// back-substitution consumes.
func (s *TridiagonalSolver) Factorize() error {
	n := s.n
	s.cPrime = make(float64slices, n)
	s.denom = make(float64slices, n)
	if n == 0 {
		return nil
	}
	if s.diag[0] == 0 {
		chk.Panic("linsol.TridiagonalSolver.Factorize: zero pivot at row 0")
	}
	s.denom[0] = s.diag[0]
	s.cPrime[0] = s.up[0] / s.diag[0]
	for i := 1; i < n; i++ {
		d := s.diag[i] - s.lower[i]*s.cPrime[i-1]
		if d == 0 {
			chk.Panic("linsol.TridiagonalSolver.Factorize: zero pivot at row %d", i)
		}
		s.denom[i] = d
		s.cPrime[i] = s.up[i] / d
	}
	return nil
}

// Solve implements iter.LinearSolver via back-substitution against the
// coefficients Factorize computed. The warm start is ignored; the Thomas
// algorithm is direct.
func (s *TridiagonalSolver) Solve(b, warmStart iter.Vector) (iter.Vector, error) {
	n := s.n
	if len(b) != n {
		chk.Panic("linsol.TridiagonalSolver.Solve: b has length %d, want %d", len(b), n)
	}
	d := make(float64slices, n)
	copy(d, b)
	d[0] = d[0] / s.denom[0]
	for i := 1; i < n; i++ {
		d[i] = (d[i] - s.lower[i]*d[i-1]) / s.denom[i]
	}
	x := make(iter.Vector, n)
	x[n-1] = d[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = d[i] - s.cPrime[i]*x[i+1]
	}
	return x, nil
}

// Clean releases the factorization buffers.
func (s *TridiagonalSolver) Clean() {
	s.cPrime = nil
	s.denom = nil
}
