// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linsol supplies iter.SparseMatrix and iter.LinearSolver
// implementations backed by gosl/la: Matrix, a triplet-format sparse
// matrix built the way gofem assembles its Jacobian (Init/Start/Put, with
// repeated Puts at the same (i,j) summing), and SparseAdapter, which
// drives a gosl/la.LinSol the way gofem's implicit solver does
// (InitR/Fact/SolveR/Clean).
package linsol

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/pdesolve/iter"
)

// entry is one (row, col, value) triplet contribution. Matrix stores
// entries unsummed, mirroring the triplet-format convention gofem relies
// on when several elements contribute to the same Jacobian position
// (fem/domain.go's Kb.PutMatAndMatT, fem/e_*.go's Kb.Put calls): duplicates
// are summed when the matrix is finally handed to a solver or read back,
// not eagerly.
type entry struct {
	i, j int
	v    float64
}

// Matrix is a square sparse matrix in triplet format, implementing
// iter.SparseMatrix. The zero value is not usable; build one with
// NewMatrix or Identity.
type Matrix struct {
	rows    int
	entries []entry
}

// NewMatrix returns a rows-by-rows matrix with no entries (the zero
// matrix). Set adds entries to it.
func NewMatrix(rows int) *Matrix {
	if rows <= 0 {
		chk.Panic("linsol.NewMatrix: rows must be > 0, got %d", rows)
	}
	return &Matrix{rows: rows}
}

// Identity returns the n-by-n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Set appends a contribution of v at (i, j). Calling Set more than once
// for the same (i, j) accumulates, matching triplet-format assembly.
func (m *Matrix) Set(i, j int, v float64) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.rows {
		chk.Panic("linsol.Matrix.Set: index (%d,%d) out of range for %d rows", i, j, m.rows)
	}
	m.entries = append(m.entries, entry{i, j, v})
}

// Rows implements iter.SparseMatrix.
func (m *Matrix) Rows() int { return m.rows }

// MulVec implements iter.SparseMatrix.
func (m *Matrix) MulVec(x iter.Vector) iter.Vector {
	if len(x) != m.rows {
		chk.Panic("linsol.Matrix.MulVec: vector length %d != %d rows", len(x), m.rows)
	}
	y := make(iter.Vector, m.rows)
	for _, e := range m.entries {
		y[e.i] += e.v * x[e.j]
	}
	return y
}

// Add implements iter.SparseMatrix. other must be a *Matrix of the same
// dimension (the only concrete SparseMatrix this package produces).
func (m *Matrix) Add(other iter.SparseMatrix) iter.SparseMatrix {
	o, ok := other.(*Matrix)
	if !ok {
		chk.Panic("linsol.Matrix.Add: other is %T, not *linsol.Matrix", other)
	}
	if o.rows != m.rows {
		chk.Panic("linsol.Matrix.Add: mismatched dimensions %d != %d", m.rows, o.rows)
	}
	out := &Matrix{rows: m.rows, entries: make([]entry, 0, len(m.entries)+len(o.entries))}
	out.entries = append(out.entries, m.entries...)
	out.entries = append(out.entries, o.entries...)
	return out
}

// Scale implements iter.SparseMatrix.
func (m *Matrix) Scale(s float64) iter.SparseMatrix {
	out := &Matrix{rows: m.rows, entries: make([]entry, len(m.entries))}
	for k, e := range m.entries {
		out.entries[k] = entry{e.i, e.j, s * e.v}
	}
	return out
}

// ZeroRow implements iter.SparseMatrix: every stored entry in row i is
// dropped and replaced with a single 1 on the diagonal.
func (m *Matrix) ZeroRow(i int) iter.SparseMatrix {
	if i < 0 || i >= m.rows {
		chk.Panic("linsol.Matrix.ZeroRow: index %d out of range for %d rows", i, m.rows)
	}
	out := &Matrix{rows: m.rows, entries: make([]entry, 0, len(m.entries)+1)}
	for _, e := range m.entries {
		if e.i != i {
			out.entries = append(out.entries, e)
		}
	}
	out.entries = append(out.entries, entry{i, i, 1})
	return out
}

// nnz returns the number of stored entries, used to size the gosl/la.Triplet
// this matrix is converted to.
func (m *Matrix) nnz() int { return len(m.entries) }

// triplet converts m into a freshly Start()-ed gosl/la.Triplet, the format
// la.LinSol.InitR expects (fem/domain.go's o.Kb.Init/.Start, fem/e_*.go's
// Kb.Put calls).
func (m *Matrix) triplet() *la.Triplet {
	t := new(la.Triplet)
	t.Init(m.rows, m.rows, m.nnz())
	t.Start()
	for _, e := range m.entries {
		t.Put(e.i, e.j, e.v)
	}
	return t
}
