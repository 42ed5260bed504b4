// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import "math"

// Vector is a dense column vector. The engine treats it as opaque data,
// manipulating it only through the free functions below, mirroring how
// gosl/la exposes Vec* free functions instead of methods on []float64.
type Vector []float64

// SparseMatrix is the opaque left-hand-side operator supplied by a
// discretization. The concrete implementation lives in the linsol
// collaborator package (grid hands out linsol matrices) and converts to
// gosl/la triplets for factorisation.
type SparseMatrix interface {
	// Rows returns the dimension of the (square) matrix.
	Rows() int

	// MulVec returns A*x.
	MulVec(x Vector) Vector

	// Add returns A+other. Both operands must have the same dimension.
	Add(other SparseMatrix) SparseMatrix

	// Scale returns s*A.
	Scale(s float64) SparseMatrix

	// ZeroRow returns a copy of A with row i replaced by the i-th row of
	// the identity matrix (used by the Dirichlet boundary overlay).
	ZeroRow(i int) SparseMatrix
}

// VecClone returns a copy of v.
func VecClone(v Vector) Vector {
	w := make(Vector, len(v))
	copy(w, v)
	return w
}

// VecSub returns a-b elementwise.
func VecSub(a, b Vector) Vector {
	if len(a) != len(b) {
		panicf("VecSub: mismatched sizes %d != %d", len(a), len(b))
	}
	r := make(Vector, len(a))
	for i := range a {
		r[i] = a[i] - b[i]
	}
	return r
}

// VecAdd returns a+b elementwise.
func VecAdd(a, b Vector) Vector {
	if len(a) != len(b) {
		panicf("VecAdd: mismatched sizes %d != %d", len(a), len(b))
	}
	r := make(Vector, len(a))
	for i := range a {
		r[i] = a[i] + b[i]
	}
	return r
}

// VecScale returns s*a.
func VecScale(a Vector, s float64) Vector {
	r := make(Vector, len(a))
	for i := range a {
		r[i] = s * a[i]
	}
	return r
}

// VecMaxAbs returns max_i |a_i|.
func VecMaxAbs(a Vector) float64 {
	m := 0.0
	for _, v := range a {
		if av := math.Abs(v); av > m {
			m = av
		}
	}
	return m
}
