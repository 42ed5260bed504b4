// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

// LinearSolver factorizes and solves A*x = b for a sequence of systems that
// may share a sparsity pattern across calls. Implementations live in the
// linsol package, wrapping gosl/la.LinSol.
type LinearSolver interface {
	// Initialize prepares the solver to accept A, discarding any
	// previously factorized matrix. Called whenever IsATheSame is false.
	Initialize(a SparseMatrix) error

	// Factorize performs (or refreshes) the numerical factorization of
	// the matrix passed to the most recent Initialize call.
	Factorize() error

	// Solve returns x solving A*x = b using the current factorization.
	// warmStart is the previous iterand, offered as an initial guess;
	// direct solvers are free to ignore it.
	Solve(b, warmStart Vector) (Vector, error)

	// Clean releases any resources held by the solver.
	Clean()
}
