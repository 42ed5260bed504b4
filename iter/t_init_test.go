// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// denseMatrix is a small dense SparseMatrix for tests; concrete sparse
// implementations live in the linsol package, which cannot be imported
// from here without a cycle.
type denseMatrix struct {
	d [][]float64
}

func newDenseMatrix(n int) *denseMatrix {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	return &denseMatrix{d: d}
}

func denseIdentity(n int) *denseMatrix {
	m := newDenseMatrix(n)
	for i := 0; i < n; i++ {
		m.d[i][i] = 1
	}
	return m
}

func denseDiagonal(diag ...float64) *denseMatrix {
	m := newDenseMatrix(len(diag))
	for i, v := range diag {
		m.d[i][i] = v
	}
	return m
}

func (m *denseMatrix) Rows() int { return len(m.d) }

func (m *denseMatrix) MulVec(x Vector) Vector {
	y := make(Vector, len(m.d))
	for i := range m.d {
		for j, v := range m.d[i] {
			y[i] += v * x[j]
		}
	}
	return y
}

func (m *denseMatrix) Add(other SparseMatrix) SparseMatrix {
	o := other.(*denseMatrix)
	out := newDenseMatrix(len(m.d))
	for i := range m.d {
		for j := range m.d[i] {
			out.d[i][j] = m.d[i][j] + o.d[i][j]
		}
	}
	return out
}

func (m *denseMatrix) Scale(s float64) SparseMatrix {
	out := newDenseMatrix(len(m.d))
	for i := range m.d {
		for j := range m.d[i] {
			out.d[i][j] = s * m.d[i][j]
		}
	}
	return out
}

func (m *denseMatrix) ZeroRow(i int) SparseMatrix {
	out := newDenseMatrix(len(m.d))
	for r := range m.d {
		copy(out.d[r], m.d[r])
	}
	for j := range out.d[i] {
		out.d[i][j] = 0
	}
	out.d[i][i] = 1
	return out
}

// denseSolver is a direct dense solver (Gaussian elimination with partial
// pivoting) counting Initialize calls, so tests can verify factorization
// reuse gating.
type denseSolver struct {
	a     *denseMatrix
	nInit int
}

func (s *denseSolver) Initialize(a SparseMatrix) error {
	s.a = a.(*denseMatrix)
	s.nInit++
	return nil
}

func (s *denseSolver) Factorize() error { return nil }

func (s *denseSolver) Solve(b, warmStart Vector) (Vector, error) {
	n := s.a.Rows()
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, n+1)
		copy(aug[i], s.a.d[i])
		aug[i][n] = b[i]
	}
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if abs(aug[r][col]) > abs(aug[pivot][col]) {
				pivot = r
			}
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]
		for r := col + 1; r < n; r++ {
			f := aug[r][col] / aug[col][col]
			for c := col; c <= n; c++ {
				aug[r][c] -= f * aug[col][c]
			}
		}
	}
	x := make(Vector, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}
	return x, nil
}

func (s *denseSolver) Clean() {}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// testDomain is a 1-D domain with unit-spaced nodes at 0, 1, ..., n-1.
type testDomain struct {
	n int
}

func (d testDomain) Identity() SparseMatrix     { return denseIdentity(d.n) }
func (d testDomain) Size() int                  { return d.n }
func (d testDomain) Coordinates(i int) []float64 { return []float64{float64(i)} }

func (d testDomain) DefaultInterpolantFactory() InterpolantFactory {
	return nodalFactory{}
}

// nodalInterpolant returns the nodal value nearest to the queried point;
// tests only ever query exactly on nodes.
type nodalInterpolant Vector

func (p nodalInterpolant) At(x ...float64) float64 {
	return p[int(x[0]+0.5)]
}

type nodalFactory struct{}

func (nodalFactory) Make(v Vector) Interpolant {
	return nodalInterpolant(VecClone(v))
}

// constSystem is a System with fixed A and b and a configurable
// IsATheSame answer.
type constSystem struct {
	a    *denseMatrix
	b    Vector
	same bool
}

func (s constSystem) A(t float64) SparseMatrix { return s.a }
func (s constSystem) B(t float64) Vector       { return VecClone(s.b) }
func (s constSystem) IsATheSame() bool         { return s.same }

// fixedNode is an IterationNode with a fixed system, for driving the loop
// skeleton directly without a theta scheme in between.
type fixedNode struct {
	NodeBase
	a    *denseMatrix
	b    Vector
	same bool
}

func newFixedNode(a *denseMatrix, b Vector, same bool) *fixedNode {
	n := &fixedNode{a: a, b: b, same: same}
	n.Init(n)
	return n
}

func (n *fixedNode) A(t float64) SparseMatrix { return n.a }
func (n *fixedNode) B(t float64) Vector       { return VecClone(n.b) }
func (n *fixedNode) IsATheSame() bool         { return n.same }

// recorderNode appends a tagged entry to a shared log on every lifecycle
// hook and records the owning iteration's time at each step start.
type recorderNode struct {
	NodeBase
	tag   string
	log   *[]string
	times []float64
}

func newRecorderNode(tag string, log *[]string) *recorderNode {
	n := &recorderNode{tag: tag, log: log}
	n.Init(n)
	return n
}

func (n *recorderNode) A(t float64) SparseMatrix { panic("recorderNode has no system") }
func (n *recorderNode) B(t float64) Vector       { panic("recorderNode has no system") }

func (n *recorderNode) OnIterationStart() {
	n.times = append(n.times, n.NextTime())
	*n.log = append(*n.log, n.tag+":start")
}

func (n *recorderNode) OnIterationEnd() {
	*n.log = append(*n.log, n.tag+":end")
}

func (n *recorderNode) OnAfterEvent() {
	*n.log = append(*n.log, n.tag+":afterEvent")
	n.Clear()
}

// mustPanic runs f and reports whether it panicked.
func mustPanic(f func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	f()
	return
}
