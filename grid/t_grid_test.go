// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/pdesolve/iter"
)

func init() {
	io.Verbose = false
}

func mustPanic(f func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	f()
	return
}

func Test_axis01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("axis01. construction, union, refinement")

	a := NewAxis(3, 1, 2, 1)
	chk.Vector(tst, "sorted, deduped", 1e-17, a, []float64{1, 2, 3})

	u := UniformAxis(0, 1, 5)
	chk.Vector(tst, "uniform", 1e-15, u, []float64{0, 0.25, 0.5, 0.75, 1})

	ab := a.Union(NewAxis(0.5, 2, 4))
	chk.Vector(tst, "union", 1e-17, ab, []float64{0.5, 1, 2, 3, 4})

	r := NewAxis(0, 1).Refined(2)
	chk.Vector(tst, "refined twice", 1e-17, r, []float64{0, 0.25, 0.5, 0.75, 1})

	// refinement preserves the original nodes
	sp := SpecialAxis(100)
	rsp := sp.Refined(1)
	chk.IntAssert(len(rsp), 2*len(sp)-1)
	for i, v := range sp {
		chk.Scalar(tst, io.Sf("node %d survives", i), 1e-17, rsp[2*i], v)
	}

	if !mustPanic(func() { NewAxis(1, 1) }) {
		tst.Errorf("a single distinct node must panic\n")
	}
	if !mustPanic(func() { UniformAxis(1, 0, 5) }) {
		tst.Errorf("a reversed span must panic\n")
	}
}

func Test_axis02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("axis02. the special axis clusters around its centre")

	a := SpecialAxis(100)
	chk.Scalar(tst, "first node", 1e-17, a[0], 0)
	chk.Scalar(tst, "last node", 1e-12, a[len(a)-1], 10000)

	// the centre itself is a node
	found := false
	for _, v := range a {
		if v == 100 {
			found = true
		}
	}
	if !found {
		tst.Errorf("centre must be one of the nodes\n")
	}
}

func Test_interp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp01. piecewise linear interpolation")

	axis := NewAxis(0, 1, 3)
	p := NewPiecewiseLinear(axis, iter.Vector{10, 20, 40})

	chk.Scalar(tst, "at node 0", 1e-15, p.At(0), 10)
	chk.Scalar(tst, "at node 1", 1e-15, p.At(1), 20)
	chk.Scalar(tst, "at node 2", 1e-15, p.At(3), 40)
	chk.Scalar(tst, "between 0 and 1", 1e-15, p.At(0.5), 15)
	chk.Scalar(tst, "between 1 and 3", 1e-15, p.At(2), 30)

	// outside the span the last segment extends linearly
	chk.Scalar(tst, "beyond the end", 1e-15, p.At(4), 50)
	chk.Scalar(tst, "before the start", 1e-15, p.At(-1), 0)

	if !mustPanic(func() { NewPiecewiseLinear(axis, iter.Vector{1}) }) {
		tst.Errorf("mismatched sizes must panic\n")
	}
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. domain interface over an axis")

	g := NewGrid1D(NewAxis(0, 10, 20))
	chk.IntAssert(g.Size(), 3)
	chk.Vector(tst, "coordinates", 1e-17, g.Coordinates(1), []float64{10})

	id := g.Identity()
	chk.IntAssert(id.Rows(), 3)
	chk.Vector(tst, "identity", 1e-17, id.MulVec(iter.Vector{4, 5, 6}), iter.Vector{4, 5, 6})

	v := PointwiseMap{Domain: g}.Apply(func(x ...float64) float64 { return 2 * x[0] })
	chk.Vector(tst, "sampled", 1e-17, v, iter.Vector{0, 20, 40})

	interp := g.DefaultInterpolantFactory().Make(v)
	chk.Scalar(tst, "interpolated", 1e-15, interp.At(5), 10)

	r := g.Refined(1)
	chk.IntAssert(r.Size(), 5)
}
