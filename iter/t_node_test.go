// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_node01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("node01. re-binding detaches from the previous iteration")

	a := NewToleranceIteration(1e-6, 1)
	b := NewToleranceIteration(1e-6, 1)

	n := newFixedNode(denseIdentity(1), Vector{1}, false)
	n.SetIteration(a.Iteration)
	chk.IntAssert(len(a.nodes), 1)

	n.SetIteration(b.Iteration)
	chk.IntAssert(len(a.nodes), 0)
	chk.IntAssert(len(b.nodes), 1)

	n.SetIteration(nil)
	chk.IntAssert(len(b.nodes), 0)
}

func Test_node02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("node02. accessors require an owning iteration")

	n := newFixedNode(denseIdentity(1), Vector{1}, false)
	if !mustPanic(func() { n.NextTime() }) {
		tst.Errorf("NextTime on an unattached node must panic\n")
	}
	if !mustPanic(func() { n.Time(0) }) {
		tst.Errorf("Time on an unattached node must panic\n")
	}
	if !mustPanic(func() { n.Iterand(0) }) {
		tst.Errorf("Iterand on an unattached node must panic\n")
	}
}

func Test_node03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("node03. history capacity is the maximum node lookback")

	stepper := NewForwardTimeIteration(0, 1, ConstantStepSize(0.5))

	deep := newIdentityFixedPointNode() // lookback 2
	deep.SetIteration(stepper.Iteration)
	shallow := newFixedNode(denseIdentity(1), Vector{1}, false) // lookback 1
	shallow.SetIteration(stepper.Iteration)

	stepper.Iteration.allocateHistories()
	chk.IntAssert(stepper.Iteration.history.lookback(), 2)
}

func Test_node04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("node04. an uninitialized NodeBase is rejected")

	n := new(fixedNode) // Init(n) deliberately not called
	if !mustPanic(func() { n.SetIteration(NewToleranceIteration(1e-6, 1).Iteration) }) {
		tst.Errorf("SetIteration without Init must panic\n")
	}
}
