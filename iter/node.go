// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

// LinearSystem is the per-timestep linear system A(t)*x = b(t) produced by a
// discretization or any other node that wants to be solved directly.
type LinearSystem interface {
	// A returns the left-hand-side operator evaluated at t.
	A(t float64) SparseMatrix

	// B returns the right-hand-side vector evaluated at t.
	B(t float64) Vector
}

// IterationNode is a participant attached to an Iteration: it contributes a
// LinearSystem and is notified of lifecycle events (iteration start/end,
// event boundaries). Nodes are fired in attachment order for the "start"
// hooks and in reverse attachment order for the "end" hooks.
type IterationNode interface {
	LinearSystem

	// IsATheSame reports whether A(t) is unchanged from the previous call,
	// letting the solver reuse a prior factorization. Only the root node's
	// answer gates reuse; other attached nodes are not consulted.
	IsATheSame() bool

	// MinimumLookback is the number of historical (time, iterand) pairs
	// this node needs to answer A/B/IsATheSame. The iteration's history
	// buffer is sized to the maximum over the iteration itself and all
	// its attached nodes.
	MinimumLookback() int

	// Clear resets any state the node has accumulated (called at the
	// start of every run of the owning iteration, and by the default
	// OnAfterEvent).
	Clear()

	// OnAfterEvent is called once an event has been applied at a time
	// boundary. The default implementation calls Clear.
	OnAfterEvent()

	// OnIterationStart is called before each timestep is solved, in
	// attachment order.
	OnIterationStart()

	// OnIterationEnd is called after each timestep is solved, in reverse
	// attachment order.
	OnIterationEnd()

	// SetIteration attaches the node to it, detaching it from whatever
	// iteration it was previously attached to.
	SetIteration(it *Iteration)
}

// NodeBase is an embeddable struct implementing every IterationNode method
// with the package's default: IsATheSame false (always re-factorize),
// MinimumLookback 1, OnAfterEvent calling Clear, the rest no-ops. It also
// exposes the protected read-only accessors (Time, Iterand, NextTime,
// IsTimestepTheSame) that a concrete node uses to read its owning
// iteration's history.
//
// Go has no virtual dispatch through struct embedding: NodeBase's own
// OnAfterEvent cannot "see" a Clear method overridden by an embedder the way
// a C++ base class sees an override through a virtual call. Embedders that
// rely on the default OnAfterEvent calling their own Clear must call Init
// with themselves as the self argument before attaching to an Iteration;
// Init records that value and NodeBase's default hooks dispatch through it
// instead of through the concrete NodeBase methods.
type NodeBase struct {
	self IterationNode
	it   *Iteration
}

// Init records self as the outer node value default hooks dispatch
// through. Concrete node constructors must call this before the node is
// ever attached to an Iteration.
func (b *NodeBase) Init(self IterationNode) {
	b.self = self
}

// IsATheSame always returns false: by default every node is assumed to
// change every step, forcing re-factorization.
func (b *NodeBase) IsATheSame() bool { return false }

// MinimumLookback returns 1.
func (b *NodeBase) MinimumLookback() int { return 1 }

// Clear is a no-op by default.
func (b *NodeBase) Clear() {}

// OnAfterEvent calls self.Clear().
func (b *NodeBase) OnAfterEvent() {
	b.requireSelf()
	b.self.Clear()
}

// OnIterationStart is a no-op by default.
func (b *NodeBase) OnIterationStart() {}

// OnIterationEnd is a no-op by default.
func (b *NodeBase) OnIterationEnd() {}

// SetIteration attaches self to it, detaching from any previous iteration.
func (b *NodeBase) SetIteration(it *Iteration) {
	b.requireSelf()
	if b.it != nil {
		b.it.detach(b.self)
	}
	b.it = it
	if it != nil {
		it.attach(b.self)
	}
}

// Time returns the time of the k-th most recent entry of the owning
// iteration's history.
func (b *NodeBase) Time(k int) float64 {
	b.requireIteration()
	return b.it.timeAt(k)
}

// Iterand returns the iterand of the k-th most recent entry of the owning
// iteration's history.
func (b *NodeBase) Iterand(k int) Vector {
	b.requireIteration()
	return b.it.iterandAt(k)
}

// NextTime returns the time the owning iteration is currently advancing to.
func (b *NodeBase) NextTime() float64 {
	b.requireIteration()
	return b.it.implicitTime
}

// IsTimestepTheSame reports whether the owning iteration's current timestep
// is identical to its previous one (used by time-independent nodes to
// participate in the IsATheSame conjunction).
func (b *NodeBase) IsTimestepTheSame() bool {
	b.requireIteration()
	return b.it.strat.isTimestepTheSame()
}

func (b *NodeBase) requireSelf() {
	if b.self == nil {
		panicf("NodeBase: Init(self) must be called before the node is used")
	}
}

func (b *NodeBase) requireIteration() {
	if b.it == nil {
		panicf("NodeBase: node is not attached to an Iteration")
	}
}
