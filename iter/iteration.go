// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

// stepper supplies the five hooks that differ between kinds of iteration
// (tolerance vs. time) around one shared loop skeleton, driven by a single
// method, Iteration.run.
//
// outerHead is called once, before the loop begins, and may return an
// opaque per-run state threaded through the rest of the hooks. outerTail
// is called after the inner timestep loop settles and reports whether the
// whole outer block (nextEventTime recompute, inner loop, outerTail again)
// should repeat; a stepper with no outer/inner distinction (ToleranceIteration)
// returns false unconditionally, so the loop runs exactly once.
//
// setTime and timestep also own pushing a new entry onto Iteration.its:
// ToleranceIteration pushes once in setTime, so every inner pass of one run
// accumulates into a single entry (one call = one converged answer).
// TimeIteration pushes in timestep, once per actual Δt advance, since each
// advance is its own step worth reporting separately.
type stepper interface {
	setTime(it *Iteration, time float64)
	outerHead(it *Iteration) interface{}
	timestep(it *Iteration, state interface{})
	notDone(it *Iteration, state interface{}) bool
	outerTail(it *Iteration, state interface{}) (repeat bool)
	isTimestepTheSame() bool
	minimumLookback() int

	// finalize runs once the loop has settled, after the last history
	// push, and may turn settling-without-converging into an error
	// (ToleranceIteration's ErrToleranceExceeded). TimeIteration's
	// finalize is a no-op.
	finalize(it *Iteration, state interface{}) error
}

// Iteration is the shared engine: a fixed-capacity history of (time,
// iterand) pairs, an ordered list of attached IterationNodes, an optional
// child iteration to recurse into, and a per-run count of inner iterations
// taken per outer step. Concrete behaviour (ToleranceIteration,
// TimeIteration) is supplied by a stepper and exposed to callers by
// embedding *Iteration.
type Iteration struct {
	strat        stepper
	child        *Iteration
	nodes        []IterationNode
	history      *circularBuffer
	implicitTime float64
	its          []int
}

func newIteration(strat stepper) *Iteration {
	return &Iteration{strat: strat}
}

// SetInnerIteration makes inner the child iteration run once per timestep
// of it, in place of solving a linear system directly. Passing nil detaches
// any existing child, reverting to leaf (linear-system-solving) behaviour.
func (it *Iteration) SetInnerIteration(inner *Iteration) {
	it.child = inner
}

// Iterations returns, for each outer step taken during the most recent run,
// the number of inner iterations it took to settle. Its length equals the
// number of outer steps; for a ToleranceIteration used standalone it has
// exactly one entry.
func (it *Iteration) Iterations() []int {
	out := make([]int, len(it.its))
	copy(out, it.its)
	return out
}

func (it *Iteration) attach(n IterationNode) {
	it.nodes = append(it.nodes, n)
}

func (it *Iteration) detach(n IterationNode) {
	for i, existing := range it.nodes {
		if existing == n {
			it.nodes = append(it.nodes[:i], it.nodes[i+1:]...)
			return
		}
	}
}

func (it *Iteration) clearNodes() {
	for _, n := range it.nodes {
		n.Clear()
	}
}

func (it *Iteration) fireAfterEvent() {
	for _, n := range it.nodes {
		n.OnAfterEvent()
	}
}

func (it *Iteration) startNodes() {
	for _, n := range it.nodes {
		n.OnIterationStart()
	}
}

func (it *Iteration) endNodes() {
	for i := len(it.nodes) - 1; i >= 0; i-- {
		it.nodes[i].OnIterationEnd()
	}
}

// timeAt returns the time of the k-th most recent history entry.
func (it *Iteration) timeAt(k int) float64 {
	return it.history.get(k).t
}

// iterandAt returns the iterand of the k-th most recent history entry.
func (it *Iteration) iterandAt(k int) Vector {
	return it.history.get(k).x
}

// allocateHistories walks the iteration chain from it down through every
// child, sizing each level's history buffer to the maximum lookback that
// level's stepper and attached nodes require, and resetting its outer-step
// counters. Called once per Solve, before the first run.
func (it *Iteration) allocateHistories() {
	for level := it; level != nil; level = level.child {
		lookback := level.strat.minimumLookback()
		for _, n := range level.nodes {
			if nl := n.MinimumLookback(); nl > lookback {
				lookback = nl
			}
		}
		level.history = newCircularBuffer(lookback)
		level.its = level.its[:0]
	}
}

// run drives the shared loop skeleton: establish implicitTime via setTime,
// reset per-run state, then repeatedly timestep (recursing into child, or
// solving root directly) until notDone reports convergence, invoking
// outerTail after each settled inner loop and repeating the whole block
// while it reports true.
func (it *Iteration) run(initial Vector, root IterationNode, solver LinearSolver, time float64, initialized bool) (Vector, error) {
	it.strat.setTime(it, time)
	it.clearNodes()
	it.history.clear()
	it.history.push(it.implicitTime, initial)

	state := it.strat.outerHead(it)
	for {
		for {
			it.strat.timestep(it, state)
			it.startNodes()

			var next Vector
			var err error
			if it.child != nil {
				next, err = it.child.run(it.iterandAt(0), root, solver, it.implicitTime, initialized)
			} else {
				next, err = it.solveLinearSystem(root, solver, initialized)
			}
			if err != nil {
				return nil, err
			}

			it.history.push(it.implicitTime, next)
			initialized = true
			it.its[len(it.its)-1]++
			it.endNodes()

			if !it.strat.notDone(it, state) {
				break
			}
		}
		if !it.strat.outerTail(it, state) {
			break
		}
	}
	if err := it.strat.finalize(it, state); err != nil {
		return nil, err
	}
	return it.iterandAt(0), nil
}

// solveLinearSystem solves root.A(t)*x = root.B(t) at the current
// implicitTime, reusing the solver's prior factorization when initialized
// is true and root.IsATheSame() holds.
func (it *Iteration) solveLinearSystem(root IterationNode, solver LinearSolver, initialized bool) (Vector, error) {
	t := it.implicitTime
	if !initialized || !root.IsATheSame() {
		if err := solver.Initialize(root.A(t)); err != nil {
			return nil, wrapErr(err, "solveLinearSystem: initialize")
		}
		if err := solver.Factorize(); err != nil {
			return nil, wrapErr(err, "solveLinearSystem: factorize")
		}
	}
	x, err := solver.Solve(root.B(t), it.iterandAt(0))
	if err != nil {
		return nil, wrapErr(err, "solveLinearSystem: solve")
	}
	return x, nil
}
