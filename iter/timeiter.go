// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import (
	"container/heap"
	"math"
)

// Event is an immutable transform applied to the current iterand at a
// scheduled time. Implementations must not mutate x in place.
type Event interface {
	Apply(x Vector) Vector
}

// EventFunc adapts a plain function to Event.
type EventFunc func(x Vector) Vector

// Apply calls f(x).
func (f EventFunc) Apply(x Vector) Vector { return f(x) }

// Transform rewrites a solution pointwise: it receives the current
// solution as an interpolant plus one node's spatial coordinates and
// returns the transformed value at that node. Dividends, rebates and
// payoff resets are all of this shape.
type Transform func(v Interpolant, x []float64) float64

// NewTransformEvent wraps transform as an Event over domain: the incoming
// vector is interpolated, the transform is evaluated at every node, and a
// fresh vector is returned (the input is never mutated).
func NewTransformEvent(domain Domain, transform Transform) Event {
	factory := domain.DefaultInterpolantFactory()
	return EventFunc(func(x Vector) Vector {
		interp := factory.Make(x)
		out := make(Vector, domain.Size())
		for i := range out {
			out[i] = transform(interp, domain.Coordinates(i))
		}
		return out
	})
}

// StepSize supplies the Δt a TimeIteration takes at each outer step.
// Implementations that adapt to the iterand's actual change read the
// iteration's history through it and the previous step through prevDt.
type StepSize interface {
	// Step returns the next Δt, always > 0. prevDt is the Δt taken on the
	// previous call, or a non-positive placeholder on the first call.
	Step(it *TimeIteration, prevDt float64) float64
}

// ConstantStepSize is a StepSize returning the same Δt every call.
type ConstantStepSize float64

// Step returns the configured constant, ignoring it and prevDt.
func (c ConstantStepSize) Step(it *TimeIteration, prevDt float64) float64 {
	return float64(c)
}

// TargetedStepSize picks Δt so that the predicted relative change in the
// iterand, extrapolated from the change actually observed over the previous
// step, is close to Target: Δt grows or shrinks by the ratio of Target to
// the observed change, clamped to [Min, Max], falling back to Initial on
// the first call (when there is no previous change to extrapolate from).
type TargetedStepSize struct {
	Initial float64
	Target  float64
	Scale   float64
	Min     float64
	Max     float64
}

// Step implements StepSize.
func (s TargetedStepSize) Step(it *TimeIteration, prevDt float64) float64 {
	if prevDt <= 0 || it.history.size < 2 {
		return s.clamp(s.Initial)
	}
	change := relativeError(it.iterandAt(0), it.iterandAt(1), s.Scale)
	if change <= 0 {
		return s.clamp(s.Max)
	}
	return s.clamp(prevDt * s.Target / change)
}

func (s TargetedStepSize) clamp(dt float64) float64 {
	if dt < s.Min {
		return s.Min
	}
	if dt > s.Max {
		return s.Max
	}
	return dt
}

// timeEntry is one scheduled event in a TimeIteration's priority queue: its
// scheduled time, the event itself, and a stable insertion sequence number
// used to break ties between simultaneous events.
type timeEntry struct {
	seq   uint64
	t     float64
	event Event
}

// eventQueue is a container/heap.Interface over timeEntry, ordered so that
// Pop always returns the event nearest to implicitTime in the march
// direction. Simultaneous events are assumed to occur in insertion order
// in real time: the later-inserted (higher seq) event fires first when
// forward, the earlier-inserted fires first when reverse.
type eventQueue struct {
	entries []timeEntry
	forward bool
}

func (q *eventQueue) Len() int { return len(q.entries) }

func (q *eventQueue) Less(i, j int) bool {
	a, b := q.entries[i], q.entries[j]
	if a.t != b.t {
		if q.forward {
			return a.t < b.t
		}
		return a.t > b.t
	}
	if q.forward {
		return a.seq > b.seq
	}
	return a.seq < b.seq
}

func (q *eventQueue) Swap(i, j int) { q.entries[i], q.entries[j] = q.entries[j], q.entries[i] }

func (q *eventQueue) Push(x interface{}) { q.entries = append(q.entries, x.(timeEntry)) }

func (q *eventQueue) Pop() interface{} {
	n := len(q.entries)
	e := q.entries[n-1]
	q.entries = q.entries[:n-1]
	return e
}

func (q *eventQueue) clone() *eventQueue {
	c := &eventQueue{forward: q.forward, entries: make([]timeEntry, len(q.entries))}
	copy(c.entries, q.entries)
	return c
}

// order is the direction-dependent comparator: a is further along the
// march than b iff a > b when forward, a < b when reverse.
func order(a, b float64, forward bool) bool {
	if forward {
		return a > b
	}
	return a < b
}

// timeState is the per-run scratch TimeIteration.outerHead builds and
// threads through timestep/notDone/outerTail: a local copy of the scheduled
// events (so the original queue survives to be reused by a later Solve) plus
// the sentinel "null event" at terminalTime guaranteeing the march
// terminates there even with no events scheduled.
type timeState struct {
	queue         *eventQueue
	nextEventTime float64
}

// TimeIteration marches time forward or reverse from startTime/endTime,
// solving one linear system (or recursing into a child iteration) per
// timestep, with a priority queue of scheduled Events applied at exact
// times. It implements the stepper interface backing its embedded Iteration.
type TimeIteration struct {
	*Iteration

	forward    bool
	startTime  float64
	endTime    float64
	stepSize   StepSize
	events     *eventQueue
	nextSeq    uint64
	dt, dtPrev float64
}

const nullEventSeq = ^uint64(0)

// NewForwardTimeIteration builds a TimeIteration marching from startTime to
// endTime using stepSize for Δt.
func NewForwardTimeIteration(startTime, endTime float64, stepSize StepSize) *TimeIteration {
	return newTimeIteration(true, startTime, endTime, stepSize)
}

// NewReverseTimeIteration builds a TimeIteration marching from endTime down
// to startTime using stepSize for Δt.
func NewReverseTimeIteration(startTime, endTime float64, stepSize StepSize) *TimeIteration {
	return newTimeIteration(false, startTime, endTime, stepSize)
}

func newTimeIteration(forward bool, startTime, endTime float64, stepSize StepSize) *TimeIteration {
	if startTime < 0 {
		panicf("TimeIteration: startTime must be >= 0, got %v", startTime)
	}
	if startTime >= endTime {
		panicf("TimeIteration: startTime must be < endTime, got [%v,%v)", startTime, endTime)
	}
	t := &TimeIteration{
		forward:   forward,
		startTime: startTime,
		endTime:   endTime,
		stepSize:  stepSize,
		events:    &eventQueue{forward: forward},
		dt:        -1,
		dtPrev:    -1,
	}
	t.Iteration = newIteration(t)
	return t
}

// initialTime is startTime for a forward march, endTime for reverse.
func (t *TimeIteration) initialTime() float64 {
	if t.forward {
		return t.startTime
	}
	return t.endTime
}

// terminalTime is the endpoint opposite initialTime.
func (t *TimeIteration) terminalTime() float64 {
	if t.forward {
		return t.endTime
	}
	return t.startTime
}

// Add schedules event to fire at time at. at falling outside
// [startTime, endTime-Epsilon) or coinciding with the initial time is a
// contract violation: it panics rather than returning an error.
// The error return exists only to satisfy the documented Solve-adjacent
// external interface; a successful call always returns nil.
func (t *TimeIteration) Add(at float64, e Event) error {
	if at < t.startTime {
		panicf("TimeIteration.Add: time %v before startTime %v", at, t.startTime)
	}
	if at >= t.endTime-Epsilon {
		panicf("TimeIteration.Add: time %v at or past endTime %v", at, t.endTime)
	}
	if at == t.initialTime() {
		panicf("TimeIteration.Add: time %v coincides with the initial time", at)
	}
	heap.Push(t.events, timeEntry{seq: t.nextSeq, t: at, event: e})
	t.nextSeq++
	return nil
}

// AddTransform schedules a pointwise Transform over domain at time at,
// with the same preconditions as Add.
func (t *TimeIteration) AddTransform(at float64, domain Domain, transform Transform) error {
	return t.Add(at, NewTransformEvent(domain, transform))
}

func (t *TimeIteration) setTime(it *Iteration, time float64) {
	it.implicitTime = t.initialTime()
	t.dt = -1
	t.dtPrev = -1
}

func (t *TimeIteration) outerHead(it *Iteration) interface{} {
	queue := t.events.clone()
	heap.Push(queue, timeEntry{seq: nullEventSeq, t: t.terminalTime(), event: nil})
	st := &timeState{queue: queue}
	st.nextEventTime = queue.entries[0].t
	return st
}

func (t *TimeIteration) timestep(it *Iteration, state interface{}) {
	it.its = append(it.its, 0)
	st := state.(*timeState)
	t.dtPrev = t.dt
	t.dt = t.stepSize.Step(t, t.dtPrev)
	if t.dt <= 0 {
		panicf("TimeIteration: stepSize produced non-positive dt %v", t.dt)
	}
	direction := 1.0
	if !t.forward {
		direction = -1.0
	}
	next := it.implicitTime + direction*t.dt
	switch {
	case math.Abs(next-st.nextEventTime) < Epsilon:
		next = st.nextEventTime
	case order(next, st.nextEventTime, t.forward):
		next = st.nextEventTime
		t.dt = direction * (st.nextEventTime - it.implicitTime)
	}
	it.implicitTime = next
}

func (t *TimeIteration) notDone(it *Iteration, state interface{}) bool {
	st := state.(*timeState)
	direction := 1.0
	if !t.forward {
		direction = -1.0
	}
	return order(st.nextEventTime, it.implicitTime+direction*Epsilon, t.forward)
}

func (t *TimeIteration) outerTail(it *Iteration, state interface{}) bool {
	st := state.(*timeState)
	it.implicitTime = st.nextEventTime

	current := it.iterandAt(0)
	for st.queue.Len() > 0 && st.queue.entries[0].t == it.implicitTime {
		e := heap.Pop(st.queue).(timeEntry)
		if e.event != nil {
			current = e.event.Apply(current)
		}
	}
	it.fireAfterEvent()
	it.history.clear()
	it.history.push(it.implicitTime, current)

	if st.queue.Len() == 0 {
		return false
	}
	st.nextEventTime = st.queue.entries[0].t
	return order(t.terminalTime(), it.implicitTime, t.forward)
}

func (t *TimeIteration) isTimestepTheSame() bool { return t.dt == t.dtPrev }

func (t *TimeIteration) minimumLookback() int { return 1 }

func (t *TimeIteration) finalize(it *Iteration, state interface{}) error { return nil }
