// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import "math"

// relativeError computes max_i |a_i - b_i| / max(scale, |a_i|, |b_i|), the
// fixed-point convergence measure ToleranceIteration tests every inner
// step against. relativeError(a, a, s) is always 0.
func relativeError(a, b Vector, scale float64) float64 {
	if len(a) != len(b) {
		panicf("relativeError: mismatched sizes %d != %d", len(a), len(b))
	}
	worst := 0.0
	for i := range a {
		denom := math.Max(scale, math.Max(math.Abs(a[i]), math.Abs(b[i])))
		e := math.Abs(a[i]-b[i]) / denom
		if e > worst {
			worst = e
		}
	}
	return worst
}

// ToleranceIteration is a fixed-point loop: it resolves the same linear
// system (or recurses into a child iteration) repeatedly at a single,
// externally supplied time until two successive iterands agree within
// Tolerance under relativeError, always taking at least two inner steps.
// A zero-valued MaxIterations means no cap; otherwise exceeding it without
// converging returns ErrToleranceExceeded.
type ToleranceIteration struct {
	*Iteration
	Tolerance     float64
	Scale         float64
	MaxIterations int
}

// NewToleranceIteration builds a tolerance iteration converging to the
// given tolerance, using scale as relativeError's denominator floor.
func NewToleranceIteration(tolerance, scale float64) *ToleranceIteration {
	if tolerance <= 0 {
		panicf("NewToleranceIteration: tolerance must be > 0, got %v", tolerance)
	}
	if scale <= 0 {
		panicf("NewToleranceIteration: scale must be > 0, got %v", scale)
	}
	t := &ToleranceIteration{Tolerance: tolerance, Scale: scale}
	t.Iteration = newIteration(t)
	return t
}

func (t *ToleranceIteration) setTime(it *Iteration, time float64) {
	it.implicitTime = time
	it.its = append(it.its, 0)
}

func (t *ToleranceIteration) outerHead(it *Iteration) interface{} {
	return nil
}

func (t *ToleranceIteration) timestep(it *Iteration, state interface{}) {}

func (t *ToleranceIteration) notDone(it *Iteration, state interface{}) bool {
	n := it.its[len(it.its)-1]
	if t.MaxIterations > 0 && n >= t.MaxIterations {
		return false
	}
	// The loop always runs at least twice: after a single pass the only
	// comparison available is against the seed iterand, which has not been
	// produced by the fixed point being sought.
	if n < 2 {
		return true
	}
	return relativeError(it.iterandAt(0), it.iterandAt(1), t.Scale) > t.Tolerance
}

func (t *ToleranceIteration) outerTail(it *Iteration, state interface{}) bool {
	return false
}

func (t *ToleranceIteration) isTimestepTheSame() bool { return true }

func (t *ToleranceIteration) minimumLookback() int { return 2 }

// finalize surfaces ErrToleranceExceeded when notDone cut the loop short
// because MaxIterations was hit, rather than because relativeError actually
// settled below Tolerance. Implemented as the stepper's finalize hook (not
// an override of Iteration.run) since a ToleranceIteration used as a child
// is driven through its *Iteration field by the parent's loop skeleton,
// which only ever calls run on the concrete *Iteration type: only methods
// reached through the stepper interface (this one included) are guaranteed
// to dispatch to ToleranceIteration's own implementation.
func (t *ToleranceIteration) finalize(it *Iteration, state interface{}) error {
	if t.MaxIterations <= 0 {
		return nil
	}
	n := it.its[len(it.its)-1]
	if n >= t.MaxIterations && relativeError(it.iterandAt(0), it.iterandAt(1), t.Scale) > t.Tolerance {
		return ErrToleranceExceeded
	}
	return nil
}
