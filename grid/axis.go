// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid builds 1-D rectilinear domains and piecewise-linear
// interpolants over them, implementing the iter.Domain family of
// collaborator interfaces.
package grid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Axis holds the strictly increasing node coordinates of one spatial
// dimension.
type Axis []float64

// specialNodes is a canonical axis for option-pricing problems: nodes
// cluster around 1 (the normalised strike/spot) and thin out towards the
// far field. SpecialAxis scales it by a centre value.
var specialNodes = []float64{
	0.00, 0.10, 0.20, 0.30, 0.40, 0.50, 0.60, 0.70,
	0.75, 0.80,
	0.84, 0.88, 0.92,
	0.94, 0.96, 0.98, 1.00, 1.02, 1.04, 1.06, 1.08, 1.10,
	1.14, 1.18,
	1.23,
	1.30, 1.40, 1.50,
	1.75,
	2.25,
	3.00,
	7.50,
	20.00,
	100.00,
}

// NewAxis builds an Axis from the given coordinates, sorting them and
// removing duplicates. At least two distinct nodes are required.
func NewAxis(nodes ...float64) Axis {
	c := make([]float64, len(nodes))
	copy(c, nodes)
	sort.Float64s(c)
	a := c[:0]
	for i, v := range c {
		if i == 0 || v != a[len(a)-1] {
			a = append(a, v)
		}
	}
	if len(a) < 2 {
		chk.Panic("grid.NewAxis: need at least 2 distinct nodes, got %d", len(a))
	}
	return Axis(a)
}

// UniformAxis builds an Axis of n equally spaced nodes spanning [lo, hi].
func UniformAxis(lo, hi float64, n int) Axis {
	if n < 2 {
		chk.Panic("grid.UniformAxis: need at least 2 nodes, got %d", n)
	}
	if lo >= hi {
		chk.Panic("grid.UniformAxis: lo must be < hi, got [%v,%v]", lo, hi)
	}
	return Axis(utl.LinSpace(lo, hi, n))
}

// SpecialAxis builds the canonical option-pricing axis scaled so its
// cluster of nodes sits around centre.
func SpecialAxis(centre float64) Axis {
	if centre <= 0 {
		chk.Panic("grid.SpecialAxis: centre must be > 0, got %v", centre)
	}
	nodes := make([]float64, len(specialNodes))
	for i, v := range specialNodes {
		nodes[i] = centre * v
	}
	return NewAxis(nodes...)
}

// Union merges the nodes of a and b into a single Axis.
func (a Axis) Union(b Axis) Axis {
	nodes := make([]float64, 0, len(a)+len(b))
	nodes = append(nodes, a...)
	nodes = append(nodes, b...)
	return NewAxis(nodes...)
}

// Refined returns a copy of a with times rounds of midpoint insertion
// applied; each round doubles the number of intervals.
func (a Axis) Refined(times int) Axis {
	if times < 0 {
		chk.Panic("grid.Axis.Refined: times must be >= 0, got %d", times)
	}
	out := a
	for r := 0; r < times; r++ {
		refined := make([]float64, 0, 2*len(out)-1)
		for i := 0; i < len(out)-1; i++ {
			refined = append(refined, out[i], (out[i]+out[i+1])/2)
		}
		refined = append(refined, out[len(out)-1])
		out = Axis(refined)
	}
	return out
}

// search returns the index i of the largest node with a[i] < x (0 when no
// node lies below x), clamped to [0, len(a)-2] so a caller can always
// interpolate on [i, i+1]. At an interior node x == a[k] it returns k-1.
func (a Axis) search(x float64) int {
	i := sort.SearchFloat64s(a, x)
	if i > 0 {
		i--
	}
	if i > len(a)-2 {
		i = len(a) - 2
	}
	return i
}
