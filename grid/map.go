// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/pdesolve/iter"

// PointwiseMap samples a scalar function at every node of a domain,
// implementing iter.Map for callers using iter.SolveWithMap with a
// non-default interpolation scheme.
type PointwiseMap struct {
	Domain iter.Domain
}

// Apply implements iter.Map.
func (m PointwiseMap) Apply(f iter.ScalarFunc) iter.Vector {
	n := m.Domain.Size()
	v := make(iter.Vector, n)
	for i := 0; i < n; i++ {
		v[i] = f(m.Domain.Coordinates(i)...)
	}
	return v
}
