// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blackscholes

import (
	"math"

	"github.com/cpmech/pdesolve/iter"
)

// CallPayoff returns max(S - strike, 0).
func CallPayoff(strike float64) iter.ScalarFunc {
	return func(x ...float64) float64 {
		return math.Max(x[0]-strike, 0)
	}
}

// PutPayoff returns max(strike - S, 0).
func PutPayoff(strike float64) iter.ScalarFunc {
	return func(x ...float64) float64 {
		return math.Max(strike-x[0], 0)
	}
}

// DigitalCallPayoff returns 1 if S > strike, else 0.
func DigitalCallPayoff(strike float64) iter.ScalarFunc {
	return func(x ...float64) float64 {
		if x[0] > strike {
			return 1
		}
		return 0
	}
}

// DigitalPutPayoff returns 1 if S < strike, else 0.
func DigitalPutPayoff(strike float64) iter.ScalarFunc {
	return func(x ...float64) float64 {
		if x[0] < strike {
			return 1
		}
		return 0
	}
}
