// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pdesolve prices a European/American (digital or vanilla) call/put by
// marching the Black-Scholes equation backwards in time, printing a table
// of values over successive grid/timestep refinements together with the
// change between rows and the ratio of successive changes (4 indicates
// quadratic convergence).
package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/pdesolve/blackscholes"
	"github.com/cpmech/pdesolve/grid"
	"github.com/cpmech/pdesolve/iter"
	"github.com/cpmech/pdesolve/linsol"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	american := io.ArgToBool(0, false)
	put := io.ArgToBool(1, false)
	digital := io.ArgToBool(2, false)
	variable := io.ArgToBool(3, false)
	quadratic := io.ArgToBool(4, false)
	strike := io.ArgToFloat(5, 100.0)
	asset := io.ArgToFloat(6, 100.0)
	interest := io.ArgToFloat(7, 0.04)
	volatility := io.ArgToFloat(8, 0.2)
	dividends := io.ArgToFloat(9, 0.0)
	expiry := io.ArgToFloat(10, 1.0)
	steps := io.ArgToInt(11, 25)
	maxRefinement := io.ArgToInt(12, 5)

	if steps <= 0 {
		chk.Panic("the number of steps must be positive")
	}
	if maxRefinement < 0 {
		chk.Panic("the maximum level of refinement must be nonnegative")
	}
	if expiry <= 0 {
		chk.Panic("expiry time must be positive")
	}
	if asset <= 0 {
		chk.Panic("the initial stock price must be positive")
	}

	// message
	io.Pf("\n%v\n", io.ArgsTable(
		"American exercise", "american", american,
		"put (default is call)", "put", put,
		"digital payoff", "digital", digital,
		"variable-size timestepping", "variable", variable,
		"refine timesteps by 4 instead of 2", "quadratic", quadratic,
		"strike price", "strike", strike,
		"initial stock price", "asset", asset,
		"interest rate", "interest", interest,
		"volatility", "volatility", volatility,
		"dividend rate", "dividends", dividends,
		"expiry time", "expiry", expiry,
		"initial number of timesteps", "steps", steps,
		"maximum refinement level", "maxRefinement", maxRefinement,
	))

	// payoff
	var payoff iter.ScalarFunc
	switch {
	case digital && !put:
		payoff = blackscholes.DigitalCallPayoff(strike)
	case digital && put:
		payoff = blackscholes.DigitalPutPayoff(strike)
	case put:
		payoff = blackscholes.PutPayoff(strike)
	default:
		payoff = blackscholes.CallPayoff(strike)
	}

	// initial grid, clustered around the spot and the strike
	initialAxis := grid.SpecialAxis(asset).Union(grid.SpecialAxis(strike))

	const target = 1.0

	// table
	tab := tabwriter.NewWriter(os.Stdout, 8, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tab, "Nodes\tSteps\tMean Inner Iterations\tValue\tChange\tRatio\t\n")

	previousValue, previousChange := math.NaN(), math.NaN()
	factor := 1
	for ref := 0; ref <= maxRefinement; ref++ {

		g := grid.NewGrid1D(initialAxis.Refined(ref))

		// Black-Scholes operator (L in V_t = LV)
		bs := blackscholes.NewConstOperator(g, interest, volatility, dividends)

		// timestepping method
		dt := expiry / float64(steps) / float64(factor)
		var stepSize iter.StepSize = iter.ConstantStepSize(dt)
		if variable {
			stepSize = iter.TargetedStepSize{
				Initial: dt,
				Target:  target / float64(factor),
				Scale:   1,
				Min:     dt / 1e6,
				Max:     expiry,
			}
		}
		stepper := iter.NewReverseTimeIteration(0, expiry, stepSize)

		// time discretization method: Rannacher-smoothed Crank-Nicolson
		discretization := iter.NewRannacher(g, bs, 2, false)
		discretization.SetIteration(stepper.Iteration)

		// American-specific components; penalty method or not?
		var root iter.IterationNode = discretization
		var tolerance *iter.ToleranceIteration
		if american {
			penalty := blackscholes.NewPenaltyMethod(g, discretization, payoff)
			tolerance = iter.NewToleranceIteration(1e-6, 1)
			penalty.SetIteration(tolerance.Iteration)
			stepper.SetInnerIteration(tolerance.Iteration)
			root = penalty
		}

		// linear system solver: every matrix this wiring produces is
		// tridiagonal
		solver := linsol.NewTridiagonalSolver()

		// compute solution
		solution, err := iter.Solve(g, payoff, stepper.Iteration, root, solver)
		if err != nil {
			chk.Panic("solve failed at refinement %d: %v", ref, err)
		}

		// outer steps and average number of inner iterations
		outer := len(stepper.Iterations())
		inner := math.NaN()
		if american {
			its := tolerance.Iterations()
			total := 0
			for _, n := range its {
				total += n
			}
			inner = float64(total) / float64(len(its))
		}

		// solution at the asset price; linear interpolation is used to
		// get the value off the grid
		value := solution.At(asset)

		change := value - previousValue
		ratio := previousChange / change
		fmt.Fprintf(tab, "%d\t%d\t%.6f\t%.6e\t%.6e\t%.6f\t\n",
			g.Size(), outer, inner, value, change, ratio)

		previousChange = change
		previousValue = value

		factor *= 2
		if quadratic {
			factor *= 2
		}
	}
	if err := tab.Flush(); err != nil {
		chk.Panic("cannot flush table: %v", err)
	}
}
