// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import "github.com/cpmech/gosl/fun"

// controllableValue is the unexported interface behind Controllable's four
// variants (Constant, SpaceTimeFunc, SpaceFunc, Control): a closed sum
// type expressed as an interface with only package-private implementations.
type controllableValue interface {
	value(t float64, x []float64) float64
	isConstantInTime() bool
	isControllable() bool
	setInput(v Vector)
}

// Controllable is a coefficient that may be a constant, a pure function of
// space, a pure function of space and time, or a control (an interpolant
// rebuilt from an externally supplied Vector). Exactly one of the New*
// constructors should be used to build one; the zero value is not usable.
type Controllable struct {
	v controllableValue
}

// NewConstant builds a Controllable that always returns c.
func NewConstant(c float64) *Controllable {
	return &Controllable{v: constantValue{c: c}}
}

// NewSpaceTimeFunc builds a Controllable wrapping f, called with both time
// and space coordinates.
func NewSpaceTimeFunc(f fun.Func) *Controllable {
	return &Controllable{v: spaceTimeValue{f: f}}
}

// NewSpaceFunc builds a Controllable wrapping f, called with space
// coordinates only (constant in time).
func NewSpaceFunc(f fun.Func) *Controllable {
	return &Controllable{v: spaceValue{f: f}}
}

// NewControl builds a Controllable whose value comes from an interpolant
// rebuilt from the most recent SetInput call, via factory.
func NewControl(factory InterpolantFactory) *Controllable {
	return &Controllable{v: &controlValue{factory: factory}}
}

// Value returns the coefficient's value at time t, spatial coordinate x.
func (c *Controllable) Value(t float64, x []float64) float64 {
	return c.v.value(t, x)
}

// IsConstantInTime reports whether Value is independent of t.
func (c *Controllable) IsConstantInTime() bool {
	return c.v.isConstantInTime()
}

// IsControllable reports whether this is a control (i.e. SetInput has an
// effect).
func (c *Controllable) IsControllable() bool {
	return c.v.isControllable()
}

// SetInput rebuilds the control's interpolant from v. A no-op on every
// variant except Control.
func (c *Controllable) SetInput(v Vector) {
	c.v.setInput(v)
}

type constantValue struct{ c float64 }

func (k constantValue) value(t float64, x []float64) float64 { return k.c }
func (k constantValue) isConstantInTime() bool                { return true }
func (k constantValue) isControllable() bool                  { return false }
func (k constantValue) setInput(v Vector)                     {}

type spaceTimeValue struct{ f fun.Func }

func (s spaceTimeValue) value(t float64, x []float64) float64 { return s.f.F(t, x) }
func (s spaceTimeValue) isConstantInTime() bool                { return false }
func (s spaceTimeValue) isControllable() bool                  { return false }
func (s spaceTimeValue) setInput(v Vector)                     {}

type spaceValue struct{ f fun.Func }

func (s spaceValue) value(t float64, x []float64) float64 { return s.f.F(0, x) }
func (s spaceValue) isConstantInTime() bool                { return true }
func (s spaceValue) isControllable() bool                  { return false }
func (s spaceValue) setInput(v Vector)                     {}

type controlValue struct {
	factory     InterpolantFactory
	interpolant Interpolant
}

func (c *controlValue) value(t float64, x []float64) float64 {
	if c.interpolant == nil {
		panicf("Controllable: control read before SetInput was called")
	}
	return c.interpolant.At(x...)
}

func (c *controlValue) isConstantInTime() bool { return false }
func (c *controlValue) isControllable() bool   { return true }

func (c *controlValue) setInput(v Vector) {
	c.interpolant = c.factory.Make(v)
}

// ControlledLinearSystem is a LinearSystem owning a set of registered
// Controllables. RegisterControl keeps only Controllables that report
// IsControllable, so SetInputs's dimension matches only the genuinely
// controllable coefficients.
type ControlledLinearSystem struct {
	controls []*Controllable
}

// RegisterControl adds c to the set SetInputs dispatches to, if and only if
// c.IsControllable().
func (s *ControlledLinearSystem) RegisterControl(c *Controllable) {
	if c.IsControllable() {
		s.controls = append(s.controls, c)
	}
}

// ControlDimension returns the number of registered controls.
func (s *ControlledLinearSystem) ControlDimension() int {
	return len(s.controls)
}

// SetInputs dispatches each of vs to its corresponding registered control,
// in registration order. len(vs) must equal ControlDimension().
func (s *ControlledLinearSystem) SetInputs(vs ...Vector) {
	if len(vs) != len(s.controls) {
		panicf("ControlledLinearSystem.SetInputs: got %d inputs, want %d", len(vs), len(s.controls))
	}
	for i, v := range vs {
		s.controls[i].SetInput(v)
	}
}
