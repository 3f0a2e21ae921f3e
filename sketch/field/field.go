// Package field holds the velocity function that drives every sample point.
package field

import (
	"errors"
	"fmt"
	"math"

	"fieldviz/sketch/expr"
	"fieldviz/sketch/vmath"
)

// ErrFixed is returned when reconfiguring a field that was built from Go code
// rather than from expressions.
var ErrFixed = errors.New("field is fixed")

// Func maps a position to a velocity.
type Func func(p vmath.Vec3) vmath.Vec3

// Zero is the constant zero field.
func Zero(vmath.Vec3) vmath.Vec3 { return vmath.Vec3{} }

// Planar lifts a 2D field into the z=0 plane.
func Planar(fn func(vmath.Vec2) vmath.Vec2) Func {
	return func(p vmath.Vec3) vmath.Vec3 { return fn(p.XY()).XY0() }
}

// Swirl is the analytic field of the planar sketch:
//
//	v = ( sin(|p| + cos(x)), cos(|p| + sin(x) + cos(x)) )
func Swirl(p vmath.Vec2) vmath.Vec2 {
	r := p.Abs()
	return vmath.V2(
		math.Sin(r+math.Cos(p.X)),
		math.Cos(r+(math.Sin(p.X)+math.Cos(p.X))),
	)
}

// Expressions are the per-axis source strings of a reconfigurable field.
type Expressions struct {
	VX, VY, VZ string
}

// Compile turns three scalar expressions into a field function. Errors name the
// failing axis and wrap the expr sentinel errors.
func Compile(e Expressions) (Func, error) {
	fx, err := expr.Compile(e.VX)
	if err != nil {
		return nil, fmt.Errorf("vx: %w", err)
	}
	fy, err := expr.Compile(e.VY)
	if err != nil {
		return nil, fmt.Errorf("vy: %w", err)
	}
	fz, err := expr.Compile(e.VZ)
	if err != nil {
		return nil, fmt.Errorf("vz: %w", err)
	}
	return func(p vmath.Vec3) vmath.Vec3 {
		return vmath.V3(fx(p), fy(p), fz(p))
	}, nil
}

// Evaluator owns the active field function.
type Evaluator struct {
	fn    Func
	exprs Expressions
	fixed bool
}

// NewFixed returns an evaluator for a hard-coded field. Reconfigure on it
// fails with ErrFixed; Set still replaces the function.
func NewFixed(fn Func) *Evaluator {
	if fn == nil {
		fn = Zero
	}
	return &Evaluator{fn: fn, fixed: true}
}

// NewExpr returns an evaluator compiled from e.
func NewExpr(e Expressions) (*Evaluator, error) {
	fn, err := Compile(e)
	if err != nil {
		return nil, err
	}
	return &Evaluator{fn: fn, exprs: e}, nil
}

// Evaluate returns the velocity at p.
func (ev *Evaluator) Evaluate(p vmath.Vec3) vmath.Vec3 { return ev.fn(p) }

// Fixed reports whether the evaluator rejects expression reconfiguration.
func (ev *Evaluator) Fixed() bool { return ev.fixed }

// Expressions returns the sources of the active field. It is empty for fixed
// fields.
func (ev *Evaluator) Expressions() Expressions { return ev.exprs }

// Reconfigure compiles the three axis expressions and swaps them in. On error
// the previous function stays active.
func (ev *Evaluator) Reconfigure(vx, vy, vz string) error {
	if ev.fixed {
		return ErrFixed
	}
	e := Expressions{VX: vx, VY: vy, VZ: vz}
	fn, err := Compile(e)
	if err != nil {
		return err
	}
	ev.fn = fn
	ev.exprs = e
	return nil
}

// Set replaces the field function wholesale.
func (ev *Evaluator) Set(fn Func) {
	if fn == nil {
		fn = Zero
	}
	ev.fn = fn
	ev.exprs = Expressions{}
}
