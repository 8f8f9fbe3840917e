/*
Package sweep generates moving frames along parametric curves and surfaces
swept from them.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sweep

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
	"github.com/ungerik/go3d/float64/mat3"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Frame is a local coordinate frame at a point of a curve.
type Frame struct {
	Origin   vec3.T
	Tangent  vec3.T
	Normal   vec3.T
	Binormal vec3.T
}

// Mat3 returns the frame axes as a matrix with columns tangent, normal,
// binormal.
func (fr Frame) Mat3() mat3.T {
	return mat3.T{fr.Tangent, fr.Normal, fr.Binormal}
}

// Field produces a frame for every parameter value of a curve.
type Field interface {
	At(t float64) Frame
}

// Frenet is a frame field deriving its frames from the first and second
// derivative of a curve: tangent T = C′, normal N = C′ × (C″ × C′), binormal
// B = C′ × C″, each normalized. Where a derivative vanishes, the respective
// axes stay zero.
//
// The curve is shared, not copied: callers must not mutate it while frames
// are being computed.
type Frenet struct {
	curve splines.ParametricCurve
}

// NewFrenet creates a Frenet frame field along a curve. A nil curve is
// substituted by the Null curve, yielding zero frames until a real curve is
// bound with SetCurve.
func NewFrenet(c splines.ParametricCurve) *Frenet {
	if c == nil {
		c = splines.Null{}
	}
	return &Frenet{curve: c}
}

// Curve returns the underlying curve.
func (f *Frenet) Curve() splines.ParametricCurve {
	return f.curve
}

// SetCurve rebinds the frame field to another curve.
func (f *Frenet) SetCurve(c splines.ParametricCurve) {
	if c == nil {
		c = splines.Null{}
	}
	f.curve = c
}

// At computes the Frenet frame at parameter t.
func (f *Frenet) At(t float64) Frame {
	d := f.curve.Derivative(t, 1)
	a := f.curve.Derivative(t, 2)

	fr := Frame{Origin: f.curve.Eval(t)}
	fr.Tangent = normalized(d)
	ad := vec3.Cross(&a, &d)
	fr.Normal = normalized(vec3.Cross(&d, &ad))
	fr.Binormal = normalized(vec3.Cross(&d, &a))
	return fr
}

// Normalize, but leave ≈0-length vectors zero instead of dividing by zero.
func normalized(v vec3.T) vec3.T {
	l := v.Length()
	if splines.Is0(l) {
		tracer().Debugf("degenerate frame axis, leaving zero")
		return vec3.Zero
	}
	return v.Scaled(1 / l)
}
