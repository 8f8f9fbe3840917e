package splines

import (
	"github.com/npillmayer/splines/integral"
	"github.com/ungerik/go3d/float64/vec3"
)

// === Parametric Curves =====================================================

// ParametricCurve is a capability interface for curves parametrized by a
// scalar. Results are Euclidean coordinates; rational curves perform their
// homogeneous projection internally.
//
// Implementations are not safe for mutation concurrent with evaluation:
// callers must not modify a curve while an evaluation on it is in flight.
type ParametricCurve interface {
	// Eval computes the curve point C(t).
	Eval(t float64) vec3.T
	// Derivative computes the k-th derivative C⁽ᵏ⁾(t). Order 0 is the
	// curve point itself.
	Derivative(t float64, k int) vec3.T
}

// Null is a degenerate curve: it evaluates to the zero point everywhere,
// with zero derivatives of every order. It serves as a safe default wherever
// a curve has not been bound yet.
type Null struct{}

// Eval returns the zero point.
func (Null) Eval(t float64) vec3.T {
	return vec3.Zero
}

// Derivative returns the zero vector.
func (Null) Derivative(t float64, k int) vec3.T {
	return vec3.Zero
}

// ArcLength computes the arc length of curve c between parameters a and b by
// integrating the norm of the first derivative with the supplied integrator.
func ArcLength(c ParametricCurve, a, b float64, integ integral.Integrator) float64 {
	speed := func(t float64) float64 {
		v := c.Derivative(t, 1)
		return v.Length()
	}
	return integ.Integrate(speed, a, b)
}

// Length computes the arc length of curve c between parameters a and b with
// the default adaptive Simpson integrator (accuracy 1e-6, recursion depth 5).
func Length(c ParametricCurve, a, b float64) float64 {
	return ArcLength(c, a, b, integral.NewSimpson())
}
