/*
Package integral provides numeric integration of scalar functions.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package integral

import "math"

// Function is a scalar integrand f(t).
type Function func(t float64) float64

// Integrator integrates a scalar function over an interval [a,b].
type Integrator interface {
	Integrate(f Function, a, b float64) float64
}

// DefaultAccuracy is the target accuracy of integrators created with
// NewSimpson.
const DefaultAccuracy = 1e-6

// DefaultMaxDepth is the recursion bound of integrators created with
// NewSimpson.
const DefaultMaxDepth = 5

// Simpson is an adaptive Simpson integrator. It refines a coarse Simpson
// estimate by recursive interval splitting until the Richardson error
// estimate drops below the target accuracy, or the recursion bound is
// reached. Bounded recursion guarantees termination even for integrands
// where the error estimate never converges; the result then is a
// best-effort estimate.
//
// The zero value integrates with DefaultAccuracy and DefaultMaxDepth.
type Simpson struct {
	Accuracy float64
	MaxDepth int
}

// NewSimpson creates an adaptive Simpson integrator with default accuracy
// and recursion bound.
func NewSimpson() Simpson {
	return Simpson{Accuracy: DefaultAccuracy, MaxDepth: DefaultMaxDepth}
}

// Integrate computes ∫f over [a,b].
func (s Simpson) Integrate(f Function, a, b float64) float64 {
	eps := s.Accuracy
	if eps <= 0 {
		eps = DefaultAccuracy
	}
	depth := s.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	c := (a + b) / 2
	h := b - a
	fa := f(a)
	fb := f(b)
	fc := f(c)
	S := (h / 6) * (fa + 4*fc + fb)
	return aux(f, a, b, eps, S, fa, fb, fc, depth)
}

// One refinement step: split [a,b] at the midpoint, compare the refined
// estimate against the coarse one and either accept with the Richardson
// correction term (S2-S)/15 or recurse into both halves.
func aux(f Function, a, b, eps, S, fa, fb, fc float64, bottom int) float64 {
	c := (a + b) / 2
	h := b - a
	d := (a + c) / 2
	e := (c + b) / 2
	fd := f(d)
	fe := f(e)
	Sleft := (h / 12) * (fa + 4*fd + fc)
	Sright := (h / 12) * (fc + 4*fe + fb)
	S2 := Sleft + Sright

	if bottom <= 0 || math.Abs(S2-S) <= 15*eps {
		return S2 + (S2-S)/15
	}
	return aux(f, a, c, eps/2, Sleft, fa, fc, fd, bottom-1) +
		aux(f, c, b, eps/2, Sright, fc, fb, fe, bottom-1)
}
