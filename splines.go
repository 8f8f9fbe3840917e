/*
Package splines implements weighted control points, parametric curves,
and arc-length integration for spline geometry.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package splines

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}
