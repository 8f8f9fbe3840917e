/*
Package curve implements NURBS curves: spline state with knot-vector
lifecycle management, and rational B-spline evaluation of curve points,
derivatives and arc length.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"errors"
	"fmt"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
)

// tracer writes to trace with key 'curves'
func tracer() tracing.Trace {
	return tracing.Select("curves")
}

var (
	// ErrDegreeNegative indicates a negative curve degree.
	ErrDegreeNegative = errors.New("curve degree must not be negative")
	// ErrTooFewPoints indicates fewer control points than degree+1.
	ErrTooFewPoints = errors.New("curve has too few control points")
	// ErrKnotCount indicates a knot vector of the wrong length.
	ErrKnotCount = errors.New("knot vector length must be points + degree + 1")
	// ErrKnotOrder indicates a decreasing knot sequence.
	ErrKnotOrder = errors.New("knot vector must be non-decreasing")
	// ErrKnotMultiplicity indicates a knot repeated beyond the degree.
	ErrKnotMultiplicity = errors.New("knot multiplicity exceeds curve degree")
	// ErrPosition indicates a control point index outside the current range.
	ErrPosition = errors.New("control point position out of range")
)

// Spline holds the state of a spline curve: weighted control points, a knot
// vector, the degree, and the uniform/clamped mode flags. A uniform spline
// recomputes its knot vector whenever a control point is inserted, appended
// or erased; a non-uniform spline keeps its user-supplied knot vector
// untouched across point edits.
//
// The state is owned exclusively by its curve; accessors hand out copies.
type Spline struct {
	points  []splines.Point
	knots   KnotVector
	degree  int
	uniform bool
	clamped bool
}

// Degree returns the curve degree.
func (s *Spline) Degree() int {
	return s.degree
}

// SetDegree modifies the curve degree. The knot vector is not recomputed
// until the next control point mutation.
func (s *Spline) SetDegree(p int) {
	if p < 0 {
		panic("cannot set negative curve degree")
	}
	s.degree = p
}

// IsUniform is a predicate: does this spline manage its own knot vector?
func (s *Spline) IsUniform() bool {
	return s.uniform
}

// SetUniform toggles uniform mode. The knot vector is left untouched until
// the next control point mutation.
func (s *Spline) SetUniform(uniform bool) {
	s.uniform = uniform
}

// IsClamped is a predicate: is the curve clamped to its end points?
func (s *Spline) IsClamped() bool {
	return s.clamped
}

// SetClamped toggles clamped mode. The knot vector is left untouched until
// the next control point mutation.
func (s *Spline) SetClamped(clamped bool) {
	s.clamped = clamped
}

// N returns the number of control points.
func (s *Spline) N() int {
	return len(s.points)
}

// ControlPoints returns a copy of the control points.
func (s *Spline) ControlPoints() []splines.Point {
	return append([]splines.Point(nil), s.points...)
}

// SetControlPoints replaces all control points. The knot vector is not
// recomputed; only constructors and Insert/Append/Erase recompute knots.
func (s *Spline) SetControlPoints(points []splines.Point) {
	s.points = append([]splines.Point(nil), points...)
}

// KnotVector returns a copy of the current knot vector.
func (s *Spline) KnotVector() KnotVector {
	return s.knots.Clone()
}

// Insert inserts a control point before position i, 0 <= i <= N.
// A uniform spline recomputes its knot vector.
func (s *Spline) Insert(i int, p splines.Point) error {
	if i < 0 || i > len(s.points) {
		return fmt.Errorf("%w: %d", ErrPosition, i)
	}
	s.points = append(s.points, splines.Point{})
	copy(s.points[i+1:], s.points[i:])
	s.points[i] = p
	s.recomputeKnots()
	return nil
}

// Append adds a control point after the last one.
// A uniform spline recomputes its knot vector.
func (s *Spline) Append(p splines.Point) {
	s.points = append(s.points, p)
	s.recomputeKnots()
}

// Erase removes the control point at position i.
// A uniform spline recomputes its knot vector.
func (s *Spline) Erase(i int) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: %d", ErrPosition, i)
	}
	s.points = append(s.points[:i], s.points[i+1:]...)
	s.recomputeKnots()
	return nil
}

// Replace edits the control point at position i in place. This is a value
// edit: the knot vector is not recomputed.
func (s *Spline) Replace(i int, p splines.Point) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: %d", ErrPosition, i)
	}
	s.points[i] = p
	return nil
}

// ControlContour projects the control polygon onto the xy-plane. For planar
// curves the contour supports containment and clipping queries.
func (s *Spline) ControlContour() polyclip.Contour {
	contour := make(polyclip.Contour, 0, len(s.points))
	for _, p := range s.points {
		contour = append(contour, polyclip.Point{X: p.Vec3[0], Y: p.Vec3[1]})
	}
	return contour
}

// Validate checks the spline state: non-negative degree, at least degree+1
// control points, and a structurally valid knot vector.
func (s *Spline) Validate() error {
	if s.degree < 0 {
		return ErrDegreeNegative
	}
	if len(s.points) < s.degree+1 {
		return fmt.Errorf("%w: degree %d needs %d points, got %d",
			ErrTooFewPoints, s.degree, s.degree+1, len(s.points))
	}
	return s.knots.Validate(len(s.points), s.degree)
}

// If non-uniform, the user defines the knots.
func (s *Spline) recomputeKnots() {
	if !s.uniform {
		return
	}
	s.knots = UniformKnots(len(s.points), s.degree, s.clamped)
	tracer().Debugf("recomputed uniform knot vector, %d knots", len(s.knots))
}
