package curve

import (
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/integral"
	"github.com/ungerik/go3d/float64/vec3"
)

// NURBS is a non-uniform rational B-spline curve. It implements
// splines.ParametricCurve over the embedded Spline state, with the
// evaluation and differentiation algorithms of The NURBS Book
// (Piegl & Tiller, Springer 1997).
type NURBS struct {
	Spline
}

var _ splines.ParametricCurve = (*NURBS)(nil)

// Empty creates a uniform clamped curve without control points, to be built
// incrementally with Append or Insert. Default degree is 3.
func Empty(degree int) *NURBS {
	if degree < 0 {
		panic("cannot create curve of negative degree")
	}
	c := &NURBS{Spline{
		degree:  degree,
		uniform: true,
		clamped: true,
	}}
	c.recomputeKnots()
	return c
}

// New creates a uniform clamped curve from a full set of control points.
// It requires at least degree+1 points.
func New(points []splines.Point, degree int) (*NURBS, error) {
	c := &NURBS{Spline{
		points:  append([]splines.Point(nil), points...),
		degree:  degree,
		uniform: true,
		clamped: true,
	}}
	if degree < 0 {
		return nil, ErrDegreeNegative
	}
	c.recomputeKnots()
	if err := c.Validate(); err != nil {
		tracer().Errorf("invalid curve: %v", err)
		return nil, err
	}
	return c, nil
}

// NewWithKnots creates a clamped curve with a user-supplied knot vector.
// This disables uniform mode: the knots stay untouched across point edits.
// The knot vector must be non-decreasing and hold len(points)+degree+1
// entries.
func NewWithKnots(points []splines.Point, knots KnotVector, degree int) (*NURBS, error) {
	c := &NURBS{Spline{
		points:  append([]splines.Point(nil), points...),
		knots:   knots.Clone(),
		degree:  degree,
		uniform: false,
		clamped: true,
	}}
	if degree < 0 {
		return nil, ErrDegreeNegative
	}
	if err := c.Validate(); err != nil {
		tracer().Errorf("invalid curve: %v", err)
		return nil, err
	}
	return c, nil
}

// Clone returns a deep copy of the curve.
func (c *NURBS) Clone() *NURBS {
	return &NURBS{Spline{
		points:  append([]splines.Point(nil), c.points...),
		knots:   c.knots.Clone(),
		degree:  c.degree,
		uniform: c.uniform,
		clamped: c.clamped,
	}}
}

// Eval computes the curve point C(t). Out-of-range parameters are clamped
// into the knot range for clamped curves and wrapped periodically otherwise.
// A degenerate curve (fewer than degree+1 control points, or a knot vector
// too short for the current points) evaluates to the zero point.
func (c *NURBS) Eval(t float64) vec3.T {
	p := c.degree
	n := len(c.points) - 1
	if c.degenerate() {
		return vec3.Zero
	}
	u := c.adjustParameter(t)
	return curvePoint(n, p, c.knots, c.points, u)
}

// Derivative computes the k-th derivative C⁽ᵏ⁾(t). Order 0 is the curve
// point itself; orders beyond the curve degree are the zero vector, as are
// derivatives of a degenerate curve. Derivatives are taken of the
// coordinate B-spline: rational weights do not enter differentiation.
func (c *NURBS) Derivative(t float64, k int) vec3.T {
	p := c.degree
	n := len(c.points) - 1
	if k < 0 || c.degenerate() {
		return vec3.Zero
	}
	u := c.adjustParameter(t)
	ck := curveDerivs(n, p, c.knots, c.points, u, k)
	return ck[k]
}

// ArcLength computes the arc length between parameters a and b with the
// default adaptive Simpson integrator.
func (c *NURBS) ArcLength(a, b float64) float64 {
	return splines.Length(c, a, b)
}

// ArcLengthWith computes the arc length between parameters a and b with a
// caller-supplied integrator.
func (c *NURBS) ArcLengthWith(a, b float64, integ integral.Integrator) float64 {
	return splines.ArcLength(c, a, b, integ)
}

// Length computes the total arc length over the whole knot range.
func (c *NURBS) Length() float64 {
	min, max := c.knots.Domain()
	return c.ArcLength(min, max)
}

// A curve cannot be evaluated while it has fewer control points than
// degree+1, or while a stale knot vector is shorter than points+degree+1.
func (c *NURBS) degenerate() bool {
	if len(c.points) < c.degree+1 {
		return true
	}
	return len(c.knots) < len(c.points)+c.degree+1
}

// adjustParameter keeps u inside the knot range: clamped curves clamp,
// open curves wrap periodically (the curve is treated as cyclic).
func (c *NURBS) adjustParameter(u float64) float64 {
	min, max := c.knots.Domain()
	if c.clamped {
		if u < min {
			u = min
		}
		if u > max {
			u = max
		}
		return u
	}
	total := max - min
	if splines.Is0(total) {
		return min
	}
	for u < min {
		u += total
	}
	for u >= max {
		u -= total
	}
	return u
}

// basisFuns computes the p+1 non-vanishing basis functions at u on span i,
// by the Cox–de Boor triangular recurrence. The values sum to 1.
//
// See algorithm A2.2, page 70, The NURBS Book.
func basisFuns(i int, u float64, p int, U KnotVector) []float64 {
	N := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)

	N[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - U[i+1-j]
		right[j] = U[i+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			temp := N[r] / (right[r+1] + left[j-r])
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return N
}

// curvePoint evaluates the rational curve at u: the control points are
// accumulated in homogeneous coordinates, weighted by their basis function
// values, and projected back by dividing through the accumulated weight.
//
// See algorithm A4.1, page 124, The NURBS Book.
func curvePoint(n, p int, U KnotVector, pts []splines.Point, u float64) vec3.T {
	span := U.Span(n, p, u)
	N := basisFuns(span, u, p, U)

	var cw vec3.T
	var w float64
	for j := 0; j <= p; j++ {
		pt := pts[span-p+j]
		scaled := pt.Vec3.Scaled(pt.W * N[j])
		cw.Add(&scaled)
		w += pt.W * N[j]
	}
	return splines.Point{Vec3: cw, W: w}.Dehomogenized()
}

// A flat rows×cols table of basis function derivatives.
type dersTable struct {
	cols int
	data []float64
}

func newDersTable(rows, cols int) *dersTable {
	return &dersTable{cols: cols, data: make([]float64, rows*cols)}
}

func (m *dersTable) at(i, j int) float64 {
	return m.data[i*m.cols+j]
}

func (m *dersTable) set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// dersBasisFuns computes the non-vanishing basis functions and their
// derivatives up to order n at u on span i, into a table with ders[k][j]
// holding the k-th derivative of basis function j. Row 0 holds the basis
// function values themselves.
//
// See algorithm A2.3, page 72, The NURBS Book.
func dersBasisFuns(i int, u float64, p, n int, U KnotVector) *dersTable {
	ndu := newDersTable(p+1, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)

	ndu.set(0, 0, 1)
	for j := 1; j <= p; j++ {
		left[j] = u - U[i+1-j]
		right[j] = U[i+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			// Lower triangle: knot differences
			ndu.set(j, r, right[r+1]+left[j-r])
			temp := ndu.at(r, j-1) / ndu.at(j, r)
			// Upper triangle: basis function values
			ndu.set(r, j, saved+right[r+1]*temp)
			saved = left[j-r] * temp
		}
		ndu.set(j, j, saved)
	}

	ders := newDersTable(n+1, p+1)
	for j := 0; j <= p; j++ {
		ders.set(0, j, ndu.at(j, p))
	}

	// Compute the derivatives, using two alternating rows of accumulator a.
	a := newDersTable(2, p+1)
	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a.set(0, 0, 1)
		for k := 1; k <= n; k++ {
			d := 0.0
			rk := r - k
			pk := p - k
			if r >= k {
				a.set(s2, 0, a.at(s1, 0)/ndu.at(pk+1, rk))
				d = a.at(s2, 0) * ndu.at(rk, pk)
			}
			var j1, j2 int
			if rk >= -1 {
				j1 = 1
			} else {
				j1 = -rk
			}
			if r-1 <= pk {
				j2 = k - 1
			} else {
				j2 = p - r
			}
			for j := j1; j <= j2; j++ {
				a.set(s2, j, (a.at(s1, j)-a.at(s1, j-1))/ndu.at(pk+1, rk+j))
				d += a.at(s2, j) * ndu.at(rk+j, pk)
			}
			if r <= pk {
				a.set(s2, k, -a.at(s1, k-1)/ndu.at(pk+1, r))
				d += a.at(s2, k) * ndu.at(r, pk)
			}
			ders.set(k, r, d)
			s1, s2 = s2, s1
		}
	}

	// Multiply through by the falling factorial p·(p-1)·…·(p-k+1).
	factor := float64(p)
	for k := 1; k <= n; k++ {
		for j := 0; j <= p; j++ {
			ders.set(k, j, ders.at(k, j)*factor)
		}
		factor *= float64(p - k)
	}
	return ders
}

// curveDerivs computes the curve derivatives C⁽⁰⁾(u)…C⁽ᵈ⁾(u). Orders beyond
// min(d, p) stay zero: a curve of degree p has no higher derivatives.
//
// See algorithm A3.2, page 93, The NURBS Book.
func curveDerivs(n, p int, U KnotVector, pts []splines.Point, u float64, d int) []vec3.T {
	ck := make([]vec3.T, d+1)
	du := d
	if p < du {
		du = p
	}
	span := U.Span(n, p, u)
	ders := dersBasisFuns(span, u, p, du, U)
	for k := 0; k <= du; k++ {
		for j := 0; j <= p; j++ {
			scaled := pts[span-p+j].Vec3.Scaled(ders.at(k, j))
			ck[k].Add(&scaled)
		}
	}
	return ck
}
