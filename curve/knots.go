package curve

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/splines"
)

// === Knot Vectors ==========================================================

// KnotVector is a non-decreasing sequence of parameter values. For a spline
// with numPoints control points of degree p, a valid knot vector has
// numPoints+p+1 entries.
type KnotVector []float64

// UniformKnots computes an evenly spaced knot vector for numPoints control
// points of the given degree. In clamped mode the first and last knot are
// repeated degree+1 times, with the interior knots evenly spaced:
//
//	U[0..p]                 = 0
//	U[p+1..numPoints-1]     = (i-p) / (numPoints-p)
//	U[numPoints..numPoints+p] = 1
//
// In open mode all knots are evenly spaced over [0,1] with no repetition.
func UniformKnots(numPoints, degree int, clamped bool) KnotVector {
	numKnots := numPoints + degree + 1
	n := numPoints - degree
	U := make(KnotVector, 0, numKnots)
	if clamped {
		i := 0
		for ; i <= degree; i++ {
			U = append(U, 0)
		}
		for ; i < numPoints; i++ {
			U = append(U, float64(i-degree)/float64(n))
		}
		for ; i < numKnots; i++ {
			U = append(U, 1)
		}
	} else if numKnots == 1 {
		U = append(U, 0)
	} else {
		for i := 0; i < numKnots; i++ {
			U = append(U, float64(i)/float64(numKnots-1))
		}
	}
	return U
}

// Clone returns a copy of the knot vector.
func (U KnotVector) Clone() KnotVector {
	return append(KnotVector(nil), U...)
}

// Domain returns the parameter range [min,max] covered by the knot vector.
func (U KnotVector) Domain() (min, max float64) {
	if len(U) == 0 {
		return 0, 0
	}
	return U[0], U[len(U)-1]
}

// IsNonDecreasing is a predicate: are the knots sorted?
func (U KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(U); i++ {
		if U[i] < U[i-1] {
			return false
		}
	}
	return true
}

// Span locates the knot span index i with U[i] <= u < U[i+1] by binary
// search, where n is the highest control point index and p the degree.
// Parameters at or below U[p] map to span p, parameters at or above U[n+1]
// map to span n.
//
// See algorithm A2.1, page 68, The NURBS Book (Springer 1997).
func (U KnotVector) Span(n, p int, u float64) int {
	if u <= U[p] {
		return p
	}
	if u >= U[n+1] {
		return n
	}
	low, high := p, n+1
	mid := (low + high) / 2
	for u < U[mid] || u >= U[mid+1] {
		if u < U[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// Multiplicities determines the multiplicity of each knot value, as an
// ordered map knot → count. Knots closer than splines.Epsilon count as one
// value.
func (U KnotVector) Multiplicities() *treemap.Map {
	m := treemap.NewWith(utils.Float64Comparator)
	if len(U) == 0 {
		return m
	}
	rep := U[0]
	count := 0
	for _, knot := range U {
		if math.Abs(knot-rep) > splines.Epsilon {
			m.Put(rep, count)
			rep = knot
			count = 0
		}
		count++
	}
	m.Put(rep, count)
	return m
}

// Validate checks the knot vector against a control point count and degree:
// the length must equal numPoints+degree+1, the knots must be sorted, and no
// knot may repeat more often than degree times (degree+1 at the boundaries).
func (U KnotVector) Validate(numPoints, degree int) error {
	if len(U) != numPoints+degree+1 {
		return fmt.Errorf("%w: have %d knots for %d points of degree %d",
			ErrKnotCount, len(U), numPoints, degree)
	}
	if !U.IsNonDecreasing() {
		return ErrKnotOrder
	}
	interior := degree
	if interior < 1 {
		interior = 1 // a degree-0 curve still has simple knots
	}
	mults := U.Multiplicities()
	keys := mults.Keys()
	for i, key := range keys {
		knot := key.(float64)
		mult, _ := mults.Get(key)
		limit := interior
		if i == 0 || i == len(keys)-1 {
			limit = degree + 1
		}
		if mult.(int) > limit {
			return fmt.Errorf("%w: knot %g appears %d times", ErrKnotMultiplicity, knot, mult)
		}
	}
	return nil
}
