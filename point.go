package splines

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// === Weighted Points =======================================================

// Point is a control point in homogeneous representation: a 3D coordinate
// plus a scalar weight. A weight of 1 denotes a non-rational point.
// Coordinate arithmetic operates on the coordinates only; the weight is
// carried separately and combined explicitly during rational evaluation.
type Point struct {
	Vec3 vec3.T
	W    float64
}

// P is a quick notation for constructing a non-rational point from floats.
func P(x, y, z float64) Point {
	return Point{vec3.T{x, y, z}, 1}
}

// WP is a quick notation for constructing a weighted point from floats.
func WP(x, y, z, w float64) Point {
	return Point{vec3.T{x, y, z}, w}
}

// Pretty Stringer for points. Weights of 1 are omitted.
func (p Point) String() string {
	if Is1(p.W) {
		return fmt.Sprintf("(%g,%g,%g)", p.Vec3[0], p.Vec3[1], p.Vec3[2])
	}
	return fmt.Sprintf("(%g,%g,%g)@%g", p.Vec3[0], p.Vec3[1], p.Vec3[2], p.W)
}

// Equal compares two points, coordinates and weight.
func (p Point) Equal(q Point) bool {
	return Is0(p.Vec3[0]-q.Vec3[0]) && Is0(p.Vec3[1]-q.Vec3[1]) &&
		Is0(p.Vec3[2]-q.Vec3[2]) && Is0(p.W-q.W)
}

// Zap rounds coordinates to Epsilon.
func (p Point) Zap() Point {
	return Point{vec3.T{Zap(p.Vec3[0]), Zap(p.Vec3[1]), Zap(p.Vec3[2])}, p.W}
}

// Homogenized returns the point with its coordinates scaled by its weight,
// i.e. (w·x, w·y, w·z | w).
func (p Point) Homogenized() Point {
	return Point{p.Vec3.Scaled(p.W), p.W}
}

// Dehomogenized projects a homogeneous point back to Euclidean space.
// A weight of ≈0 cannot be projected; the coordinates are returned as is.
func (p Point) Dehomogenized() vec3.T {
	if Is0(p.W) {
		tracer().Errorf("dehomogenized point with zero weight")
		return p.Vec3
	}
	return p.Vec3.Scaled(1 / p.W)
}
