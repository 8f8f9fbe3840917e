package sweep

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Tube is a surface swept around a spine curve: at parameter t the cross
// section is a circle of the given radius in the normal/binormal plane of
// the frame field.
type Tube struct {
	field  Field
	radius float64
}

// NewTube creates a tube of the given radius around the spine of a frame
// field. A nil field is substituted by a Frenet field over the Null curve.
func NewTube(field Field, radius float64) *Tube {
	if field == nil {
		field = NewFrenet(nil)
	}
	return &Tube{field: field, radius: radius}
}

// Field returns the frame field the tube sweeps along.
func (tb *Tube) Field() Field {
	return tb.field
}

// Radius returns the tube radius.
func (tb *Tube) Radius() float64 {
	return tb.radius
}

// SetRadius modifies the tube radius.
func (tb *Tube) SetRadius(radius float64) {
	tb.radius = radius
}

// At computes the surface point S(t,u) = C(t) + N·r·cos(u) + B·r·sin(u),
// with t the parameter along the spine and u the angle around it.
func (tb *Tube) At(t, u float64) vec3.T {
	fr := tb.field.At(t)
	p := fr.Origin
	nc := fr.Normal.Scaled(tb.radius * math.Cos(u))
	bs := fr.Binormal.Scaled(tb.radius * math.Sin(u))
	p.Add(&nc)
	p.Add(&bs)
	return p
}
