package splines

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if !Is1(1.00000002) {
		t.Errorf("Expected value to be one, is not")
	}
	if Zap(a) != 0 {
		t.Errorf("Expected Zap(a) to be 0, is %g", Zap(a))
	}
}

func TestPointBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2, 1)
	if p.W != 1 {
		t.Errorf("Expected default weight 1, is %g", p.W)
	}
	q := WP(3, 2, 1, 0.5)
	if p.Equal(q) {
		t.Errorf("Expected p != q, points differ in weight")
	}
	if p.String() != "(3,2,1)" {
		t.Errorf("unexpected point format: %s", p.String())
	}
	if q.String() != "(3,2,1)@0.5" {
		t.Errorf("unexpected point format: %s", q.String())
	}
}

func TestPointHomogenized(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := WP(2, 4, 6, 0.5)
	h := p.Homogenized()
	assert.Equal(t, vec3.T{1, 2, 3}, h.Vec3)
	assert.Equal(t, 0.5, h.W)
	e := h.Dehomogenized()
	assert.Equal(t, vec3.T{2, 4, 6}, e)
}

func TestNullCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var c ParametricCurve = Null{}
	if c.Eval(0.7) != vec3.Zero {
		t.Errorf("Expected null curve to evaluate to origin")
	}
	if c.Derivative(0.7, 2) != vec3.Zero {
		t.Errorf("Expected null curve derivative to be zero")
	}
	if Length(c, 0, 1) != 0 {
		t.Errorf("Expected null curve arc length 0")
	}
}

// A circle of radius r in the xy-plane, parametrized by angle.
type circle struct {
	r float64
}

func (c circle) Eval(t float64) vec3.T {
	return vec3.T{c.r * math.Cos(t), c.r * math.Sin(t), 0}
}

func (c circle) Derivative(t float64, k int) vec3.T {
	switch k {
	case 0:
		return c.Eval(t)
	case 1:
		return vec3.T{-c.r * math.Sin(t), c.r * math.Cos(t), 0}
	case 2:
		return vec3.T{-c.r * math.Cos(t), -c.r * math.Sin(t), 0}
	}
	return vec3.Zero
}

func TestArcLengthCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := circle{r: 2}
	perimeter := Length(c, 0, 2*math.Pi)
	assert.InDelta(t, 4*math.Pi, perimeter, 1e-6)
}
