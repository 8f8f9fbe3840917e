package sweep

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splines"
	"github.com/npillmayer/splines/curve"
	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"
)

// A helix with radius r and pitch 2π·c, parametrized by angle.
type helix struct {
	r, c float64
}

func (h helix) Eval(t float64) vec3.T {
	return vec3.T{h.r * math.Cos(t), h.r * math.Sin(t), h.c * t}
}

func (h helix) Derivative(t float64, k int) vec3.T {
	switch k {
	case 0:
		return h.Eval(t)
	case 1:
		return vec3.T{-h.r * math.Sin(t), h.r * math.Cos(t), h.c}
	case 2:
		return vec3.T{-h.r * math.Cos(t), -h.r * math.Sin(t), 0}
	}
	return vec3.Zero
}

func TestFrenetNullDefault(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFrenet(nil)
	fr := f.At(0.3)
	assert.Equal(t, vec3.Zero, fr.Origin)
	assert.Equal(t, vec3.Zero, fr.Tangent)
	assert.Equal(t, vec3.Zero, fr.Normal)
	assert.Equal(t, vec3.Zero, fr.Binormal)
}

func TestFrenetOrthonormal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFrenet(helix{r: 1, c: 0.5})
	for _, u := range []float64{0, 0.7, 2.1, 5.5} {
		fr := f.At(u)
		assert.InDelta(t, 1.0, fr.Tangent.Length(), 1e-12)
		assert.InDelta(t, 1.0, fr.Normal.Length(), 1e-12)
		assert.InDelta(t, 1.0, fr.Binormal.Length(), 1e-12)
		assert.InDelta(t, 0.0, vec3.Dot(&fr.Tangent, &fr.Normal), 1e-12)
		assert.InDelta(t, 0.0, vec3.Dot(&fr.Tangent, &fr.Binormal), 1e-12)
		assert.InDelta(t, 0.0, vec3.Dot(&fr.Normal, &fr.Binormal), 1e-12)
	}
}

func TestFrenetOnCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFrenet(helix{r: 2, c: 0}) // a circle in the xy-plane
	fr := f.At(0)
	assert.InDelta(t, 0.0, fr.Tangent[0], 1e-12)
	assert.InDelta(t, 1.0, fr.Tangent[1], 1e-12)
	// the normal points towards the center
	assert.InDelta(t, -1.0, fr.Normal[0], 1e-12)
	assert.InDelta(t, 0.0, fr.Normal[1], 1e-12)
}

func TestFrenetMatrix(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f := NewFrenet(helix{r: 1, c: 0.5})
	fr := f.At(1.2)
	m := fr.Mat3()
	assert.Equal(t, fr.Tangent, m[0])
	assert.Equal(t, fr.Normal, m[1])
	assert.Equal(t, fr.Binormal, m[2])
}

func TestFrenetOverNURBS(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line, err := curve.New([]splines.Point{splines.P(0, 0, 0), splines.P(2, 0, 0)}, 1)
	assert.NoError(t, err)
	f := NewFrenet(line)
	fr := f.At(0.5)
	assert.InDelta(t, 1.0, fr.Tangent[0], 1e-12)
	// a straight line has no curvature: normal and binormal degenerate
	assert.Equal(t, vec3.Zero, fr.Normal)
	assert.Equal(t, vec3.Zero, fr.Binormal)
}

func TestTubeAroundCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spine := helix{r: 2, c: 0}
	tube := NewTube(NewFrenet(spine), 0.5)
	assert.Equal(t, 0.5, tube.Radius())
	for _, u := range []float64{0, 1, 2.5} {
		for _, v := range []float64{0, math.Pi / 3, math.Pi, 4.8} {
			s := tube.At(u, v)
			center := spine.Eval(u)
			assert.InDelta(t, 0.5, vec3.Distance(&s, &center), 1e-12,
				"tube points keep distance radius from the spine")
		}
	}
	// at angle 0 the tube follows the inward normal
	s := tube.At(0, 0)
	assert.InDelta(t, 1.5, s.Length(), 1e-12)
}

func TestTubeNullDefault(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tube := NewTube(nil, 1)
	assert.Equal(t, vec3.Zero, tube.At(0.2, 0.3))
	tube.SetRadius(2)
	assert.Equal(t, 2.0, tube.Radius())
}
