package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrate(t *testing.T) {
	// Polynomials up to degree 13 are exact for G7, so these accept on the
	// first panel.
	{
		quad, err := Integrate(func(x float64) float64 { return 3*x*x + 2*x }, 0, 1, 1.e-12)
		assert.NoError(t, err)
		assert.True(t, near(quad, 2))

		quad, err = Integrate(func(x float64) float64 { return x * x * x }, -2, 2, 1.e-12)
		assert.NoError(t, err)
		assert.InDelta(t, 0, quad, 1.e-14)
	}
	{
		quad, err := Integrate(math.Sin, 0, math.Pi, 1.e-12)
		assert.NoError(t, err)
		assert.True(t, near(quad, 2))
	}
	// Sharp gaussian, the kind of profile a single evaluation point gets
	// badly wrong.
	{
		f := func(x float64) float64 {
			r := (x - 0.5) / 0.01
			return math.Exp(-r * r)
		}
		quad, err := Integrate(f, 0, 1, 1.e-12)
		assert.NoError(t, err)
		assert.True(t, near(quad, 0.01*math.Sqrt(math.Pi)))
	}
	// Reversed and empty intervals.
	{
		quad, err := Integrate(math.Cos, 1, 1, 1.e-12)
		assert.NoError(t, err)
		assert.Equal(t, 0., quad)
	}
}

func TestIntegrateDiscontinuous(t *testing.T) {
	// A jump inside the interval: panels around the edge subdivide until the
	// local error fits. This is the rectangular pulse case cell averaging
	// depends on.
	f := func(x float64) float64 {
		if x < 0.3 {
			return 1
		}
		return 0
	}
	quad, err := Integrate(f, 0, 1, 1.e-10)
	assert.NoError(t, err)
	assert.InDelta(t, 0.3, quad, 1.e-7)
}

func TestIntegrationError(t *testing.T) {
	// Integrable singularity off the dyadic grid: the error estimate near
	// the singular point cannot be driven under tolerance before the depth
	// budget runs out.
	f := func(x float64) float64 {
		return 1 / math.Sqrt(math.Abs(x-1./3.))
	}
	_, err := Integrate(f, 0, 1, 1.e-12)
	assert.Error(t, err)
	ie, ok := err.(*IntegrationError)
	assert.True(t, ok)
	assert.True(t, ie.Estimate > ie.Tol)
}

func TestIntegrate2D(t *testing.T) {
	{
		quad, err := Integrate2D(func(x, y float64) float64 { return x * y }, 0, 1, 0, 1, 1.e-12)
		assert.NoError(t, err)
		assert.True(t, near(quad, 0.25))
	}
	{
		quad, err := Integrate2D(func(x, y float64) float64 {
			return math.Sin(x) * math.Sin(y)
		}, 0, math.Pi, 0, math.Pi, 1.e-12)
		assert.NoError(t, err)
		assert.True(t, near(quad, 4))
	}
	// Inner failure must surface through the outer pass.
	{
		f := func(x, y float64) float64 {
			return 1 / math.Sqrt(math.Abs(x-1./3.))
		}
		_, err := Integrate2D(f, 0, 1, 0, 1, 1.e-12)
		assert.Error(t, err)
	}
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Abs(b)+1.e-10 {
		l = true
	}
	return
}
