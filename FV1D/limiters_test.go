package FV1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gofvm/advect/utils"
)

func TestMinmodProperties(t *testing.T) {
	var (
		vals = []float64{-3, -1.5, -0.2, 0, 0.2, 1.5, 3}
	)
	for _, a := range vals {
		for _, b := range vals {
			mm := Minmod(a, b)
			// symmetry
			assert.Equal(t, mm, Minmod(b, a))
			// opposite signs or a zero flatten to zero
			if a*b <= 0 {
				assert.Equal(t, 0., mm)
				continue
			}
			// bounded by the smaller magnitude, sign preserved
			assert.True(t, math.Abs(mm) <= math.Min(math.Abs(a), math.Abs(b)))
			assert.True(t, mm*a > 0)
		}
	}
}

func TestMaxmodProperties(t *testing.T) {
	var (
		vals = []float64{-3, -1.5, -0.2, 0, 0.2, 1.5, 3}
	)
	for _, a := range vals {
		for _, b := range vals {
			mm := Maxmod(a, b)
			assert.Equal(t, mm, Maxmod(b, a))
			if a*b <= 0 {
				assert.Equal(t, 0., mm)
				continue
			}
			assert.True(t, math.Abs(mm) >= math.Max(math.Abs(a), math.Abs(b))-1.e-15)
			assert.True(t, math.Abs(mm) <= math.Max(math.Abs(a), math.Abs(b)))
			assert.True(t, mm*a > 0)
		}
	}
}

func TestLimiterFormulas(t *testing.T) {
	var (
		up  = utils.NewVector(4, []float64{1, -2, 0.5, 3})
		dn  = utils.NewVector(4, []float64{2, -1, -0.5, 1})
		ctr = utils.NewVector(4, []float64{1.5, -1.5, 0, 2})
	)
	mm := MinmodSlopes(up, dn)
	for i := 0; i < 4; i++ {
		assert.Equal(t, Minmod(up.AtVec(i), dn.AtVec(i)), mm.AtVec(i))
	}
	sb := SuperbeeSlopes(up, dn)
	for i := 0; i < 4; i++ {
		u, d := up.AtVec(i), dn.AtVec(i)
		assert.Equal(t, Maxmod(Minmod(d, 2*u), Minmod(2*d, u)), sb.AtVec(i))
	}
	mc := MCSlopes(up, dn, ctr)
	for i := 0; i < 4; i++ {
		u, d := up.AtVec(i), dn.AtVec(i)
		assert.Equal(t, Minmod(ctr.AtVec(i), Minmod(2*u, 2*d)), mc.AtVec(i))
	}
}

func TestLimitersBoundedOnMonotoneData(t *testing.T) {
	// On monotone data the limited slopes never exceed the larger of the
	// unlimited one-sided slopes.
	var (
		dx = 0.5
		Q  = utils.NewVector(8, []float64{0, 0.1, 0.3, 1.2, 2.0, 2.1, 2.15, 2.2})
		up = UpwindSlopes(Q, dx)
		dn = DownwindSlopes(Q, dx)
	)
	for _, S := range []utils.Vector{
		SuperbeeSlopes(up, dn),
		MCSlopes(up, dn, CenteredSlopes(Q, dx)),
		MinmodSlopes(up, dn),
	} {
		for i := 0; i < Q.Len(); i++ {
			bound := math.Max(math.Abs(up.AtVec(i)), math.Abs(dn.AtVec(i)))
			assert.True(t, math.Abs(S.AtVec(i)) <= bound+1.e-14)
		}
	}
}
