package FV1D

import (
	"math"

	"github.com/gofvm/advect/utils"
)

// Minmod picks the smaller-magnitude argument when both agree in sign, zero
// otherwise. It is the basic TVD building block: near an extremum the
// one-sided slopes disagree in sign and the reconstruction flattens.
func Minmod(a, b float64) float64 {
	if a*b <= 0 {
		return 0
	}
	if math.Abs(a) < math.Abs(b) {
		return a
	}
	return b
}

// Maxmod picks the larger-magnitude argument when both agree in sign, zero
// otherwise.
func Maxmod(a, b float64) float64 {
	if a*b <= 0 {
		return 0
	}
	if math.Abs(a) > math.Abs(b) {
		return a
	}
	return b
}

// MinmodSlopes limits elementwise between the upwind and downwind estimates.
func MinmodSlopes(up, dn utils.Vector) (S utils.Vector) {
	var (
		nx = up.Len()
		u  = up.DataP()
		d  = dn.DataP()
	)
	S = utils.NewVector(nx)
	s := S.DataP()
	for i := 0; i < nx; i++ {
		s[i] = Minmod(u[i], d[i])
	}
	return
}

// SuperbeeSlopes takes the sharper of the two minmod candidates, recovering
// full second-order steepness at discontinuities while staying TVD.
func SuperbeeSlopes(up, dn utils.Vector) (S utils.Vector) {
	var (
		nx = up.Len()
		u  = up.DataP()
		d  = dn.DataP()
	)
	S = utils.NewVector(nx)
	s := S.DataP()
	for i := 0; i < nx; i++ {
		s[i] = Maxmod(Minmod(d[i], 2*u[i]), Minmod(2*d[i], u[i]))
	}
	return
}

// MCSlopes is the monitored-center limiter: the centered slope, bounded by
// twice either one-sided slope.
func MCSlopes(up, dn, ctr utils.Vector) (S utils.Vector) {
	var (
		nx = up.Len()
		u  = up.DataP()
		d  = dn.DataP()
		c  = ctr.DataP()
	)
	S = utils.NewVector(nx)
	s := S.DataP()
	for i := 0; i < nx; i++ {
		s[i] = Minmod(c[i], Minmod(2*u[i], 2*d[i]))
	}
	return
}
