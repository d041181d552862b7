package FV1D

import (
	"github.com/gofvm/advect/utils"
)

// Step performs one Reconstruct-Evolve-Average update of the field Q with
// reconstruction slopes S, at courant number nu = a*dt/dx:
//
//	Q'[i] = Q[i] - nu*(Q[i]-Q[i-1]) - 0.5*nu*(dx-a*dt)*(S[i]-S[i-1])
//
// which is the algebraic reduction of reconstructing a linear profile per
// cell, advecting it exactly by a*dt, and re-averaging onto the grid. An
// all-zero S reduces it to first-order upwind. The update reads only the old
// field (the returned field is a fresh buffer); the boundary cell Q'[0] is
// the periodic copy of the last computed value.
func Step(Q, S utils.Vector, a, dx, dt, nu float64) (Qn utils.Vector, err error) {
	var (
		nx = Q.Len()
	)
	if nu < 0 || nu > 1 {
		return Qn, &ConfigurationError{Field: "Nu", Value: nu, Constraint: "courant number must lie in [0,1]"}
	}
	if S.Len() != nx {
		return Qn, &DimensionError{What: "slope field", Want: nx, Got: S.Len()}
	}
	var (
		q    = Q.DataP()
		s    = S.DataP()
		corr = 0.5 * nu * (dx - a*dt)
	)
	Qn = utils.NewVector(nx)
	qn := Qn.DataP()
	for i := 1; i < nx; i++ {
		qn[i] = q[i] - nu*(q[i]-q[i-1]) - corr*(s[i]-s[i-1])
	}
	qn[0] = qn[nx-1]
	return
}
