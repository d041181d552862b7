package FV1D

import (
	"github.com/gofvm/advect/utils"
)

// The three slope estimators approximate dq/dx at cell centers for the
// piecewise-linear reconstruction. Each handles the periodic boundary by
// copying the wrapped neighbor's slope, mirroring the field convention
// Q[0] == Q[nx-1].

// UpwindSlopes is the one-sided difference against the left neighbor.
func UpwindSlopes(Q utils.Vector, dx float64) (S utils.Vector) {
	var (
		nx = Q.Len()
		q  = Q.DataP()
	)
	S = utils.NewVector(nx)
	s := S.DataP()
	for i := 1; i < nx; i++ {
		s[i] = (q[i] - q[i-1]) / dx
	}
	s[0] = s[nx-1]
	return
}

// DownwindSlopes is the one-sided difference against the right neighbor; the
// wrap copy runs in the opposite direction.
func DownwindSlopes(Q utils.Vector, dx float64) (S utils.Vector) {
	var (
		nx = Q.Len()
		q  = Q.DataP()
	)
	S = utils.NewVector(nx)
	s := S.DataP()
	for i := 0; i < nx-1; i++ {
		s[i] = (q[i+1] - q[i]) / dx
	}
	s[nx-1] = s[0]
	return
}

// CenteredSlopes is the second-order central difference. The last cell has no
// right neighbor and falls back to the one-sided difference over dx.
func CenteredSlopes(Q utils.Vector, dx float64) (S utils.Vector) {
	var (
		nx = Q.Len()
		q  = Q.DataP()
	)
	S = utils.NewVector(nx)
	s := S.DataP()
	for i := 1; i < nx-1; i++ {
		s[i] = (q[i+1] - q[i-1]) / (2 * dx)
	}
	s[nx-1] = (q[nx-1] - q[nx-2]) / dx
	s[0] = s[nx-1]
	return
}
