package FV1D

import (
	"github.com/gofvm/advect/quadrature"
	"github.com/gofvm/advect/utils"
)

// CellAverages computes the conservative initial field: the integral mean of
// profile over each cell [x-dx/2, x+dx/2]. The first cell is not integrated
// independently; it takes the last cell's value, the periodic convention used
// throughout this solver. A single midpoint evaluation is not good enough for
// sharp profiles, so each mean comes from the adaptive quadrature.
func CellAverages(m *Mesh, profile func(x float64) float64) (Q utils.Vector, err error) {
	var (
		nx   = m.Nx()
		half = 0.5 * m.Dx
		x    = m.X.DataP()
	)
	Q = utils.NewVector(nx)
	q := Q.DataP()
	for i := 1; i < nx; i++ {
		var quad float64
		if quad, err = quadrature.Integrate(profile, x[i]-half, x[i]+half, quadrature.DefaultTol); err != nil {
			return
		}
		q[i] = quad / m.Dx
	}
	q[0] = q[nx-1]
	return
}
