package FV2D

import (
	"github.com/gofvm/advect/quadrature"
	"github.com/gofvm/advect/utils"
)

// CellAverages computes the initial 2D field of integral means, one double
// integral per cell rectangle. This dominates 2D initialization cost -
// nx*ny independent integrals with no shared state - so the cells are split
// across CPUs. Periodicity is enforced afterwards by copy: the first row
// takes the last row, then the first column takes the last column, in that
// order.
func CellAverages(m *Mesh2D, profile func(x, y float64) float64) (Q utils.Matrix, err error) {
	var (
		nx, ny = m.Nx(), m.Ny()
		dx, dy = m.X.Dx, m.Y.Dx
		hx, hy = 0.5 * dx, 0.5 * dy
		x      = m.X.X.DataP()
		y      = m.Y.X.DataP()
		area   = dx * dy
	)
	Q = utils.NewMatrix(ny, nx)
	errs := make([]error, ny*nx)
	utils.ParallelRange(0, ny*nx, func(c int) {
		var (
			j  = c / nx // row, y index
			i  = c % nx // column, x index
			xc = x[i]
			yc = y[j]
		)
		quad, e := quadrature.Integrate2D(profile, xc-hx, xc+hx, yc-hy, yc+hy, quadrature.DefaultTol)
		if e != nil {
			errs[c] = e
			return
		}
		Q.Set(j, i, quad/area)
	})
	for _, e := range errs {
		if e != nil {
			return Q, e
		}
	}
	Q.SetRow(0, Q.Row(ny-1))
	Q.SetCol(0, Q.Col(nx-1))
	return
}
