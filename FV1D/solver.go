package FV1D

import (
	"fmt"

	"github.com/gofvm/advect/utils"
)

// Solver marches a 1D cell-average field through Nt time levels with the REA
// update and the selected reconstruction scheme.
type Solver struct {
	Mesh   *Mesh
	Scheme Scheme
	// LogFrequency > 0 prints a progress line every that many steps.
	LogFrequency int
}

func NewSolver(m *Mesh, scheme Scheme) *Solver {
	return &Solver{Mesh: m, Scheme: scheme}
}

// Run initializes the field from profile and returns one snapshot per time
// level: Nt snapshots, Nt-1 REA updates, the first snapshot being the initial
// cell averages.
func (c *Solver) Run(profile func(x float64) float64) (series []utils.Vector, err error) {
	var (
		m = c.Mesh
		Q utils.Vector
	)
	if Q, err = CellAverages(m, profile); err != nil {
		return
	}
	series = make([]utils.Vector, 0, m.Nt)
	for tstep := 0; tstep < m.Nt; tstep++ {
		series = append(series, Q.Copy())
		if c.LogFrequency > 0 && tstep%c.LogFrequency == 0 {
			fmt.Printf("Time = %8.4f, step %d, umin = %8.4f, umax = %8.4f\n",
				m.TInit+float64(tstep)*m.Dt, tstep, Q.Min(), Q.Max())
		}
		if tstep == m.Nt-1 {
			break
		}
		S := c.Scheme.SlopeField(Q, m.Dx)
		if Q, err = Step(Q, S, m.A, m.Dx, m.Dt, m.Nu); err != nil {
			return
		}
	}
	return
}

// Mass is the discrete conserved quantity, the field sum scaled by dx. The
// periodic boundary cell duplicates the last cell and is excluded.
func Mass(Q utils.Vector, dx float64) (mass float64) {
	var (
		q = Q.DataP()
	)
	for i := 1; i < len(q); i++ {
		mass += q[i]
	}
	mass *= dx
	return
}

// TotalVariation measures oscillation over the periodic field; TVD schemes
// never increase it step over step.
func TotalVariation(Q utils.Vector) (tv float64) {
	var (
		q  = Q.DataP()
		nx = len(q)
	)
	for i := 1; i < nx; i++ {
		d := q[i] - q[i-1]
		if d < 0 {
			d = -d
		}
		tv += d
	}
	return
}
