package FV2D

import (
	"github.com/gofvm/advect/FV1D"
)

// Mesh2D pairs one independently derived 1D mesh per axis. Both axes share
// the time discretization; the split solver sweeps x with the u-courant
// number and y with the v-courant number.
type Mesh2D struct {
	X, Y *FV1D.Mesh
}

// NewMesh2D derives both axis meshes from the shared time parameters.
// dxOverride/dyOverride supply the spacing for a still axis (speed zero);
// pass 0 to derive from the speed.
func NewMesh2D(tInit, tFinal, tStep float64,
	xMin, xMax, yMin, yMax float64,
	u, v, cfl float64,
	dxOverride, dyOverride float64) (m *Mesh2D, err error) {
	var mx, my *FV1D.Mesh
	if mx, err = FV1D.NewMesh(tInit, tFinal, tStep, xMin, xMax, u, cfl, dxOverride); err != nil {
		return
	}
	if my, err = FV1D.NewMesh(tInit, tFinal, tStep, yMin, yMax, v, cfl, dyOverride); err != nil {
		return
	}
	m = &Mesh2D{X: mx, Y: my}
	return
}

func (m *Mesh2D) Nx() int { return m.X.Nx() }
func (m *Mesh2D) Ny() int { return m.Y.Nx() }
func (m *Mesh2D) Nt() int { return m.X.Nt }
