package FV1D

import (
	"math"

	"github.com/gofvm/advect/utils"
)

// Mesh holds the uniform periodic grid and the derived stepping constants for
// one axis. Spacing is derived from the stability target, dx = a*dt/CFL, so
// that the courant number of the sweep equals the configured CFL; a still axis
// (a == 0) takes its spacing from the explicit override instead and sweeps
// with courant number zero.
type Mesh struct {
	X          utils.Vector // cell center coordinates
	Dx, Dt     float64
	A          float64 // advection speed, constant
	Nu         float64 // courant number a*dt/dx
	Nt         int     // time levels, inclusive of t_init
	TInit      float64
	TFinal     float64
}

// relative slack on the terminal mesh point, so exact multiples of dx land on
// the nominal end while shorter spans fall short of it
const meshEndTol = 1.e-9

// NewMesh derives the grid for one axis. dxOverride supplies the spacing when
// the axis speed is zero; pass 0 to require derivation from the speed.
func NewMesh(tInit, tFinal, tStep, xMin, xMax, speed, cfl, dxOverride float64) (m *Mesh, err error) {
	if cfl <= 0 || cfl > 1 {
		return nil, &ConfigurationError{Field: "CFL", Value: cfl, Constraint: "stability requires 0 < CFL <= 1"}
	}
	if tStep <= 0 {
		return nil, &ConfigurationError{Field: "TStep", Value: tStep, Constraint: "time step must be positive"}
	}
	if tFinal < tInit {
		return nil, &ConfigurationError{Field: "TFinal", Value: tFinal, Constraint: "final time precedes initial time"}
	}
	if speed < 0 {
		return nil, &ConfigurationError{Field: "Speed", Value: speed, Constraint: "the upwind update assumes speed >= 0"}
	}
	var dx float64
	if speed != 0 {
		dx = speed * tStep / cfl
	} else {
		dx = dxOverride
	}
	if dx <= 0 {
		return nil, &ConfigurationError{Field: "Dx", Value: dx, Constraint: "cell spacing must be positive (zero speed requires an explicit Dx)"}
	}
	if xMax <= xMin {
		return nil, &ConfigurationError{Field: "XMax", Value: xMax, Constraint: "domain end must exceed domain start"}
	}
	var xs []float64
	for k := 0; ; k++ {
		x := xMin + float64(k)*dx
		if x > xMax+dx*meshEndTol {
			break
		}
		xs = append(xs, x)
	}
	if len(xs) < 3 {
		return nil, &ConfigurationError{Field: "Dx", Value: dx, Constraint: "domain must span at least three cells"}
	}
	m = &Mesh{
		X:      utils.NewVector(len(xs), xs),
		Dx:     dx,
		Dt:     tStep,
		A:      speed,
		Nu:     speed * tStep / dx,
		Nt:     int(math.Floor((tFinal-tInit)/tStep)) + 1,
		TInit:  tInit,
		TFinal: tFinal,
	}
	return
}

// Nx is the number of cells, including the periodic boundary cell.
func (m *Mesh) Nx() int { return m.X.Len() }
