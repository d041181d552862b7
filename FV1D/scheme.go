package FV1D

import (
	"github.com/gofvm/advect/utils"
)

// Scheme selects the reconstruction used by the REA update. The zero value is
// first-order upwind (no reconstruction).
type Scheme uint8

const (
	NoReconstruction Scheme = iota
	SlopeUpwind
	SlopeDownwind
	SlopeCentered
	LimiterMinmod
	LimiterSuperbee
	LimiterMC
)

var schemeNames = map[Scheme]string{
	NoReconstruction: "upwind (no reconstruction)",
	SlopeUpwind:      "upwind slope",
	SlopeDownwind:    "downwind slope",
	SlopeCentered:    "centered slope",
	LimiterMinmod:    "minmod limiter",
	LimiterSuperbee:  "superbee limiter",
	LimiterMC:        "MC limiter",
}

func (s Scheme) String() string { return schemeNames[s] }

var slopeByName = map[string]Scheme{
	"upwind":   SlopeUpwind,
	"downwind": SlopeDownwind,
	"centered": SlopeCentered,
}

var limiterByName = map[string]Scheme{
	"minmod":   LimiterMinmod,
	"superbee": LimiterSuperbee,
	"MC":       LimiterMC,
	"mc":       LimiterMC,
}

// SchemeFromNames resolves the slope/limiter selector pair. A limiter name
// overrides a slope name; both empty selects first-order upwind.
func SchemeFromNames(slope, limiter string) (s Scheme, err error) {
	if limiter != "" {
		var ok bool
		if s, ok = limiterByName[limiter]; !ok {
			err = &ConfigurationError{Field: "Limiter", Value: limiter,
				Constraint: "must be one of minmod, superbee, MC"}
		}
		return
	}
	if slope != "" {
		var ok bool
		if s, ok = slopeByName[slope]; !ok {
			err = &ConfigurationError{Field: "Slope", Value: slope,
				Constraint: "must be one of upwind, downwind, centered"}
		}
		return
	}
	s = NoReconstruction
	return
}

// SlopeField produces the per-cell reconstruction slopes for Q under the
// selected scheme. NoReconstruction yields the all-zero field, which reduces
// the REA update to first-order upwind.
func (s Scheme) SlopeField(Q utils.Vector, dx float64) (S utils.Vector) {
	switch s {
	case NoReconstruction:
		S = utils.NewVector(Q.Len())
	case SlopeUpwind:
		S = UpwindSlopes(Q, dx)
	case SlopeDownwind:
		S = DownwindSlopes(Q, dx)
	case SlopeCentered:
		S = CenteredSlopes(Q, dx)
	case LimiterMinmod:
		S = MinmodSlopes(UpwindSlopes(Q, dx), DownwindSlopes(Q, dx))
	case LimiterSuperbee:
		S = SuperbeeSlopes(UpwindSlopes(Q, dx), DownwindSlopes(Q, dx))
	case LimiterMC:
		S = MCSlopes(UpwindSlopes(Q, dx), DownwindSlopes(Q, dx), CenteredSlopes(Q, dx))
	default:
		panic("unknown scheme")
	}
	return
}
