package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/gofvm/advect/FV1D"
	"github.com/gofvm/advect/FV2D"
)

// Parameters obtained from the YAML input file or CLI flags. Dx/Dy are
// spacing overrides used only when the matching speed is zero; with a nonzero
// speed the spacing is derived, dx = speed*dt/CFL.
type Parameters1D struct {
	Title   string  `yaml:"Title"`
	TInit   float64 `yaml:"TInit"`
	TFinal  float64 `yaml:"TFinal"`
	TStep   float64 `yaml:"TStep"`
	XMin    float64 `yaml:"XMin"`
	XMax    float64 `yaml:"XMax"`
	Speed   float64 `yaml:"Speed"`
	CFL     float64 `yaml:"CFL"`
	Dx      float64 `yaml:"Dx"`
	Slope   string  `yaml:"Slope"`
	Limiter string  `yaml:"Limiter"`
}

func (ip *Parameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Scheme resolves the slope/limiter selectors; a limiter overrides a slope.
func (ip *Parameters1D) Scheme() (FV1D.Scheme, error) {
	return FV1D.SchemeFromNames(ip.Slope, ip.Limiter)
}

// Mesh validates the full configuration and derives the grid. All constraint
// failures surface here, before any time stepping.
func (ip *Parameters1D) Mesh() (*FV1D.Mesh, error) {
	if _, err := ip.Scheme(); err != nil {
		return nil, err
	}
	return FV1D.NewMesh(ip.TInit, ip.TFinal, ip.TStep, ip.XMin, ip.XMax, ip.Speed, ip.CFL, ip.Dx)
}

func (ip *Parameters1D) Print() {
	scheme, _ := ip.Scheme()
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= Speed\n", ip.Speed)
	fmt.Printf("[%8.5f,%8.5f]\t= Time domain, step %g\n", ip.TInit, ip.TFinal, ip.TStep)
	fmt.Printf("[%8.5f,%8.5f]\t= X domain\n", ip.XMin, ip.XMax)
	fmt.Printf("[%s]\t\t= Scheme\n", scheme)
}

type Parameters2D struct {
	Title   string  `yaml:"Title"`
	TInit   float64 `yaml:"TInit"`
	TFinal  float64 `yaml:"TFinal"`
	TStep   float64 `yaml:"TStep"`
	XMin    float64 `yaml:"XMin"`
	XMax    float64 `yaml:"XMax"`
	YMin    float64 `yaml:"YMin"`
	YMax    float64 `yaml:"YMax"`
	SpeedX  float64 `yaml:"SpeedX"`
	SpeedY  float64 `yaml:"SpeedY"`
	CFL     float64 `yaml:"CFL"`
	Dx      float64 `yaml:"Dx"`
	Dy      float64 `yaml:"Dy"`
	Slope   string  `yaml:"Slope"`
	Limiter string  `yaml:"Limiter"`
}

func (ip *Parameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *Parameters2D) Scheme() (FV1D.Scheme, error) {
	return FV1D.SchemeFromNames(ip.Slope, ip.Limiter)
}

func (ip *Parameters2D) Mesh() (*FV2D.Mesh2D, error) {
	if _, err := ip.Scheme(); err != nil {
		return nil, err
	}
	return FV2D.NewMesh2D(ip.TInit, ip.TFinal, ip.TStep,
		ip.XMin, ip.XMax, ip.YMin, ip.YMax,
		ip.SpeedX, ip.SpeedY, ip.CFL, ip.Dx, ip.Dy)
}

func (ip *Parameters2D) Print() {
	scheme, _ := ip.Scheme()
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f,%8.5f\t= SpeedX, SpeedY\n", ip.SpeedX, ip.SpeedY)
	fmt.Printf("[%8.5f,%8.5f]\t= Time domain, step %g\n", ip.TInit, ip.TFinal, ip.TStep)
	fmt.Printf("[%8.5f,%8.5f]\t= X domain\n", ip.XMin, ip.XMax)
	fmt.Printf("[%8.5f,%8.5f]\t= Y domain\n", ip.YMin, ip.YMax)
	fmt.Printf("[%s]\t\t= Scheme\n", scheme)
}
