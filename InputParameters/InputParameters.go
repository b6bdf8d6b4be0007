package InputParameters

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"

	"github.com/notargets/poiseuille/Hermite"
	"github.com/notargets/poiseuille/quadrature"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title           string  `json:"Title"`
	Elements        int     `json:"Elements"`
	Alpha           float64 `json:"Alpha"`
	Re              float64 `json:"Re"`
	Basis           string  `json:"Basis"`          // canonical or element-local
	QuadratureRule  string  `json:"QuadratureRule"` // legendre or golub-welsch
	QuadratureOrder int     `json:"QuadratureOrder"`
	AbsTol          float64 `json:"AbsTol"`
	RelTol          float64 `json:"RelTol"`
	MaxSubdivisions int     `json:"MaxSubdivisions"`
	ParallelDegree  int     `json:"ParallelDegree"`
}

func NewInputParameters() *InputParameters {
	return &InputParameters{
		Title:           "Plane Poiseuille flow",
		Elements:        20,
		Alpha:           1.02056,
		Re:              5772.22,
		Basis:           Hermite.Canonical.String(),
		QuadratureRule:  "legendre",
		QuadratureOrder: quadrature.DefaultOrder,
		AbsTol:          quadrature.DefaultAbsTol,
		RelTol:          quadrature.DefaultRelTol,
		MaxSubdivisions: quadrature.DefaultMaxSubdivisions,
		ParallelDegree:  1,
	}
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) ReadFile(fileName string) (err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return
}

func (ip *InputParameters) Convention() (Hermite.BasisConvention, error) {
	return Hermite.ParseBasisConvention(ip.Basis)
}

func (ip *InputParameters) Integrator() (in *quadrature.Adaptive, err error) {
	rule, err := quadrature.ParseRule(ip.QuadratureRule)
	if err != nil {
		return
	}
	in = &quadrature.Adaptive{
		Order:           ip.QuadratureOrder,
		AbsTol:          ip.AbsTol,
		RelTol:          ip.RelTol,
		MaxSubdivisions: ip.MaxSubdivisions,
		Rule:            rule,
	}
	return
}

func (ip *InputParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Elements\n", ip.Elements)
	fmt.Fprintf(w, "%8.5f\t\t= Alpha\n", ip.Alpha)
	fmt.Fprintf(w, "%8.2f\t\t= Re\n", ip.Re)
	fmt.Fprintf(w, "[%s]\t\t\t= Basis\n", ip.Basis)
	fmt.Fprintf(w, "[%s]\t\t\t= Quadrature Rule\n", ip.QuadratureRule)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Quadrature Order\n", ip.QuadratureOrder)
	fmt.Fprintf(w, "%8.2e\t\t= AbsTol\n", ip.AbsTol)
	fmt.Fprintf(w, "%8.2e\t\t= RelTol\n", ip.RelTol)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Max Subdivisions\n", ip.MaxSubdivisions)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}
