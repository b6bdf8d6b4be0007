package OrrSommerfeld

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/poiseuille/Hermite"
	"github.com/notargets/poiseuille/quadrature"
	"github.com/notargets/poiseuille/utils"
)

// Assembler builds Orr-Sommerfeld element matrices for one basis convention.
// The zero value is not usable, start from NewAssembler.
type Assembler struct {
	Convention     Hermite.BasisConvention
	Integrator     quadrature.Integrator
	ParallelDegree int // Goroutines used per element (entries) or per system (elements), <= 1 is sequential
	Logger         *zap.Logger
}

func NewAssembler(conv Hermite.BasisConvention) *Assembler {
	return &Assembler{
		Convention:     conv,
		Integrator:     quadrature.NewAdaptive(),
		ParallelDegree: 1,
		Logger:         zap.NewNop(),
	}
}

// Assemble computes A(N, h, k, alpha, Re) with a default assembler for conv
func Assemble(N int, h float64, k int, alpha, Re float64, conv Hermite.BasisConvention) (ElementMatrix, error) {
	return NewAssembler(conv).Assemble(ElementDescriptor{N: N, H: h, K: k}, SpectralParams{Alpha: alpha, Re: Re})
}

func (as *Assembler) logger() *zap.Logger {
	if as.Logger == nil {
		return zap.NewNop()
	}
	return as.Logger
}

func (as *Assembler) integrator() quadrature.Integrator {
	if as.Integrator == nil {
		return quadrature.NewAdaptive()
	}
	return as.Integrator
}

// Assemble integrates all 16 entries of the element matrix over the physical
// extent of the element. Either every entry is computed or an error is returned.
func (as *Assembler) Assemble(ed ElementDescriptor, sp SpectralParams) (A ElementMatrix, err error) {
	var (
		basis Hermite.Basis
		vals  [NDOF * NDOF]complex128
		a, b  = ed.Bounds()
		in    = as.integrator()
		np    = utils.ClampParallelDegree(as.ParallelDegree, NDOF*NDOF)
	)
	if err = ed.Validate(); err != nil {
		return
	}
	if err = sp.Validate(); err != nil {
		return
	}
	if basis, err = Hermite.NewBasis(as.Convention, ed.H); err != nil {
		return
	}
	entry := func(ij int) error {
		var (
			i, j = ij / NDOF, ij % NDOF
		)
		v, err := quadrature.IntegrateComplex(in, Integrand(basis, sp, j, i), a, b)
		if err != nil {
			return newIntegrationError(i, j, err)
		}
		vals[ij] = v
		return nil
	}
	if np == 1 {
		for ij := range vals {
			if err = entry(ij); err != nil {
				return
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(np)
		for ij := range vals {
			g.Go(func() error { return entry(ij) })
		}
		if err = g.Wait(); err != nil {
			return
		}
	}
	A = BuildElementMatrix(func(i, j int) complex128 { return vals[i*NDOF+j] })
	as.logger().Debug("element matrix assembled",
		zap.Int("k", ed.K), zap.Int("N", ed.N),
		zap.Float64("ymin", a), zap.Float64("ymax", b),
		zap.Stringer("basis", as.Convention))
	return
}
