// Package quadrature integrates real valued functions of one variable over a
// bounded interval, and complex valued ones by splitting them into two real
// integrands.
package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

var (
	ErrNotConverged = errors.New("quadrature: subdivision limit reached before tolerance")
	ErrNonFinite    = errors.New("quadrature: integrand produced NaN or Inf")
	ErrBadInterval  = errors.New("quadrature: invalid integration interval")
)

// Result is an estimate of a definite integral with its error bound
type Result struct {
	Estimate   float64
	ErrorBound float64
	Intervals  int // Number of panels in the final partition
}

// Integrator is the contract with the numerical quadrature: given a real
// scalar function and bounds, return an estimate and an error bound
type Integrator interface {
	Integrate(f func(float64) float64, a, b float64) (Result, error)
}

const (
	DefaultOrder           = 5
	DefaultAbsTol          = 1.e-10
	DefaultRelTol          = 1.e-10
	DefaultMaxSubdivisions = 50
)

// Adaptive is a globally adaptive bisection scheme. Each panel is integrated
// with Gauss-Legendre rules of Order and 2*Order points, the difference being
// the panel error. The panel with the largest error is split until the summed
// error meets max(AbsTol, RelTol*|estimate|), or falls below the roundoff
// level of the integral of |f|.
type Adaptive struct {
	Order           int
	AbsTol, RelTol  float64
	MaxSubdivisions int
	Rule            quad.FixedLocationer // nil is quad.Legendre
}

func NewAdaptive() *Adaptive {
	return &Adaptive{
		Order:           DefaultOrder,
		AbsTol:          DefaultAbsTol,
		RelTol:          DefaultRelTol,
		MaxSubdivisions: DefaultMaxSubdivisions,
	}
}

// roundoff is the multiple of machine epsilon times the integral of |f|
// below which an error estimate is rounding noise
const roundoff = 50 * 2.220446049250313e-16

type panel struct {
	a, b            float64
	est, errEs, abs float64
}

func (ad *Adaptive) settings() (order, maxSub int, absTol, relTol float64) {
	order, maxSub, absTol, relTol = ad.Order, ad.MaxSubdivisions, ad.AbsTol, ad.RelTol
	if order < 1 {
		order = DefaultOrder
	}
	if maxSub < 1 {
		maxSub = DefaultMaxSubdivisions
	}
	if absTol <= 0 && relTol <= 0 {
		absTol, relTol = DefaultAbsTol, DefaultRelTol
	}
	return
}

func (ad *Adaptive) newPanel(f func(float64) float64, a, b float64, order int) (p panel) {
	var (
		rule quad.FixedLocationer = quad.Legendre{}
	)
	if ad.Rule != nil {
		rule = ad.Rule
	}
	var (
		coarse = quad.Fixed(f, a, b, order, rule, 0)
		fine   = quad.Fixed(f, a, b, 2*order, rule, 0)
		abs    = quad.Fixed(func(x float64) float64 { return math.Abs(f(x)) }, a, b, 2*order, rule, 0)
	)
	p = panel{a: a, b: b, est: fine, errEs: math.Abs(fine - coarse), abs: abs}
	return
}

func (ad *Adaptive) Integrate(f func(float64) float64, a, b float64) (res Result, err error) {
	var (
		order, maxSub, absTol, relTol = ad.settings()
		panels                        []panel
	)
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a > b {
		err = fmt.Errorf("%w: [%v, %v]", ErrBadInterval, a, b)
		return
	}
	if a == b {
		res.Intervals = 1
		return
	}
	panels = []panel{ad.newPanel(f, a, b, order)}
	for {
		var (
			total, totalErr, totalAbs float64
			worst                     int
		)
		for i, p := range panels {
			total += p.est
			totalErr += p.errEs
			totalAbs += p.abs
			if p.errEs > panels[worst].errEs {
				worst = i
			}
		}
		res = Result{Estimate: total, ErrorBound: totalErr, Intervals: len(panels)}
		if math.IsNaN(total) || math.IsInf(total, 0) || math.IsNaN(totalErr) {
			err = fmt.Errorf("%w: estimate %v over [%v, %v]", ErrNonFinite, total, a, b)
			return
		}
		if totalErr <= math.Max(math.Max(absTol, relTol*math.Abs(total)), roundoff*totalAbs) {
			return
		}
		if len(panels) > maxSub {
			err = fmt.Errorf("%w: error bound %.3g after %d subdivisions over [%v, %v]",
				ErrNotConverged, totalErr, maxSub, a, b)
			return
		}
		w := panels[worst]
		mid := 0.5 * (w.a + w.b)
		panels[worst] = ad.newPanel(f, w.a, mid, order)
		panels = append(panels, ad.newPanel(f, mid, w.b, order))
	}
}
