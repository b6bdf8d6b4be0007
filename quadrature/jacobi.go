package quadrature

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// JacobiGauss is the Gauss-Jacobi rule for the weight (1-r)^Alpha (1+r)^Beta,
// with nodes and weights from the eigen decomposition of the Jacobi matrix.
// Alpha = Beta = 0 is a Gauss-Legendre rule and can stand in for quad.Legendre.
type JacobiGauss struct {
	Alpha, Beta float64
}

// FixedLocations implements quad.FixedLocationer, mapping the rule onto [min, max]
func (jg JacobiGauss) FixedLocations(x, weight []float64, min, max float64) {
	if len(x) != len(weight) {
		panic("quadrature: slice length mismatch")
	}
	var (
		R, W  = JacobiGQ(jg.Alpha, jg.Beta, len(x)-1)
		scale = 0.5 * (max - min)
	)
	for i := range x {
		x[i] = min + (R[i]+1)*scale
		weight[i] = W[i] * scale
	}
}

// JacobiGQ returns the N+1 Gauss-Jacobi nodes on [-1,1] in ascending order
// and their weights
func JacobiGQ(alpha, beta float64, N int) (X, W []float64) {
	var (
		fac, ip1 float64
		h1       = make([]float64, N+1)
		d0       = make([]float64, N+1)
		d1       = make([]float64, N)
		JJ       = mat.NewSymDense(N+1, nil)
		VVr      = mat.NewDense(N+1, N+1, nil)
		eig      mat.EigenSym
	)
	if N == 0 {
		X = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		W = []float64{gamma0(alpha, beta)}
		return
	}
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: -1/2*(alpha^2-beta^2)./(h1+2)./h1
	fac = -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal: 2./(h1+2).*sqrt(i(i+alpha+beta)(i+alpha)(i+beta)./(h1+1)./(h1+3))
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}
	for i := 0; i < N+1; i++ {
		JJ.SetSym(i, i, d0[i])
		if i < N {
			JJ.SetSym(i, i+1, d1[i])
		}
	}

	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	X = eig.Values(nil)
	eig.VectorsTo(VVr)
	g0 := gamma0(alpha, beta)
	W = make([]float64, N+1)
	for i, v := range VVr.RawRowView(0) {
		W[i] = v * v * g0
	}
	return
}

// gamma0 is the integral of the Jacobi weight over [-1,1]
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

// ParseRule selects the panel rule by name
func ParseRule(label string) (rule quad.FixedLocationer, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "legendre", "":
		rule = quad.Legendre{}
	case "jacobi", "golub-welsch":
		rule = JacobiGauss{}
	default:
		err = fmt.Errorf("quadrature: unknown rule %q", label)
	}
	return
}
