package Hermite

// ElementLocalBasis is the family written in the scaled coordinate
// xi = 2y/h with endpoint signs e = {-1, +1}:
//
//	value type: (xi + e)^2 (xi*e - 2) / 4
//	slope type: -e (xi + e)^2 (xi*e - 1) h / 8
//
// Derivatives are taken with respect to y, dxi/dy = 2/h.
type ElementLocalBasis struct {
	Width float64
}

var endpointSign = [NumFunctions]float64{-1, 1, -1, 1}

func (ElementLocalBasis) Convention() BasisConvention { return ElementLocal }

func (eb ElementLocalBasis) H(i int, y float64) (v float64, err error) {
	if err = checkIndex(i); err != nil {
		return
	}
	v = eb.Eval(y).V[i]
	return
}

func (eb ElementLocalBasis) HFirstDerivative(i int, y float64) (v float64, err error) {
	if err = checkIndex(i); err != nil {
		return
	}
	v = eb.Eval(y).D1[i]
	return
}

func (eb ElementLocalBasis) HSecondDerivative(i int, y float64) (v float64, err error) {
	if err = checkIndex(i); err != nil {
		return
	}
	v = eb.Eval(y).D2[i]
	return
}

func (eb ElementLocalBasis) Eval(y float64) (s Sample) {
	var (
		h   = eb.Width
		xi  = 2 * y / h
		xi2 = xi * xi
	)
	for i := 0; i < 2; i++ {
		e := endpointSign[i]
		// Expanded: (e xi^3 - 3 e xi - 2)/4
		s.V[i] = (xi + e) * (xi + e) * (xi*e - 2) / 4
		s.D1[i] = 3 * e * (xi2 - 1) / (2 * h)
		s.D2[i] = 6 * e * xi / (h * h)
	}
	for i := 2; i < NumFunctions; i++ {
		e := endpointSign[i]
		// Expanded: (-xi^3 - e xi^2 + xi + e) h/8
		s.V[i] = -e * (xi + e) * (xi + e) * (xi*e - 1) * h / 8
		s.D1[i] = (-3*xi2 - 2*e*xi + 1) / 4
		s.D2[i] = -(3*xi + e) / h
	}
	return
}
