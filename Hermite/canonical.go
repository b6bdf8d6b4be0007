package Hermite

// CanonicalBasis is the standard cubic Hermite family on [-1,1]
type CanonicalBasis struct{}

func (CanonicalBasis) Convention() BasisConvention { return Canonical }

func (cb CanonicalBasis) H(i int, y float64) (v float64, err error) {
	if err = checkIndex(i); err != nil {
		return
	}
	v = cb.Eval(y).V[i]
	return
}

func (cb CanonicalBasis) HFirstDerivative(i int, y float64) (v float64, err error) {
	if err = checkIndex(i); err != nil {
		return
	}
	v = cb.Eval(y).D1[i]
	return
}

func (cb CanonicalBasis) HSecondDerivative(i int, y float64) (v float64, err error) {
	if err = checkIndex(i); err != nil {
		return
	}
	v = cb.Eval(y).D2[i]
	return
}

func (CanonicalBasis) Eval(y float64) (s Sample) {
	var (
		y2 = y * y
		y3 = y2 * y
	)
	// (1-y)^2 (2+y)/4, (1+y)^2 (2-y)/4, (1-y)^2 (1+y)/4, (1+y)^2 (y-1)/4
	s.V = [NumFunctions]float64{
		(2 - 3*y + y3) / 4,
		(2 + 3*y - y3) / 4,
		(1 - y - y2 + y3) / 4,
		(-1 - y + y2 + y3) / 4,
	}
	s.D1 = [NumFunctions]float64{
		(3*y2 - 3) / 4,
		(3 - 3*y2) / 4,
		(-1 - 2*y + 3*y2) / 4,
		(-1 + 2*y + 3*y2) / 4,
	}
	s.D2 = [NumFunctions]float64{
		1.5 * y,
		-1.5 * y,
		(3*y - 1) / 2,
		(3*y + 1) / 2,
	}
	return
}
