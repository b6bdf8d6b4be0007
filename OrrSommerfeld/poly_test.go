package OrrSommerfeld

// poly is a polynomial in y with ascending coefficients, used to integrate the
// weak form exactly as a reference for the quadrature
type poly []float64

func (p poly) mul(q poly) (r poly) {
	r = make(poly, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			r[i+j] += a * b
		}
	}
	return
}

func (p poly) add(qs ...poly) (r poly) {
	n := len(p)
	for _, q := range qs {
		n = max(n, len(q))
	}
	r = make(poly, n)
	copy(r, p)
	for _, q := range qs {
		for i, c := range q {
			r[i] += c
		}
	}
	return
}

func (p poly) scale(s float64) (r poly) {
	r = make(poly, len(p))
	for i, c := range p {
		r[i] = s * c
	}
	return
}

func (p poly) deriv() (r poly) {
	if len(p) < 2 {
		return poly{0}
	}
	r = make(poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		r[i-1] = float64(i) * p[i]
	}
	return
}

func (p poly) eval(y float64) (v float64) {
	for i := len(p) - 1; i >= 0; i-- {
		v = v*y + p[i]
	}
	return
}

func (p poly) integrate(a, b float64) float64 {
	anti := make(poly, len(p)+1)
	for i, c := range p {
		anti[i+1] = c / float64(i+1)
	}
	return anti.eval(b) - anti.eval(a)
}

var canonicalPolys = [NDOF]poly{
	{0.5, -0.75, 0, 0.25},
	{0.5, 0.75, 0, -0.25},
	{0.25, -0.25, -0.25, 0.25},
	{-0.25, -0.25, 0.25, 0.25},
}

// elementLocalPolys expands the xi = 2y/h shapes in powers of y
func elementLocalPolys(h float64) (ps [NDOF]poly) {
	var (
		c = 2 / h
	)
	for i, e := range []float64{-1, 1} {
		ps[i] = poly{-0.5, -0.75 * e * c, 0, 0.25 * e * c * c * c}
	}
	for i, e := range []float64{-1, 1} {
		ps[i+2] = poly{e, c, -e * c * c, -c * c * c}.scale(h / 8)
	}
	return
}

// exactElementMatrix integrates the weak form of polynomial shapes exactly
func exactElementMatrix(ps [NDOF]poly, sp SpectralParams, a, b float64) ElementMatrix {
	var (
		a2 = sp.Alpha * sp.Alpha
		a4 = a2 * a2
		U  = poly{1, 0, -1}
	)
	return BuildElementMatrix(func(i, j int) complex128 {
		var (
			Hs, Hp = ps[j], ps[i]
			Hs1    = Hs.deriv()
			Hs2    = Hs1.deriv()
			Hp1    = Hp.deriv()
			Hp2    = Hp1.deriv()
		)
		viscous := Hs2.mul(Hp2).add(Hs1.mul(Hp1).scale(2*a2), Hs.mul(Hp).scale(a4-2))
		convective := U.mul(Hs2.add(Hs.scale(-a2))).mul(Hp).scale(sp.Alpha * sp.Re)
		return complex(viscous.integrate(a, b), convective.integrate(a, b))
	})
}
