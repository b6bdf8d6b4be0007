package quadrature

import (
	"fmt"
)

type Part uint8

const (
	RealPart Part = iota
	ImagPart
	UnknownPart // the failure was not attributed to either half
)

func (p Part) String() string {
	switch p {
	case RealPart:
		return "real"
	case ImagPart:
		return "imaginary"
	case UnknownPart:
		return "unknown"
	}
	return fmt.Sprintf("Part(%d)", uint8(p))
}

// PartError records which half of a complex integrand failed to integrate
type PartError struct {
	Part Part
	Err  error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("integrating %s part: %v", e.Part, e.Err)
}

func (e *PartError) Unwrap() error { return e.Err }

// Split derives two real integrands from one complex integrand
func Split(f func(float64) complex128) (re, im func(float64) float64) {
	re = func(y float64) float64 { return real(f(y)) }
	im = func(y float64) float64 { return imag(f(y)) }
	return
}

// IntegrateComplex integrates the real and imaginary parts of f separately
// over [a, b] and recombines them as re + i*im
func IntegrateComplex(in Integrator, f func(float64) complex128, a, b float64) (val complex128, err error) {
	var (
		fRe, fIm = Split(f)
		re, im   Result
	)
	if re, err = in.Integrate(fRe, a, b); err != nil {
		err = &PartError{Part: RealPart, Err: err}
		return
	}
	if im, err = in.Integrate(fIm, a, b); err != nil {
		err = &PartError{Part: ImagPart, Err: err}
		return
	}
	val = complex(re.Estimate, im.Estimate)
	return
}
