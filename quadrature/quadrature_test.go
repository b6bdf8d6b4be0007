package quadrature

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptive(t *testing.T) {
	in := NewAdaptive()
	{ // Polynomials of degree <= 2*Order-1 are exact on a single panel
		f := func(x float64) float64 { return 3*x*x*x*x*x*x - x*x + 2 }
		res, err := in.Integrate(f, 0.5, 1.5)
		require.NoError(t, err)
		exact := 3./7.*(math.Pow(1.5, 7)-math.Pow(0.5, 7)) - (math.Pow(1.5, 3)-math.Pow(0.5, 3))/3 + 2
		assert.InDelta(t, exact, res.Estimate, 1.e-13)
		assert.Equal(t, 1, res.Intervals)
		assert.Less(t, res.ErrorBound, 1.e-12)
	}
	{ // Smooth transcendental integrands
		res, err := in.Integrate(math.Sin, 0, math.Pi)
		require.NoError(t, err)
		assert.InDelta(t, 2., res.Estimate, 1.e-10)
		res, err = in.Integrate(math.Exp, 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, math.E-1, res.Estimate, 1.e-10)
	}
	{ // Endpoint singularity forces subdivision
		sq := &Adaptive{Order: 5, AbsTol: 1.e-7, MaxSubdivisions: 200}
		res, err := sq.Integrate(math.Sqrt, 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, 2./3., res.Estimate, 1.e-6)
		assert.Greater(t, res.Intervals, 1)
	}
	{ // Empty interval
		res, err := in.Integrate(math.Exp, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 0., res.Estimate)
	}
}

func TestAdaptiveFailures(t *testing.T) {
	{
		tight := &Adaptive{Order: 2, AbsTol: 1.e-14, MaxSubdivisions: 1}
		_, err := tight.Integrate(math.Sqrt, 0, 1)
		assert.ErrorIs(t, err, ErrNotConverged)
	}
	{
		_, err := NewAdaptive().Integrate(func(float64) float64 { return math.NaN() }, 0, 1)
		assert.ErrorIs(t, err, ErrNonFinite)
	}
	{
		in := NewAdaptive()
		_, err := in.Integrate(math.Exp, 1, 0)
		assert.ErrorIs(t, err, ErrBadInterval)
		_, err = in.Integrate(math.Exp, 0, math.Inf(1))
		assert.ErrorIs(t, err, ErrBadInterval)
	}
	{ // Zero valued settings fall back to defaults
		var zero Adaptive
		res, err := zero.Integrate(math.Exp, 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, math.E-1, res.Estimate, 1.e-10)
	}
}

func TestIntegrateComplex(t *testing.T) {
	in := NewAdaptive()
	{
		f := func(y float64) complex128 { return complex(y*y, 3*y) }
		val, err := IntegrateComplex(in, f, 0, 2)
		require.NoError(t, err)
		assert.InDelta(t, 8./3., real(val), 1.e-12)
		assert.InDelta(t, 6., imag(val), 1.e-12)
	}
	{ // The failing half is reported
		f := func(y float64) complex128 { return complex(y, math.NaN()) }
		_, err := IntegrateComplex(in, f, 0, 1)
		var pe *PartError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, ImagPart, pe.Part)
		assert.ErrorIs(t, err, ErrNonFinite)
		assert.Contains(t, err.Error(), "imaginary")
	}
	{
		re, im := Split(func(y float64) complex128 { return complex(2*y, -y) })
		assert.Equal(t, 4., re(2))
		assert.Equal(t, -2., im(2))
	}
	{
		assert.Equal(t, "real", RealPart.String())
		assert.Equal(t, "imaginary", ImagPart.String())
		assert.Equal(t, "unknown", UnknownPart.String())
		assert.Equal(t, "Part(9)", Part(9).String())
	}
}
