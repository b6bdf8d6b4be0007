package OrrSommerfeld

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementMatrix(t *testing.T) {
	A := BuildElementMatrix(func(i, j int) complex128 {
		return complex(float64(4*i+j), float64(i-j))
	})
	{
		assert.Equal(t, complex(6, -1), A.At(1, 2))
		assert.Equal(t, complex(9, 1), A.T().At(1, 2))
		assert.Equal(t, A, A.T().T())
		assert.True(t, A.IsFinite())
		assert.True(t, A.Equal(A, 0))
		assert.False(t, A.Equal(A.T(), 1.e-8))
	}
	{ // Copies are independent
		B := A
		B[0][0] = complex(math.NaN(), 0)
		assert.True(t, A.IsFinite())
		assert.False(t, B.IsFinite())
	}
	{
		C := A.CDense()
		R, I := A.Real(), A.Imag()
		for i := 0; i < NDOF; i++ {
			for j := 0; j < NDOF; j++ {
				assert.Equal(t, A[i][j], C.At(i, j))
				assert.Equal(t, real(A[i][j]), R.At(i, j))
				assert.Equal(t, imag(A[i][j]), I.At(i, j))
			}
		}
	}
	{
		lines := strings.Split(strings.TrimRight(A.String(), "\n"), "\n")
		assert.Len(t, lines, NDOF)
		assert.Contains(t, lines[1], "-1i")
	}
}

func TestElementDescriptor(t *testing.T) {
	ed := ElementDescriptor{N: 4, H: 0.25, K: 3}
	assert.NoError(t, ed.Validate())
	a, b := ed.Bounds()
	assert.Equal(t, 0.75, a)
	assert.Equal(t, 1., b)
	assert.NoError(t, SpectralParams{}.Validate()) // alpha = 0 is a valid wavenumber
}
