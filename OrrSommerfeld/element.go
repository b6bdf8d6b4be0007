package OrrSommerfeld

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/poiseuille/Hermite"
	"github.com/notargets/poiseuille/utils"
)

const NDOF = Hermite.NumFunctions // Local degrees of freedom per element

// ElementDescriptor locates element K of N uniform elements of width H,
// occupying [K*H, (K+1)*H]
type ElementDescriptor struct {
	N int
	H float64
	K int
}

func (ed ElementDescriptor) Validate() error {
	switch {
	case ed.N < 1:
		return fmt.Errorf("%w: element count N = %d", ErrInvalidElementDescriptor, ed.N)
	case !(ed.H > 0) || math.IsInf(ed.H, 0):
		return fmt.Errorf("%w: element width h = %v", ErrInvalidElementDescriptor, ed.H)
	case ed.K < 0 || ed.K > ed.N-1:
		return fmt.Errorf("%w: element index k = %d not in [0,%d]", ErrInvalidElementDescriptor, ed.K, ed.N-1)
	}
	return nil
}

func (ed ElementDescriptor) Bounds() (a, b float64) {
	a, b = float64(ed.K)*ed.H, float64(ed.K+1)*ed.H
	return
}

// SpectralParams are constant over the whole discretization
type SpectralParams struct {
	Alpha float64 // Streamwise wavenumber
	Re    float64 // Reynolds number
}

func (sp SpectralParams) Validate() error {
	if !utils.IsFinite(sp.Alpha, sp.Re) {
		return fmt.Errorf("%w: alpha = %v, Re = %v", ErrInvalidSpectralParams, sp.Alpha, sp.Re)
	}
	return nil
}

// ElementMatrix is the 4x4 complex element matrix, row index bound to the test
// function and column index to the trial function. It is a value type, every
// copy is independent.
type ElementMatrix [NDOF][NDOF]complex128

// BuildElementMatrix fills every entry from fn(row, col)
func BuildElementMatrix(fn func(i, j int) complex128) (A ElementMatrix) {
	for i := 0; i < NDOF; i++ {
		for j := 0; j < NDOF; j++ {
			A[i][j] = fn(i, j)
		}
	}
	return
}

func (A ElementMatrix) At(i, j int) complex128 { return A[i][j] }

func (A ElementMatrix) T() ElementMatrix {
	return BuildElementMatrix(func(i, j int) complex128 { return A[j][i] })
}

// Equal compares both parts of every entry within an absolute or relative tolerance
func (A ElementMatrix) Equal(B ElementMatrix, tol float64) bool {
	for i := 0; i < NDOF; i++ {
		for j := 0; j < NDOF; j++ {
			a, b := A[i][j], B[i][j]
			if !scalar.EqualWithinAbsOrRel(real(a), real(b), tol, tol) ||
				!scalar.EqualWithinAbsOrRel(imag(a), imag(b), tol, tol) {
				return false
			}
		}
	}
	return true
}

func (A ElementMatrix) IsFinite() bool {
	for i := 0; i < NDOF; i++ {
		if !utils.IsFiniteC(A[i][:]...) {
			return false
		}
	}
	return true
}

func (A ElementMatrix) CDense() (C *mat.CDense) {
	C = mat.NewCDense(NDOF, NDOF, nil)
	for i := 0; i < NDOF; i++ {
		for j := 0; j < NDOF; j++ {
			C.Set(i, j, A[i][j])
		}
	}
	return
}

func (A ElementMatrix) Real() *mat.Dense {
	return A.part(func(c complex128) float64 { return real(c) })
}
func (A ElementMatrix) Imag() *mat.Dense {
	return A.part(func(c complex128) float64 { return imag(c) })
}

func (A ElementMatrix) part(get func(complex128) float64) (R *mat.Dense) {
	R = mat.NewDense(NDOF, NDOF, nil)
	for i := 0; i < NDOF; i++ {
		for j := 0; j < NDOF; j++ {
			R.Set(i, j, get(A[i][j]))
		}
	}
	return
}

func (A ElementMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < NDOF; i++ {
		for j := 0; j < NDOF; j++ {
			if j != 0 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(&sb, "%12.6g %+12.6gi", real(A[i][j]), imag(A[i][j]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
