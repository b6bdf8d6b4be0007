package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// CSparse is a complex valued sparse matrix held as separate real and
// imaginary DOK matrices, since the sparse formats only carry float64
type CSparse struct {
	Re, Im   *sparse.DOK
	readOnly bool
	name     string
}

func NewCSparse(nr, nc int) (R *CSparse) {
	R = &CSparse{
		Re:   sparse.NewDOK(nr, nc),
		Im:   sparse.NewDOK(nr, nc),
		name: "unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

func (m *CSparse) Dims() (r, c int) { return m.Re.Dims() }

func (m *CSparse) At(i, j int) complex128 {
	return complex(m.Re.At(i, j), m.Im.At(i, j))
}

// AddAt accumulates val into (i, j), the scatter operation of finite element
// assembly. Zero parts are not stored.
func (m *CSparse) AddAt(i, j int, val complex128) {
	m.checkWritable()
	if re := real(val); re != 0 {
		m.Re.Set(i, j, m.Re.At(i, j)+re)
	}
	if im := imag(val); im != 0 {
		m.Im.Set(i, j, m.Im.At(i, j)+im)
	}
}

// NNZ is the number of positions holding a stored real or imaginary part
func (m *CSparse) NNZ() (nnz int) {
	var (
		seen = make(map[[2]int]struct{}, m.Re.NNZ())
	)
	m.Re.DoNonZero(func(i, j int, _ float64) { seen[[2]int{i, j}] = struct{}{} })
	m.Im.DoNonZero(func(i, j int, _ float64) { seen[[2]int{i, j}] = struct{}{} })
	nnz = len(seen)
	return
}

func (m *CSparse) SetReadOnly(name ...string) *CSparse {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return m
}

func (m *CSparse) IsReadOnly() bool { return m.readOnly }

func (m *CSparse) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

// ToCSR converts both parts to compressed sparse row form for downstream solvers
func (m *CSparse) ToCSR() (re, im *sparse.CSR) {
	re, im = m.Re.ToCSR(), m.Im.ToCSR()
	return
}

// ToCDense expands the matrix into a dense complex matrix, only sensible for
// small systems
func (m *CSparse) ToCDense() (C *mat.CDense) {
	var (
		nr, nc = m.Dims()
	)
	C = mat.NewCDense(nr, nc, nil)
	m.Re.DoNonZero(func(i, j int, v float64) {
		C.Set(i, j, C.At(i, j)+complex(v, 0))
	})
	m.Im.DoNonZero(func(i, j int, v float64) {
		C.Set(i, j, C.At(i, j)+complex(0, v))
	})
	return
}
