// Package Hermite provides the cubic Hermite shape functions of a two node
// element together with their closed form first and second derivatives.
//
// Two families exist and are kept side by side, selected by BasisConvention:
//
//   - Canonical: the four standard cubics on [-1,1], independent of the
//     element size.
//   - ElementLocal: the shapes written in xi = 2y/h, with the slope type
//     functions scaled by h/8. Every function carries the opposite sign of its
//     canonical counterpart, and the two families only coincide (up to that
//     sign) when h = 2. For any other width they give different element
//     matrices.
//
// Both families are indexed 0..3 in this package:
//
//	0: value type, -1 endpoint
//	1: value type, +1 endpoint
//	2: slope type, -1 endpoint
//	3: slope type, +1 endpoint
//
// The ElementLocal family was historically numbered 1..4 in the same order.
package Hermite

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const NumFunctions = 4

var (
	ErrInvalidIndex      = errors.New("hermite: basis index out of range")
	ErrInvalidConvention = errors.New("hermite: unknown basis convention")
	ErrInvalidWidth      = errors.New("hermite: element width must be positive and finite")
)

type BasisConvention uint8

const (
	Canonical BasisConvention = iota
	ElementLocal
)

var conventionNames = map[BasisConvention]string{
	Canonical:    "canonical",
	ElementLocal: "element-local",
}

func (bc BasisConvention) String() string {
	if name, ok := conventionNames[bc]; ok {
		return name
	}
	return fmt.Sprintf("BasisConvention(%d)", uint8(bc))
}

func ParseBasisConvention(label string) (bc BasisConvention, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "canonical", "":
		bc = Canonical
	case "element-local", "elementlocal", "local":
		bc = ElementLocal
	default:
		err = fmt.Errorf("%w: %q", ErrInvalidConvention, label)
	}
	return
}

// Sample holds every basis value and derivative at one coordinate
type Sample struct {
	V, D1, D2 [NumFunctions]float64
}

type Basis interface {
	Convention() BasisConvention
	H(i int, y float64) (float64, error)
	HFirstDerivative(i int, y float64) (float64, error)
	HSecondDerivative(i int, y float64) (float64, error)
	Eval(y float64) Sample
}

// NewBasis returns the family for conv. The element width h is only used by
// the ElementLocal family.
func NewBasis(conv BasisConvention, h float64) (b Basis, err error) {
	switch conv {
	case Canonical:
		b = CanonicalBasis{}
	case ElementLocal:
		if !(h > 0) || math.IsInf(h, 0) {
			err = fmt.Errorf("%w: h = %v", ErrInvalidWidth, h)
			return
		}
		b = ElementLocalBasis{Width: h}
	default:
		err = fmt.Errorf("%w: %d", ErrInvalidConvention, uint8(conv))
	}
	return
}

func checkIndex(i int) error {
	if i < 0 || i >= NumFunctions {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidIndex, i, NumFunctions-1)
	}
	return nil
}
