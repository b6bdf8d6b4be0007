package utils

import (
	"math"
)

// IsFinite reports whether none of vals is NaN or Inf
func IsFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func IsFiniteC(vals ...complex128) bool {
	for _, v := range vals {
		if !IsFinite(real(v), imag(v)) {
			return false
		}
	}
	return true
}
