package OrrSommerfeld

import (
	"github.com/notargets/poiseuille/Hermite"
)

// Integrand is the weak form of the Orr-Sommerfeld operator for trial function
// s and test function p:
//
//	H''_s H''_p + 2a^2 H'_s H'_p + a^4 H_s H_p
//	  + i a Re U(y) (H''_s - a^2 H_s) H_p - 2 H_s H_p
//
// The operator is not symmetric in (s, p). The assembler binds s to the column
// and p to the row of the element matrix.
func Integrand(b Hermite.Basis, sp SpectralParams, s, p int) func(y float64) complex128 {
	var (
		a2 = sp.Alpha * sp.Alpha
		a4 = a2 * a2
		aR = sp.Alpha * sp.Re
	)
	return func(y float64) complex128 {
		var (
			H          = b.Eval(y)
			Hs, Hp     = H.V[s], H.V[p]
			Hs1, Hp1   = H.D1[s], H.D1[p]
			Hs2, Hp2   = H.D2[s], H.D2[p]
			viscous    = Hs2*Hp2 + 2*a2*Hs1*Hp1 + a4*Hs*Hp - 2*Hs*Hp
			convective = BasicSolution(y) * (Hs2 - a2*Hs) * Hp
		)
		return complex(viscous, 0) + complex(0, aR)*complex(convective, 0)
	}
}
