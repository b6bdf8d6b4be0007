package OrrSommerfeld

// BasicSolution is the dimensionless undisturbed plane Poiseuille profile,
// U(y) = 1 - y^2, with the channel walls at y = -1 and y = 1
func BasicSolution(y float64) float64 {
	return 1 - y*y
}
