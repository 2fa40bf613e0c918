package ports

import "gonum.org/v1/gonum/mat"

// RegularityOracle certifies that a stochastic matrix is regular, i.e. that
// some finite power of it is strictly positive.
type RegularityOracle interface {
	// Power returns m raised to the n-th power. m must be square.
	Power(m mat.Matrix, n int) *mat.Dense

	// Positive reports whether every entry of m is strictly greater than zero.
	Positive(m mat.Matrix) bool
}

// Regular reports whether m^n is strictly positive.
func Regular(o RegularityOracle, m mat.Matrix, n int) bool {
	return o.Positive(o.Power(m, n))
}
