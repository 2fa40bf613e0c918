// Package numeric abstracts the arithmetic used to build transition models.
//
// The dice PMF and the rule engine are written once against Arith and are
// instantiated with Float for floating point matrices and with Rational for
// exact ones.
package numeric

import "math/big"

// Arith supplies the operations the model builders need over a value type T.
// Implementations must not mutate their arguments.
type Arith[T any] interface {
	Zero() T
	One() T
	// Frac returns num/den. den must be non-zero.
	Frac(num, den int64) T
	// BigInt converts an arbitrary precision integer.
	BigInt(n *big.Int) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Pow raises base to an integer exponent, which may be negative.
	Pow(base T, exp int) T
	// Cmp returns -1, 0 or +1 like cmp.Compare.
	Cmp(a, b T) int
	// Close reports equality up to the representation's precision.
	Close(a, b T) bool
	Float64(v T) float64
	String(v T) string
}

// Int returns n as a T.
func Int[T any](a Arith[T], n int64) T {
	return a.Frac(n, 1)
}

// Sum adds all values, returning Zero for an empty input.
func Sum[T any](a Arith[T], vs ...T) T {
	acc := a.Zero()
	for _, v := range vs {
		acc = a.Add(acc, v)
	}
	return acc
}
