// Package dice computes the probability mass function of the sum of fair dice.
//
// The mass is derived by inclusion-exclusion over the generating function
// (x + x² + … + xˢ)ⁿ rather than by enumerating outcomes:
//
//	P(p) = s⁻ⁿ · Σ_{k=0}^{⌊(p-n)/s⌋} (-1)ᵏ · C(n,k) · C(p - s·k - 1, n-1)
//
// The count is exact; only the final scaling is generic over numeric.Arith,
// so the same code yields floating point or exact rational masses.
package dice

import (
	"math/big"

	"github.com/aretw0/boardchain/pkg/numeric"
)

// Binomial returns C(n, k), or 0 when k < 0, n < 0 or n < k.
// Out-of-domain terms are part of the inclusion-exclusion sum and must vanish.
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || n < k {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// Range returns the smallest and largest total of n s-sided dice.
func Range(n, s int) (lo, hi int) {
	return n, n * s
}

// PMF returns the probability that n fair s-sided dice sum to p.
// It returns zero when p is outside [n, n·s] or when n or s is below one.
func PMF[T any](a numeric.Arith[T], p, n, s int) T {
	if n < 1 || s < 1 {
		return a.Zero()
	}
	lo, hi := Range(n, s)
	if p < lo || p > hi {
		return a.Zero()
	}

	return a.Mul(a.BigInt(Ways(p, n, s)), a.Pow(numeric.Int(a, int64(s)), -n))
}

// Ways counts the outcomes of n s-sided dice that sum to p.
// The alternating sum is taken in integers so that a floating point PMF is
// rounded once, not once per term.
func Ways(p, n, s int) *big.Int {
	count := new(big.Int)
	if n < 1 || s < 1 {
		return count
	}
	if lo, hi := Range(n, s); p < lo || p > hi {
		return count
	}
	term := new(big.Int)
	for k := 0; k <= floorDiv(p-n, s); k++ {
		term.Mul(Binomial(n, k), Binomial(p-s*k-1, n-1))
		if k%2 == 0 {
			count.Add(count, term)
		} else {
			count.Sub(count, term)
		}
	}
	return count
}

// Distribution returns PMF for every total in Range(n, s), indexed by total.
// Entries below n are zero.
func Distribution[T any](a numeric.Arith[T], n, s int) []T {
	if n < 1 || s < 1 {
		return nil
	}
	_, hi := Range(n, s)
	out := make([]T, hi+1)
	for p := range out {
		out[p] = PMF(a, p, n, s)
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
