package numeric

import "math/big"

// Rational is exact arithmetic over *big.Rat.
// Every operation allocates its result, so values can be shared freely.
type Rational struct{}

var _ Arith[*big.Rat] = Rational{}

func (Rational) Zero() *big.Rat { return new(big.Rat) }
func (Rational) One() *big.Rat  { return big.NewRat(1, 1) }

func (Rational) Frac(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

func (Rational) BigInt(n *big.Int) *big.Rat {
	return new(big.Rat).SetInt(n)
}

func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Pow panics when base is zero and exp is negative.
func (Rational) Pow(base *big.Rat, exp int) *big.Rat {
	n := exp
	if n < 0 {
		n = -n
	}
	num := new(big.Int).Exp(base.Num(), big.NewInt(int64(n)), nil)
	den := new(big.Int).Exp(base.Denom(), big.NewInt(int64(n)), nil)
	if exp < 0 {
		num, den = den, num
	}
	return new(big.Rat).SetFrac(num, den)
}

func (Rational) Cmp(a, b *big.Rat) int { return a.Cmp(b) }

func (Rational) Close(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (Rational) Float64(v *big.Rat) float64 {
	f, _ := v.Float64()
	return f
}

func (Rational) String(v *big.Rat) string { return v.RatString() }
