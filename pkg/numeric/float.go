package numeric

import (
	"cmp"
	"math"
	"math/big"
	"strconv"
)

// Tolerance is the absolute slack Float.Close allows.
const Tolerance = 1e-9

// Float is double precision arithmetic.
type Float struct{}

var _ Arith[float64] = Float{}

func (Float) Zero() float64 { return 0 }
func (Float) One() float64  { return 1 }

func (Float) Frac(num, den int64) float64 {
	if den == 0 {
		panic("numeric: zero denominator")
	}
	return float64(num) / float64(den)
}

func (Float) BigInt(n *big.Int) float64 {
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

func (Float) Add(a, b float64) float64 { return a + b }
func (Float) Sub(a, b float64) float64 { return a - b }
func (Float) Mul(a, b float64) float64 { return a * b }

func (Float) Pow(base float64, exp int) float64 {
	return math.Pow(base, float64(exp))
}

func (Float) Cmp(a, b float64) int { return cmp.Compare(a, b) }

func (Float) Close(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

func (Float) Float64(v float64) float64 { return v }

func (Float) String(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
