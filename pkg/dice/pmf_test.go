package dice_test

import (
	"math/big"
	"testing"

	"github.com/aretw0/boardchain/pkg/dice"
	"github.com/aretw0/boardchain/pkg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want int64
	}{
		{5, 2, 10},
		{6, 0, 1},
		{6, 6, 1},
		{0, 0, 1},
		{3, 4, 0},
		{-1, 0, 0},
		{4, -1, 0},
		{-3, -1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dice.Binomial(tt.n, tt.k).Int64(), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestPMF_TwoDice(t *testing.T) {
	r := numeric.Rational{}

	want := map[int]string{
		2: "1/36", 3: "1/18", 4: "1/12", 5: "1/9", 6: "5/36", 7: "1/6",
		8: "5/36", 9: "1/9", 10: "1/12", 11: "1/18", 12: "1/36",
	}
	for p, w := range want {
		assert.Equal(t, w, r.String(dice.PMF[*big.Rat](r, p, 2, 6)), "p=%d", p)
	}
	assert.InDelta(t, 6.0/36, dice.PMF[float64](numeric.Float{}, 7, 2, 6), 1e-15)
}

func TestPMF_OutOfRangeIsZero(t *testing.T) {
	r := numeric.Rational{}

	for _, p := range []int{-3, 0, 1, 13, 40} {
		assert.Equal(t, 0, dice.PMF[*big.Rat](r, p, 2, 6).Sign(), "p=%d", p)
		assert.Zero(t, dice.PMF[float64](numeric.Float{}, p, 2, 6), "p=%d", p)
	}
	assert.Zero(t, dice.PMF[float64](numeric.Float{}, 3, 0, 6))
	assert.Zero(t, dice.PMF[float64](numeric.Float{}, 3, 2, 0))
}

func TestPMF_SumsToOne(t *testing.T) {
	r := numeric.Rational{}
	f := numeric.Float{}

	for n := 1; n <= 5; n++ {
		for s := 1; s <= 8; s++ {
			lo, hi := dice.Range(n, s)
			exact := r.Zero()
			approx := 0.0
			for p := lo; p <= hi; p++ {
				exact = r.Add(exact, dice.PMF[*big.Rat](r, p, n, s))
				approx += dice.PMF[float64](f, p, n, s)
			}
			require.True(t, r.Close(exact, r.One()), "n=%d s=%d exact sum %s", n, s, r.String(exact))
			require.InDelta(t, 1.0, approx, 1e-9, "n=%d s=%d", n, s)
		}
	}
}

func TestPMF_FloatMatchesExactManyDice(t *testing.T) {
	r := numeric.Rational{}
	f := numeric.Float{}

	for n := 1; n <= 30; n++ {
		lo, hi := dice.Range(n, 6)
		sum := 0.0
		for p := lo; p <= hi; p++ {
			approx := dice.PMF[float64](f, p, n, 6)
			want := r.Float64(dice.PMF[*big.Rat](r, p, n, 6))
			require.GreaterOrEqual(t, approx, 0.0, "n=%d p=%d", n, p)
			require.InDelta(t, want, approx, 1e-15, "n=%d p=%d", n, p)
			sum += approx
		}
		require.InDelta(t, 1.0, sum, 1e-12, "n=%d", n)
	}
}

func TestWays(t *testing.T) {
	assert.Equal(t, int64(6), dice.Ways(7, 2, 6).Int64())
	assert.Equal(t, int64(27), dice.Ways(10, 3, 6).Int64())
	assert.Zero(t, dice.Ways(1, 2, 6).Sign())
	assert.Zero(t, dice.Ways(5, 0, 6).Sign())

	total := new(big.Int)
	for p := 20; p <= 120; p++ {
		total.Add(total, dice.Ways(p, 20, 6))
	}
	assert.Equal(t, new(big.Int).Exp(big.NewInt(6), big.NewInt(20), nil).String(), total.String())
}

func TestPMF_Symmetry(t *testing.T) {
	r := numeric.Rational{}

	for n := 1; n <= 4; n++ {
		for s := 2; s <= 7; s++ {
			lo, hi := dice.Range(n, s)
			for p := lo; p <= hi; p++ {
				mirror := n*(s+1) - p
				a := dice.PMF[*big.Rat](r, p, n, s)
				b := dice.PMF[*big.Rat](r, mirror, n, s)
				require.True(t, r.Close(a, b), "n=%d s=%d p=%d", n, s, p)
			}
		}
	}
}

func TestPMF_MatchesEnumeration(t *testing.T) {
	const n, s = 3, 6
	counts := make(map[int]int64)
	for a := 1; a <= s; a++ {
		for b := 1; b <= s; b++ {
			for c := 1; c <= s; c++ {
				counts[a+b+c]++
			}
		}
	}

	r := numeric.Rational{}
	for p, c := range counts {
		assert.Equal(t, big.NewRat(c, 216).RatString(), r.String(dice.PMF[*big.Rat](r, p, n, s)), "p=%d", p)
	}
}

func TestDistribution(t *testing.T) {
	dist := dice.Distribution[float64](numeric.Float{}, 2, 6)

	require.Len(t, dist, 13)
	assert.Zero(t, dist[0])
	assert.Zero(t, dist[1])
	assert.InDelta(t, 1.0/36, dist[12], 1e-15)
	assert.Nil(t, dice.Distribution[float64](numeric.Float{}, 0, 6))
}
