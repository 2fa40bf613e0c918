package assemble

import (
	"math/big"

	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/model"
	"github.com/aretw0/boardchain/pkg/numeric"
	"gonum.org/v1/gonum/mat"
)

// Dense returns the column-stochastic float matrix with goto_jail excised.
// Entry (i, j) is the probability of moving from Labels()[j] to Labels()[i].
func Dense(r *model.Relation[float64]) *mat.Dense {
	t := Column(r)
	return mat.NewDense(t.rows, t.cols, t.data)
}

// Exact is Dense with exact rational entries.
func Exact(r *model.Relation[*big.Rat]) *Table[*big.Rat] {
	return Column(r)
}

// ToDense casts an exact table to a float matrix.
func ToDense(t *Table[*big.Rat]) *mat.Dense {
	f := Map(t, numeric.Rational{}.Float64)
	return mat.NewDense(f.rows, f.cols, f.data)
}

// Labels maps a Dense/Exact row or column index back to its state.
func Labels(topo domain.Topology) []domain.State {
	out := make([]domain.State, 0, topo.NumStates()-1)
	for _, s := range topo.States() {
		if s != topo.GoToJail {
			out = append(out, s)
		}
	}
	return out
}
