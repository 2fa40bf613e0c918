package assemble

import (
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/model"
)

// SparseChain is the pair-keyed, row-stochastic form over the full state
// space. goto_jail is kept; zero-mass pairs are omitted.
type SparseChain struct {
	Topology domain.Topology
	Edges    map[model.Pair]float64
}

// Sparse materializes r without excision or transposition.
func Sparse(r *model.Relation[float64]) SparseChain {
	edges := make(map[model.Pair]float64, r.Len())
	for _, p := range r.Pairs() {
		if v := r.At(p.From, p.To); v != 0 {
			edges[p] = v
		}
	}
	return SparseChain{Topology: r.Topology(), Edges: edges}
}

// States enumerates the chain's state space.
func (c SparseChain) States() []domain.State {
	return c.Topology.States()
}

// Row returns the successors of s and their probabilities.
func (c SparseChain) Row(s domain.State) map[domain.State]float64 {
	row := make(map[domain.State]float64)
	for p, v := range c.Edges {
		if p.From == s {
			row[p.To] = v
		}
	}
	return row
}

// Prob returns the probability of moving from i to j.
func (c SparseChain) Prob(i, j domain.State) float64 {
	return c.Edges[model.Pair{From: i, To: j}]
}
