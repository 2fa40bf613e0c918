package model

import (
	"slices"

	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/numeric"
)

// Pair is an ordered (from, to) transition key.
type Pair struct {
	From domain.State
	To   domain.State
}

// Relation is a transition relation over the full state space of a topology.
// It is filled once by Build and is read-only afterwards, so it may be shared
// between assemblers.
type Relation[T any] struct {
	topo  domain.Topology
	arith numeric.Arith[T]
	edges map[Pair]T
}

func newRelation[T any](topo domain.Topology, a numeric.Arith[T]) *Relation[T] {
	return &Relation[T]{
		topo:  topo,
		arith: a,
		edges: make(map[Pair]T),
	}
}

// accumulate adds v to the mass already on (from, to).
func (r *Relation[T]) accumulate(from, to domain.State, v T) {
	p := Pair{From: from, To: to}
	if cur, ok := r.edges[p]; ok {
		r.edges[p] = r.arith.Add(cur, v)
		return
	}
	r.edges[p] = v
}

// set overwrites the mass on (from, to).
func (r *Relation[T]) set(from, to domain.State, v T) {
	r.edges[Pair{From: from, To: to}] = v
}

// Topology returns the topology the relation was built for.
func (r *Relation[T]) Topology() domain.Topology { return r.topo }

// Arith returns the arithmetic the relation was built with.
func (r *Relation[T]) Arith() numeric.Arith[T] { return r.arith }

// At returns the probability of moving from i to j, zero if no rule wrote it.
func (r *Relation[T]) At(i, j domain.State) T {
	if v, ok := r.edges[Pair{From: i, To: j}]; ok {
		return v
	}
	return r.arith.Zero()
}

// Row returns the outgoing transitions of a state. The map is a copy.
func (r *Relation[T]) Row(i domain.State) map[domain.State]T {
	row := make(map[domain.State]T)
	for p, v := range r.edges {
		if p.From == i {
			row[p.To] = v
		}
	}
	return row
}

// RowSum returns the total outgoing mass of a state.
func (r *Relation[T]) RowSum(i domain.State) T {
	var vs []T
	for _, j := range r.topo.States() {
		if v, ok := r.edges[Pair{From: i, To: j}]; ok {
			vs = append(vs, v)
		}
	}
	return numeric.Sum(r.arith, vs...)
}

// Pairs lists every written pair ordered by (From, To).
func (r *Relation[T]) Pairs() []Pair {
	out := make([]Pair, 0, len(r.edges))
	for p := range r.edges {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Pair) int {
		if a.From != b.From {
			return int(a.From - b.From)
		}
		return int(a.To - b.To)
	})
	return out
}

// Len is the number of written pairs, including any that hold zero.
func (r *Relation[T]) Len() int { return len(r.edges) }

// States enumerates the full state space.
func (r *Relation[T]) States() []domain.State { return r.topo.States() }
