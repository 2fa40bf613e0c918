// Package report turns steady-state distributions and walk tallies into
// tables for terminals and markdown renderers.
package report

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/aretw0/boardchain/pkg/domain"
)

// Entry is one line of a steady-state report.
type Entry struct {
	State       domain.State
	Label       string
	Probability float64
}

// Expectation is the long-run rent a property earns per turn at hotel level.
type Expectation struct {
	State     domain.State
	Label     string
	HotelCost int
	Expected  float64
}

// Point pairs a signed distance from jail with a steady probability.
type Point struct {
	Offset      int
	Probability float64
}

// Label names a state. Board names are only used when the board matches the
// topology's size; jail sub-states are labelled by turn.
func Label(board domain.Board, topo domain.Topology, s domain.State) string {
	switch topo.Kind(s) {
	case domain.KindJailFirst:
		return fmt.Sprintf("Jail, turn 1 (%d)", s)
	case domain.KindJailSecond:
		return fmt.Sprintf("Jail, turn 2 (%d)", s)
	case domain.KindJailThird:
		return fmt.Sprintf("Jail, turn 3 (%d)", s)
	}
	if board.Size() == topo.Size {
		return fmt.Sprintf("%s (%d)", board.Name(s), s)
	}
	return fmt.Sprintf("Space %d", s)
}

// Steady folds the jail space and its three turn states into a single entry
// and sorts the result by descending probability.
func Steady(dist map[domain.State]float64, board domain.Board, topo domain.Topology) []Entry {
	jail := Entry{State: topo.Jail, Label: Label(board, topo, topo.Jail)}
	out := make([]Entry, 0, topo.Size)
	for s, p := range dist {
		if topo.IsJail(s) {
			jail.Probability += p
			continue
		}
		out = append(out, Entry{State: s, Label: Label(board, topo, s), Probability: p})
	}
	out = append(out, jail)
	sortDescending(out, func(e Entry) (float64, domain.State) { return e.Probability, e.State })
	return out
}

// Expectations weighs every priced property by its steady probability.
func Expectations(dist map[domain.State]float64, board domain.Board, topo domain.Topology) []Expectation {
	if board.Size() != topo.Size {
		return nil
	}
	var out []Expectation
	for _, s := range board.Properties() {
		cost, _ := board.HotelCost(s)
		out = append(out, Expectation{
			State:     s,
			Label:     Label(board, topo, s),
			HotelCost: cost,
			Expected:  dist[s] * float64(cost),
		})
	}
	sortDescending(out, func(e Expectation) (float64, domain.State) { return e.Expected, e.State })
	return out
}

// JailDistance lists the probability of every board space against its
// offset from jail. With includeJail the aggregated jail mass is added at
// offset zero.
func JailDistance(dist map[domain.State]float64, topo domain.Topology, includeJail bool) []Point {
	var out []Point
	jail := 0.0
	for s, p := range dist {
		if topo.IsJail(s) {
			jail += p
			continue
		}
		out = append(out, Point{Offset: int(s) - int(topo.Jail), Probability: p})
	}
	if includeJail {
		out = append(out, Point{Offset: 0, Probability: jail})
	}
	slices.SortFunc(out, func(a, b Point) int { return cmp.Compare(a.Offset, b.Offset) })
	return out
}

func sortDescending[E any](items []E, key func(E) (float64, domain.State)) {
	slices.SortFunc(items, func(a, b E) int {
		pa, sa := key(a)
		pb, sb := key(b)
		if c := cmp.Compare(pb, pa); c != 0 {
			return c
		}
		return cmp.Compare(sa, sb)
	})
}
