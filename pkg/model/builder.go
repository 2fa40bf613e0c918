/*
Package model turns a board topology into a transition relation.

The rule set is written once, generic over numeric.Arith, so float and exact
relations come from the same code:

  - goto_jail moves to jail_first with probability 1.
  - Any other space rolls the dice. Landing on goto_jail sends the player to
    jail_first. Landing on a chance space keeps them there with probability
    20/32 and otherwise moves them to a uniformly chosen space, with
    goto_jail replaced by jail_first. Every other landing is an ordinary move.
  - The jail turns escape to jail with probability 6^(1-ndice) and otherwise
    advance to the next turn. The third turn rolls as if from jail.

The resulting relation is right-stochastic over all size+3 states.
*/
package model

import (
	"fmt"

	"github.com/aretw0/boardchain/pkg/dice"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/numeric"
)

// Chance cards: ChanceStayCards of ChanceCards leave the player in place,
// the rest move them to a uniformly chosen space.
const (
	ChanceCards     = 32
	ChanceStayCards = 20
	ChanceMoveCards = ChanceCards - ChanceStayCards
)

// Build applies the rule set to topo and returns the complete relation.
// It fails with domain.ErrConfig before writing anything if topo is invalid.
func Build[T any](topo domain.Topology, a numeric.Arith[T]) (*Relation[T], error) {
	if err := topo.Validate(); err != nil {
		return nil, fmt.Errorf("build transition model: %w", err)
	}

	b := &builder[T]{
		topo:    topo,
		arith:   a,
		rel:     newRelation(topo, a),
		weights: dice.Distribution(a, topo.Dice, domain.Faces),
	}
	b.jailTurns()
	for s := 0; s < topo.Size; s++ {
		b.space(domain.State(s))
	}
	return b.rel, nil
}

// EscapeProbability is the chance that all ndice dice show the same face.
func EscapeProbability[T any](a numeric.Arith[T], ndice int) T {
	return a.Pow(numeric.Int(a, domain.Faces), 1-ndice)
}

type builder[T any] struct {
	topo    domain.Topology
	arith   numeric.Arith[T]
	rel     *Relation[T]
	weights []T // weights[advance] = P(dice total == advance)
}

func (b *builder[T]) jailTurns() {
	a := b.arith
	t := b.topo

	escape := EscapeProbability(a, t.Dice)
	stay := a.Sub(a.One(), escape)

	b.rel.set(t.JailFirst(), t.Jail, escape)
	b.rel.set(t.JailFirst(), t.JailSecond(), stay)
	b.rel.set(t.JailSecond(), t.Jail, escape)
	b.rel.set(t.JailSecond(), t.JailThird(), stay)

	// Forced release: the roll is taken from jail, without chance cards.
	for adv := t.MinAdvance(); adv <= t.MaxAdvance(); adv++ {
		to := t.Redirect(t.Advance(t.Jail, adv))
		b.rel.accumulate(t.JailThird(), to, b.weights[adv])
	}
}

func (b *builder[T]) space(s domain.State) {
	t := b.topo
	if s == t.GoToJail {
		// Unreachable in play, but the row must still be stochastic.
		b.rel.set(s, t.JailFirst(), b.arith.One())
		return
	}
	for adv := t.MinAdvance(); adv <= t.MaxAdvance(); adv++ {
		b.land(s, t.Advance(s, adv), b.weights[adv])
	}
}

func (b *builder[T]) land(from, effect domain.State, w T) {
	a := b.arith
	t := b.topo

	switch {
	case effect == t.GoToJail:
		b.rel.accumulate(from, t.JailFirst(), w)
	case t.IsChance(effect):
		b.rel.accumulate(from, effect, a.Mul(a.Frac(ChanceStayCards, ChanceCards), w))

		spread := a.Mul(a.Frac(ChanceMoveCards, int64(ChanceCards*t.Size)), w)
		for c := 0; c < t.Size; c++ {
			b.rel.accumulate(from, t.Redirect(domain.State(c)), spread)
		}
	default:
		b.rel.accumulate(from, effect, w)
	}
}
