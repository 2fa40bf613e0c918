package ports

import (
	"context"
	"errors"

	"github.com/aretw0/boardchain/pkg/domain"
)

// ErrNoSteadyState is returned when a chain has no unique stationary distribution.
var ErrNoSteadyState = errors.New("no unique steady state")

// Chain is a finite Markov chain with row-stochastic semantics.
type Chain interface {
	// States enumerates the state set in index order.
	States() []domain.State

	// Steady returns the stationary distribution. Callers should certify
	// regularity first; reducible chains yield ErrNoSteadyState.
	Steady() (map[domain.State]float64, error)

	// Walk takes length steps from start and returns the terminal state.
	// A nil start picks a state uniformly at random.
	// Returns domain.ErrUnknownState if start is not in the chain.
	Walk(ctx context.Context, length int, start *domain.State) (domain.State, error)
}
