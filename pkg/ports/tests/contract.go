package tests

import (
	"context"
	"testing"

	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ChainContractTest is a reusable test suite that verifies if an adapter
// complies with ports.Chain. The chain must be regular.
func ChainContractTest(t *testing.T, chain ports.Chain) {
	t.Helper()
	ctx := context.Background()

	states := chain.States()
	require.NotEmpty(t, states, "States should enumerate at least one state")

	known := make(map[domain.State]bool, len(states))
	for _, s := range states {
		known[s] = true
	}

	t.Run("Steady sums to one", func(t *testing.T) {
		dist, err := chain.Steady()
		require.NoError(t, err)

		sum := 0.0
		for s, p := range dist {
			assert.True(t, known[s], "steady state %d is not a chain state", s)
			assert.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("Walk from start", func(t *testing.T) {
		start := states[0]
		end, err := chain.Walk(ctx, 25, &start)
		require.NoError(t, err)
		assert.True(t, known[end], "walk ended in unknown state %d", end)
	})

	t.Run("Walk of length zero", func(t *testing.T) {
		start := states[len(states)-1]
		end, err := chain.Walk(ctx, 0, &start)
		require.NoError(t, err)
		assert.Equal(t, start, end)
	})

	t.Run("Walk from random start", func(t *testing.T) {
		end, err := chain.Walk(ctx, 10, nil)
		require.NoError(t, err)
		assert.True(t, known[end])
	})

	t.Run("Walk from unknown state", func(t *testing.T) {
		bogus := domain.State(-1)
		_, err := chain.Walk(ctx, 3, &bogus)
		assert.ErrorIs(t, err, domain.ErrUnknownState)
	})

	t.Run("Walk honours cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := chain.Walk(cctx, 1000, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
