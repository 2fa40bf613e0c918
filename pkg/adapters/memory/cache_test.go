package memory_test

import (
	"sync"
	"testing"

	"github.com/aretw0/boardchain/pkg/adapters/memory"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/model"
	"github.com/aretw0/boardchain/pkg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild[T any](t *testing.T, topo domain.Topology, a numeric.Arith[T]) *model.Relation[T] {
	t.Helper()
	rel, err := model.Build(topo, a)
	require.NoError(t, err)
	return rel
}

func newCache(t *testing.T, maxEdges int64) *memory.Cache {
	t.Helper()
	c, err := memory.NewCache(maxEdges)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestCache_GetPut(t *testing.T) {
	c := newCache(t, memory.DefaultMaxEdges)
	topo := domain.DefaultTopology()

	_, ok := c.Get(topo)
	assert.False(t, ok)

	rel := mustBuild[float64](t, topo, numeric.Float{})
	c.Put(rel)

	got, ok := c.Get(topo)
	require.True(t, ok)
	assert.Same(t, rel, got)

	// An equal topology built separately hits the same entry.
	again, err := domain.NewTopology(40, 2, 10, 30, []domain.State{36, 22, 7, 7})
	require.NoError(t, err)
	_, ok = c.Get(again)
	assert.True(t, ok)
}

func TestCache_RejectsRelationsOverBudget(t *testing.T) {
	small, err := domain.NewTopology(12, 2, 3, 9, nil)
	require.NoError(t, err)
	rel := mustBuild[float64](t, small, numeric.Float{})

	c := newCache(t, int64(rel.Len()-1))
	c.Put(rel)

	_, ok := c.Get(small)
	assert.False(t, ok)
}

func TestCache_Concurrent(t *testing.T) {
	c := newCache(t, memory.DefaultMaxEdges)
	small, err := domain.NewTopology(12, 2, 3, 9, nil)
	require.NoError(t, err)
	rel := mustBuild[float64](t, small, numeric.Float{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Put(rel)
			_, _ = c.Get(small)
		}()
	}
	wg.Wait()

	got, ok := c.Get(small)
	require.True(t, ok)
	assert.Same(t, rel, got)
}
