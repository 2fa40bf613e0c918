// Package memory keeps built transition models in process memory so that
// repeated requests for the same board skip the construction.
package memory

import (
	"fmt"

	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/model"
	"github.com/dgraph-io/ristretto/v2"
)

// DefaultMaxEdges bounds the total number of transitions held by a Cache.
const DefaultMaxEdges = 1 << 20

// Cache stores floating point relations by topology fingerprint. Each entry
// costs its number of edges; once the budget is spent, ristretto's admission
// policy decides which boards stay. A relation larger than the whole budget
// is never stored.
// Safe for concurrent use. Stored relations are shared and must not be
// mutated by callers.
type Cache struct {
	store *ristretto.Cache[string, *model.Relation[float64]]
}

// NewCache creates an empty cache holding at most maxEdges transitions.
// A non-positive budget selects DefaultMaxEdges.
func NewCache(maxEdges int64) (*Cache, error) {
	if maxEdges <= 0 {
		maxEdges = DefaultMaxEdges
	}
	store, err := ristretto.NewCache(&ristretto.Config[string, *model.Relation[float64]]{
		NumCounters:        1e4,
		MaxCost:            maxEdges,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create model cache: %w", err)
	}
	return &Cache{store: store}, nil
}

// Get returns the relation built for topo, if any.
func (c *Cache) Get(topo domain.Topology) (*model.Relation[float64], bool) {
	return c.store.Get(topo.Key())
}

// Put stores r under its own topology and waits until the admission
// decision is applied.
func (c *Cache) Put(r *model.Relation[float64]) {
	c.store.Set(r.Topology().Key(), r, int64(r.Len()))
	c.store.Wait()
}

// Close stops the cache's background workers.
func (c *Cache) Close() {
	c.store.Close()
}
