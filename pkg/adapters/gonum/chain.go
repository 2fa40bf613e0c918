// Package gonum implements ports.Chain and ports.RegularityOracle on top of
// gonum's dense linear algebra and categorical sampling.
package gonum

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/aretw0/boardchain/internal/random"
	"github.com/aretw0/boardchain/pkg/assemble"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/ports"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// steadyTolerance absorbs solver round-off on states with zero stationary mass.
const steadyTolerance = 1e-12

// Chain is a ports.Chain over a sparse row-stochastic model.
// Safe for concurrent use.
type Chain struct {
	states []domain.State
	index  map[domain.State]int
	rows   map[domain.State]successors
	sparse assemble.SparseChain

	mu  sync.Mutex
	rng *rand.Rand
}

type successors struct {
	targets []domain.State
	pick    distuv.Categorical
}

var _ ports.Chain = (*Chain)(nil)

// Option configures a Chain.
type Option func(*chainConfig)

type chainConfig struct {
	src rand.Source
}

// WithSeed makes walks reproducible.
func WithSeed(seed uint64) Option {
	return func(c *chainConfig) {
		c.src = random.NewSource(seed)
	}
}

// NewChain indexes the sparse model for solving and sampling.
func NewChain(sc assemble.SparseChain, opts ...Option) (*Chain, error) {
	cfg := chainConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, err
		}
		cfg.src = random.NewSource(seed)
	}

	c := &Chain{
		states: sc.States(),
		index:  make(map[domain.State]int),
		rows:   make(map[domain.State]successors),
		sparse: sc,
		rng:    rand.New(cfg.src),
	}
	for i, s := range c.states {
		c.index[s] = i
	}

	// The Categorical samplers draw from c.rng, which Walk guards with c.mu.
	for _, s := range c.states {
		row := sc.Row(s)
		if len(row) == 0 {
			continue
		}
		succ := successors{targets: make([]domain.State, 0, len(row))}
		for _, to := range c.states {
			if _, ok := row[to]; ok {
				succ.targets = append(succ.targets, to)
			}
		}
		weights := make([]float64, len(succ.targets))
		for i, to := range succ.targets {
			weights[i] = row[to]
		}
		succ.pick = distuv.NewCategorical(weights, c.rng)
		c.rows[s] = succ
	}
	return c, nil
}

// States enumerates the state set in index order.
func (c *Chain) States() []domain.State {
	out := make([]domain.State, len(c.states))
	copy(out, c.states)
	return out
}

// Steady solves π·P = π with Σπ = 1.
// One balance equation is redundant for a stochastic matrix, so it is
// replaced by the normalization row.
func (c *Chain) Steady() (map[domain.State]float64, error) {
	n := len(c.states)
	a := mat.NewDense(n, n, nil)
	for p, v := range c.sparse.Edges {
		i, j := c.index[p.From], c.index[p.To]
		a.Set(j, i, a.At(j, i)+v)
	}
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)-1)
	}
	for j := 0; j < n; j++ {
		a.Set(n-1, j, 1)
	}
	b := mat.NewVecDense(n, nil)
	b.SetVec(n-1, 1)

	var pi mat.VecDense
	if err := pi.SolveVec(a, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%w: %v", ports.ErrNoSteadyState, err)
		}
		// Ill-conditioned but solved; the checks below decide.
	}

	dist := make(map[domain.State]float64, n)
	sum := 0.0
	for i, s := range c.states {
		v := pi.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: solver diverged on state %d", ports.ErrNoSteadyState, s)
		}
		if v < 0 {
			if v < -steadyTolerance {
				return nil, fmt.Errorf("%w: negative mass %g on state %d", ports.ErrNoSteadyState, v, s)
			}
			v = 0
		}
		dist[s] = v
		sum += v
	}
	if sum <= 0 {
		return nil, ports.ErrNoSteadyState
	}
	for s := range dist {
		dist[s] /= sum
	}
	return dist, nil
}

// Walk takes length steps and returns the terminal state.
func (c *Chain) Walk(ctx context.Context, length int, start *domain.State) (domain.State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var cur domain.State
	if start != nil {
		if _, ok := c.index[*start]; !ok {
			return 0, fmt.Errorf("walk from %d: %w", *start, domain.ErrUnknownState)
		}
		cur = *start
	} else {
		cur = c.states[c.rng.IntN(len(c.states))]
	}

	for step := 0; step < length; step++ {
		if err := ctx.Err(); err != nil {
			return cur, err
		}
		succ, ok := c.rows[cur]
		if !ok {
			return cur, fmt.Errorf("walk: state %d has no outgoing transitions", cur)
		}
		cur = succ.targets[int(succ.pick.Rand())]
	}
	return cur, nil
}
