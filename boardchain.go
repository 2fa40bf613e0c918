package boardchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/aretw0/boardchain/internal/logging"
	"github.com/aretw0/boardchain/internal/metrics"
	"github.com/aretw0/boardchain/pkg/adapters/gonum"
	"github.com/aretw0/boardchain/pkg/adapters/memory"
	"github.com/aretw0/boardchain/pkg/assemble"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/model"
	"github.com/aretw0/boardchain/pkg/numeric"
	"github.com/aretw0/boardchain/pkg/ports"
	"gonum.org/v1/gonum/mat"
)

// Engine is the high-level entry point for the boardchain library.
// It builds the transition model for one board lazily and hands out its
// representations. Safe for concurrent use.
type Engine struct {
	topo    domain.Topology
	board   domain.Board
	logger  *slog.Logger
	metrics metrics.Recorder
	oracle  ports.RegularityOracle
	cache   *memory.Cache
	seed    *uint64

	mu    sync.Mutex
	rel   *model.Relation[float64]
	chain *gonum.Chain
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithTopology selects the board. The default is the standard board.
func WithTopology(topo domain.Topology) Option {
	return func(e *Engine) {
		e.topo = topo
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics reports builds and regularity checks to r.
func WithMetrics(r metrics.Recorder) Option {
	return func(e *Engine) {
		e.metrics = r
	}
}

// WithOracle replaces the gonum regularity oracle.
func WithOracle(o ports.RegularityOracle) Option {
	return func(e *Engine) {
		e.oracle = o
	}
}

// WithCache shares built models between engines.
func WithCache(c *memory.Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithSeed makes random walks reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = &seed
	}
}

// New initializes an Engine. The topology is validated up front so that a
// misconfigured board fails here rather than on first use.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		topo:  domain.DefaultTopology(),
		board: domain.StandardBoard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.topo.Validate(); err != nil {
		return nil, err
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.metrics == nil {
		e.metrics = metrics.Nop{}
	}
	if e.oracle == nil {
		e.oracle = gonum.NewOracle()
	}
	e.logger = e.logger.With("board", e.topo.Key())
	return e, nil
}

// Topology returns the board the engine models.
func (e *Engine) Topology() domain.Topology { return e.topo }

// Board returns the space names and prices used by reports.
func (e *Engine) Board() domain.Board { return e.board }

// Relation returns the floating point transition relation, building it on
// first use.
func (e *Engine) Relation() (*model.Relation[float64], error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.relation()
}

func (e *Engine) relation() (*model.Relation[float64], error) {
	if e.rel != nil {
		return e.rel, nil
	}
	if e.cache != nil {
		if rel, ok := e.cache.Get(e.topo); ok {
			e.logger.Debug("model cache hit")
			e.rel = rel
			return rel, nil
		}
	}

	rel, err := build(e, metrics.ReprFloat, numeric.Float{})
	if err != nil {
		return nil, err
	}
	e.rel = rel
	if e.cache != nil {
		e.cache.Put(rel)
	}
	return rel, nil
}

func build[T any](e *Engine, repr string, a numeric.Arith[T]) (*model.Relation[T], error) {
	e.logger.Debug("building transition model", "repr", repr, "states", e.topo.NumStates())
	start := time.Now()

	rel, err := model.Build(e.topo, a)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	e.metrics.ObserveBuild(repr, elapsed, rel.Len())
	e.logger.Debug("transition model built", "repr", repr, "edges", rel.Len(), "elapsed", elapsed)

	for _, d := range model.Diagnose(rel) {
		e.logger.Warn("transition model defect", "repr", repr, "defect", d.String())
	}
	return rel, nil
}

// Dense returns the column-stochastic float matrix without goto_jail.
func (e *Engine) Dense() (*mat.Dense, error) {
	rel, err := e.Relation()
	if err != nil {
		return nil, err
	}
	return assemble.Dense(rel), nil
}

// Exact returns the column-stochastic matrix in exact rationals. It is
// rebuilt on every call.
func (e *Engine) Exact() (*assemble.Table[*big.Rat], error) {
	rel, err := build(e, metrics.ReprExact, numeric.Rational{})
	if err != nil {
		return nil, err
	}
	return assemble.Exact(rel), nil
}

// Sparse returns the row-stochastic relation over the full state set.
func (e *Engine) Sparse() (assemble.SparseChain, error) {
	rel, err := e.Relation()
	if err != nil {
		return assemble.SparseChain{}, err
	}
	start := time.Now()
	sc := assemble.Sparse(rel)
	e.metrics.ObserveBuild(metrics.ReprSparse, time.Since(start), len(sc.Edges))
	return sc, nil
}

// Chain returns the sampling and solving chain over the sparse model.
func (e *Engine) Chain() (ports.Chain, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.chain != nil {
		return e.chain, nil
	}
	rel, err := e.relation()
	if err != nil {
		return nil, err
	}

	var opts []gonum.Option
	if e.seed != nil {
		opts = append(opts, gonum.WithSeed(*e.seed))
	}
	chain, err := gonum.NewChain(assemble.Sparse(rel), opts...)
	if err != nil {
		return nil, fmt.Errorf("create chain: %w", err)
	}
	e.chain = chain
	return chain, nil
}

// Regular reports whether the dense matrix raised to power is strictly
// positive.
func (e *Engine) Regular(power int) (bool, error) {
	if power < 1 {
		return false, fmt.Errorf("%w: power must be at least 1, got %d", domain.ErrConfig, power)
	}
	m, err := e.Dense()
	if err != nil {
		return false, err
	}
	ok := ports.Regular(e.oracle, m, power)
	e.metrics.ObserveRegularity(power, ok)
	e.logger.Debug("regularity checked", "power", power, "regular", ok)
	return ok, nil
}

// Steady returns the stationary distribution of the sparse chain.
func (e *Engine) Steady() (map[domain.State]float64, error) {
	chain, err := e.Chain()
	if err != nil {
		return nil, err
	}
	return chain.Steady()
}

// Analysis is the outcome of a regularity check and, when it passes, the
// steady state it licenses.
type Analysis struct {
	Power   int
	Regular bool
	Steady  map[domain.State]float64 // nil unless Regular
}

// Analyze certifies regularity at power and solves for the steady state
// only when the certificate holds.
func (e *Engine) Analyze(power int) (Analysis, error) {
	ok, err := e.Regular(power)
	if err != nil {
		return Analysis{}, err
	}
	a := Analysis{Power: power, Regular: ok}
	if !ok {
		return a, nil
	}
	a.Steady, err = e.Steady()
	if err != nil {
		return Analysis{}, err
	}
	return a, nil
}

// Walks runs n independent walks of the given length and counts the states
// they end in. A nil start draws each walk's start uniformly.
func (e *Engine) Walks(ctx context.Context, n, length int, start *domain.State) (map[domain.State]int, error) {
	chain, err := e.Chain()
	if err != nil {
		return nil, err
	}
	return WalkAccumulate(ctx, chain, n, length, start)
}

// WalkAccumulate tallies the terminal states of n walks on chain.
func WalkAccumulate(ctx context.Context, chain ports.Chain, n, length int, start *domain.State) (map[domain.State]int, error) {
	counts := make(map[domain.State]int)
	for i := 0; i < n; i++ {
		end, err := chain.Walk(ctx, length, start)
		if err != nil {
			return nil, fmt.Errorf("walk %d: %w", i, err)
		}
		counts[end]++
	}
	return counts, nil
}
