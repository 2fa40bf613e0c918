// Package service answers model queries for the network adapters. Each
// query may override the base board, so engines are resolved per call and
// share a model cache.
package service

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/config"
	"github.com/aretw0/boardchain/internal/presentation/report"
	"github.com/aretw0/boardchain/pkg/domain"
)

// ErrNotRegular is returned when a steady state is requested for a chain
// whose regularity could not be certified.
var ErrNotRegular = errors.New("chain is not regular")

// Regularity is the answer to "is P^power strictly positive?".
type Regularity struct {
	Board   string `json:"board"`
	Power   int    `json:"power"`
	Regular bool   `json:"regular"`
}

// StateProbability is one labelled probability.
type StateProbability struct {
	State       int     `json:"state"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
}

// Steady is a stationary distribution in state order.
type Steady struct {
	Board  string             `json:"board"`
	Power  int                `json:"power"`
	States []StateProbability `json:"states"`
}

// Transitions is one row of the sparse model.
type Transitions struct {
	Board       string             `json:"board"`
	From        int                `json:"from"`
	Kind        string             `json:"kind"`
	Transitions []StateProbability `json:"transitions"`
}

// Service resolves engines from a base configuration plus overrides.
type Service struct {
	base config.Config
	opts []boardchain.Option
}

// New creates a Service. opts are applied to every engine it resolves and
// typically carry the shared logger, metrics and cache.
func New(base config.Config, opts ...boardchain.Option) *Service {
	return &Service{base: base, opts: opts}
}

// Resolve decodes loosely typed overrides and returns the engine and
// effective configuration. Every input problem matches domain.ErrConfig.
func (s *Service) Resolve(args map[string]any) (*boardchain.Engine, config.Config, error) {
	o, err := config.DecodeOverrides(args)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("%w: %v", domain.ErrConfig, err)
	}
	cfg := s.base
	if !o.Empty() {
		if cfg, err = s.base.Apply(o); err != nil {
			return nil, config.Config{}, err
		}
	}
	topo, err := cfg.Topology()
	if err != nil {
		return nil, config.Config{}, err
	}

	opts := append(slices.Clone(s.opts), boardchain.WithTopology(topo))
	eng, err := boardchain.New(opts...)
	if err != nil {
		return nil, config.Config{}, err
	}
	return eng, cfg, nil
}

// Regularity checks P^power > 0.
func (s *Service) Regularity(args map[string]any) (Regularity, error) {
	eng, cfg, err := s.Resolve(args)
	if err != nil {
		return Regularity{}, err
	}
	ok, err := eng.Regular(cfg.Power)
	if err != nil {
		return Regularity{}, err
	}
	return Regularity{Board: eng.Topology().Key(), Power: cfg.Power, Regular: ok}, nil
}

// Steady certifies regularity and returns the stationary distribution.
func (s *Service) Steady(args map[string]any) (Steady, error) {
	eng, cfg, err := s.Resolve(args)
	if err != nil {
		return Steady{}, err
	}
	a, err := eng.Analyze(cfg.Power)
	if err != nil {
		return Steady{}, err
	}
	if !a.Regular {
		return Steady{}, fmt.Errorf("%w: P^%d has zero entries", ErrNotRegular, cfg.Power)
	}

	topo := eng.Topology()
	out := Steady{Board: topo.Key(), Power: cfg.Power}
	for _, st := range topo.States() {
		out.States = append(out.States, labelled(eng, st, a.Steady[st]))
	}
	return out, nil
}

// Transitions returns the outgoing row of state from.
func (s *Service) Transitions(args map[string]any, from int) (Transitions, error) {
	eng, _, err := s.Resolve(args)
	if err != nil {
		return Transitions{}, err
	}
	topo := eng.Topology()
	st := domain.State(from)
	if !topo.Contains(st) {
		return Transitions{}, fmt.Errorf("state %d: %w", from, domain.ErrUnknownState)
	}

	sc, err := eng.Sparse()
	if err != nil {
		return Transitions{}, err
	}
	out := Transitions{Board: topo.Key(), From: from, Kind: string(topo.Kind(st)), Transitions: []StateProbability{}}
	for _, to := range topo.States() {
		if p := sc.Prob(st, to); p > 0 {
			out.Transitions = append(out.Transitions, labelled(eng, to, p))
		}
	}
	return out, nil
}

func labelled(eng *boardchain.Engine, s domain.State, p float64) StateProbability {
	return StateProbability{
		State:       int(s),
		Name:        report.Label(eng.Board(), eng.Topology(), s),
		Probability: p,
	}
}
