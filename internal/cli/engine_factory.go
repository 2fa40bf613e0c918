// Package cli implements the boardchain commands behind the cobra wiring in
// cmd/boardchain.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/config"
	"github.com/aretw0/boardchain/internal/logging"
)

// Settings are the global command line inputs. Nil overrides and an empty
// LogLevel were not given and leave the file and environment values alone.
type Settings struct {
	ConfigPath string
	Overrides  config.Overrides
	LogLevel   string
}

// LoadConfig resolves defaults, the config file, the environment and then
// the command line, in that order.
func LoadConfig(s Settings) (config.Config, error) {
	cfg, err := config.Load(s.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if s.LogLevel != "" {
		cfg.LogLevel = s.LogLevel
	}
	cfg, err = cfg.Apply(s.Overrides)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the stderr logger for cfg.
func NewLogger(cfg config.Config) *slog.Logger {
	// LogLevel is already validated.
	level, _ := logging.ParseLevel(cfg.LogLevel)
	return logging.New(level)
}

// CreateEngine initializes an engine for the configured board.
func CreateEngine(cfg config.Config, logger *slog.Logger, opts ...boardchain.Option) (*boardchain.Engine, error) {
	topo, err := cfg.Topology()
	if err != nil {
		return nil, err
	}
	engineOpts := append([]boardchain.Option{
		boardchain.WithTopology(topo),
		boardchain.WithLogger(logger),
	}, opts...)

	engine, err := boardchain.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
