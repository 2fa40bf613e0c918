package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/cli"
	"github.com/aretw0/boardchain/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "boardchain",
	Short: "Boardchain models a Monopoly board as a Markov chain",
	Long: `Boardchain builds the transition matrix of a Monopoly style board from the
dice distribution and the jail and chance rules, certifies that it is regular
and reports where a player spends their time in the long run.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.Int("size", 0, "Number of board spaces (default 40)")
	pf.Int("dice", 0, "Number of six sided dice rolled per turn (default 2)")
	pf.Int("jail", 0, "Index of the jail space (default 10)")
	pf.Int("goto-jail", 0, "Index of the go-to-jail space (default 30)")
	pf.IntSlice("chance", nil, "Chance space indices (default 7,22,36)")
	pf.Int("power", 0, "Matrix power used to certify regularity (default 6)")
	pf.String("log-level", "", "Log level: debug, info, warn or error (default info)")
}

// settings collects the persistent flags the user actually set.
func settings(cmd *cobra.Command) cli.Settings {
	fs := cmd.Flags()
	s := cli.Settings{}
	s.ConfigPath, _ = fs.GetString("config")
	s.LogLevel, _ = fs.GetString("log-level")

	intFlag := func(name string) *int {
		if !fs.Changed(name) {
			return nil
		}
		v, _ := fs.GetInt(name)
		return &v
	}
	s.Overrides = config.Overrides{
		Size:     intFlag("size"),
		Dice:     intFlag("dice"),
		Jail:     intFlag("jail"),
		GoToJail: intFlag("goto-jail"),
		Power:    intFlag("power"),
	}
	if fs.Changed("chance") {
		s.Overrides.Chance, _ = fs.GetIntSlice("chance")
	}
	return s
}

// setup resolves the configuration, logger and engine for a command.
func setup(cmd *cobra.Command, opts ...boardchain.Option) (config.Config, *slog.Logger, *boardchain.Engine, error) {
	cfg, err := cli.LoadConfig(settings(cmd))
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger := cli.NewLogger(cfg)
	slog.SetDefault(logger)

	eng, err := cli.CreateEngine(cfg, logger, opts...)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, logger, eng, nil
}
