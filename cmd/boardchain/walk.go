package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/cli"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/spf13/cobra"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Sample random walks and print where they end",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []boardchain.Option
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			opts = append(opts, boardchain.WithSeed(seed))
		}
		_, _, eng, err := setup(cmd, opts...)
		if err != nil {
			return err
		}

		walks, _ := cmd.Flags().GetInt("walks")
		length, _ := cmd.Flags().GetInt("length")
		width, _ := cmd.Flags().GetInt("width")
		var start *domain.State
		if cmd.Flags().Changed("start") {
			s, _ := cmd.Flags().GetInt("start")
			st := domain.State(s)
			start = &st
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.RunWalk(ctx, cmd.OutOrStdout(), eng, cli.WalkOptions{
			Walks:  walks,
			Length: length,
			Start:  start,
			Width:  width,
		})
	},
}

func init() {
	rootCmd.AddCommand(walkCmd)
	walkCmd.Flags().Int("walks", 1000, "Number of walks")
	walkCmd.Flags().Int("length", 100, "Steps per walk")
	walkCmd.Flags().Int("start", 0, "Start state (default: uniformly random)")
	walkCmd.Flags().Uint64("seed", 0, "Random seed (default: from the OS)")
	walkCmd.Flags().Int("width", 50, "Width of the longest histogram bar")
}
