package main

import (
	"github.com/aretw0/boardchain/internal/cli"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the chain as a Mermaid diagram",
	Long:  `Outputs a Mermaid flowchart (graph LR) of every transition whose probability is at least --min.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, eng, err := setup(cmd)
		if err != nil {
			return err
		}
		min, _ := cmd.Flags().GetFloat64("min")
		raw, _ := cmd.Flags().GetIntSlice("highlight")
		highlight := make([]domain.State, len(raw))
		for i, s := range raw {
			highlight[i] = domain.State(s)
		}
		opts := cli.GraphOptions{Min: min, Highlight: highlight}
		if cmd.Flags().Changed("current") {
			c, _ := cmd.Flags().GetInt("current")
			cur := domain.State(c)
			opts.Current = &cur
		}
		return cli.RunGraph(cmd.OutOrStdout(), eng, opts)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Float64("min", 0.05, "Smallest transition probability to draw")
	graphCmd.Flags().IntSlice("highlight", nil, "States to highlight")
	graphCmd.Flags().Int("current", 0, "State to mark as the player's position")
}
