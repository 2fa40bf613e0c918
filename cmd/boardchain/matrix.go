package main

import (
	"github.com/aretw0/boardchain/internal/cli"
	"github.com/spf13/cobra"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the column-stochastic transition matrix",
	Long:  `Prints the transition matrix without the go-to-jail space. Entry (i, j) is the probability of moving from state j to state i.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, eng, err := setup(cmd)
		if err != nil {
			return err
		}
		exact, _ := cmd.Flags().GetBool("exact")
		return cli.RunMatrix(cmd.OutOrStdout(), eng, exact)
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.Flags().Bool("exact", false, "Print exact rationals instead of floats")
}
