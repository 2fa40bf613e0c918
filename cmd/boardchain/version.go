package main

import (
	"fmt"

	"github.com/aretw0/boardchain"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of boardchain",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "boardchain version %s\n", boardchain.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
