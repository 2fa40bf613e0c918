package main

import (
	"github.com/aretw0/boardchain/internal/cli"
	"github.com/spf13/cobra"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Certify regularity and print the steady state",
	Long: `Raises the transition matrix to --power and checks that every entry is
positive. When it is, the steady state probabilities are printed with the jail
turns folded into the jail space. Otherwise there is no steady state to report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, eng, err := setup(cmd)
		if err != nil {
			return err
		}
		plain, _ := cmd.Flags().GetBool("plain")
		expectations, _ := cmd.Flags().GetBool("expectations")
		jailDistance, _ := cmd.Flags().GetBool("jail-distance")
		includeJail, _ := cmd.Flags().GetBool("include-jail")

		return cli.RunReport(cmd.OutOrStdout(), eng, cli.ReportOptions{
			Power:        cfg.Power,
			Plain:        plain,
			Expectations: expectations,
			JailDistance: jailDistance,
			IncludeJail:  includeJail,
		})
	},
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("plain", false, "Print plain text even on a terminal")
	cmd.Flags().Bool("expectations", false, "Also print expected hotel rent per property")
	cmd.Flags().Bool("jail-distance", false, "Also print probability against distance from jail")
	cmd.Flags().Bool("include-jail", false, "Include the jail aggregate in --jail-distance")
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addReportFlags(reportCmd)

	// 'report' is the default when no command is given.
	addReportFlags(rootCmd)
	rootCmd.RunE = reportCmd.RunE
}
