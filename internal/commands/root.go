package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finance-insights",
		Short: "Extract, categorize and analyze bank statement transactions",
		Long: `finance-insights ingests bank statements (PDF or CSV), extracts a
normalized transaction ledger, assigns spending categories and computes
monthly summaries, top expenses, recurring merchants and anomalies.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "insights.yaml", "path to YAML configuration")

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newTrainCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
