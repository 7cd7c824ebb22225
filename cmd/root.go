package cmd

import (
	"github.com/ksuri/mindtriage/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mindtriage",
	Short: "Clinical interview triage engine",
	Long: "Mindtriage scores structured clinical interview modules against a patient's\n" +
		"presenting concern, ranks which modules to administer, scores completed\n" +
		"administrations, and aggregates suicide/safety risk.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDTRIAGE_DB env var)")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MINDTRIAGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
