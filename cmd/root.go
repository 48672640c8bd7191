package cmd

import (
	"github.com/praxislabs/praxis/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "praxis",
	Short: "Governed AI gateway for learning",
	Long:  "Praxis is an AI gateway that mediates student-AI interaction: every turn is classified, policy-checked, traced and risk-scanned.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PRAXIS_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to praxis.yaml (overrides PRAXIS_CONFIG env var)")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(tracesCmd)
	rootCmd.AddCommand(risksCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(gitCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PRAXIS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
