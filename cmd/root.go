package cmd

import (
	"github.com/abhisek/teachmate/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "teachmate",
	Short: "Lesson companion for one-to-one English teaching",
	Long:  "TeachMate — terminal companion for ESL teachers: track students, work through lessons block by block, and draft homework with AI assistance.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TEACHMATE_DB env var)")

	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(homeworkCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TEACHMATE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
