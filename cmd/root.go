package cmd

import (
	"github.com/abhisek/wikiquiz/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wikiquiz",
	Short: "Quiz yourself on any Wikipedia article",
	Long:  "WikiQuiz is a terminal client for the Wiki Quiz service. Generate multiple-choice quizzes from Wikipedia articles, browse past quizzes, and take them interactively.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Quiz service base URL (overrides WIKIQUIZ_SERVER env var and config file)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(generateCmd)
}

// resolveConfig loads configuration with the --server flag applied at
// highest priority.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	server, _ := cmd.Flags().GetString("server")
	return config.Load(server)
}
