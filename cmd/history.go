package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/abhisek/wikiquiz/internal/api"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously generated quizzes (no TUI)",
	Long: `Print the quiz history as a plain table.

Useful for scripting and for checking what the service has cached without
opening the full interface.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	client := api.New(cfg.ServerURL, cfg.Timeout)
	items, err := client.ListQuizzes(cmd.Context())
	if err != nil {
		return fmt.Errorf("list quizzes: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("No quizzes yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tQUESTIONS\tCREATED")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n",
			item.ID, item.Title, item.QuestionCount, item.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
