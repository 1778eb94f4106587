package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/wikiquiz/internal/api"
	"github.com/abhisek/wikiquiz/internal/quiz"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <url>",
	Short: "Generate a quiz from a Wikipedia URL and print it (no TUI)",
	Long: `Generate a quiz from a Wikipedia article URL and print it to stdout.

The service caches by URL, so repeating a URL returns the existing quiz.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var showAnswers bool

func init() {
	generateCmd.Flags().BoolVar(&showAnswers, "answers", false, "Print answers and explanations")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	articleURL := strings.TrimSpace(args[0])
	if articleURL == "" {
		return fmt.Errorf("URL is empty")
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	client := api.New(cfg.ServerURL, cfg.Timeout)

	fmt.Fprintln(os.Stderr, "Generating quiz... this can take a minute.")
	q, err := client.GenerateQuiz(cmd.Context(), articleURL)
	if err != nil {
		return fmt.Errorf("generate quiz: %w", err)
	}
	if err := quiz.Validate(q); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: service returned a malformed quiz:", err)
	}

	fmt.Printf("#%d  %s  (%d questions)\n\n", q.ID, q.Title, len(q.Questions))
	for i, question := range q.Questions {
		fmt.Printf("%d. [%s] %s\n", i+1, question.Difficulty.DisplayName(), question.Text)
		for j, opt := range question.Options {
			fmt.Printf("   %s) %s\n", quiz.OptionLabel(j), opt)
		}
		if showAnswers {
			fmt.Printf("   Answer: %s\n   %s\n", question.Answer, question.Explanation)
		}
		fmt.Println()
	}
	return nil
}
