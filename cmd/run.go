package cmd

import (
	"fmt"

	"github.com/abhisek/wikiquiz/internal/api"
	"github.com/abhisek/wikiquiz/internal/app"
	"github.com/spf13/cobra"
)

// runApp resolves configuration, builds the API client, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	client := api.New(cfg.ServerURL, cfg.Timeout)
	return app.Run(app.Options{Client: client})
}
