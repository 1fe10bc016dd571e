package cmd

import (
	"fmt"
	"os"

	"github.com/sarveshai94-commits/academyquest/internal/advisor"
	"github.com/sarveshai94-commits/academyquest/internal/app"
	"github.com/sarveshai94-commits/academyquest/internal/llm"
	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/store"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the dashboard (same as running with no arguments)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	eventRepo := db.EventRepo()
	st := state.NewStore(db.StateRepo(), eventRepo)
	st.Load(ctx)

	opts := app.Options{
		Store:      st,
		PlayerName: resolvePlayerName(cmd),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Motivation and daily-boss features will be unavailable.")
		opts.Advisor = advisor.NewService(nil, advisor.DefaultConfig())
	} else {
		opts.Advisor = advisor.NewService(provider, advisor.DefaultConfig())
	}

	return app.Run(opts)
}
