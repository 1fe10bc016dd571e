package cmd

import (
	"context"
	"fmt"

	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset progression to the seeded starting state",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This wipes XP, badges, quests, and the study log.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		ctx := context.Background()
		st := state.NewStore(db.StateRepo(), db.EventRepo())
		st.Load(ctx)
		st.Reset(ctx)

		fmt.Println("Progress reset. Fresh save created.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
