package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/sarveshai94-commits/academyquest/internal/progression"
	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression totals and the recent study log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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
		snap := st.State()

		fmt.Printf("Level:       %d\n", snap.Stats.Level)
		fmt.Printf("Total XP:    %d\n", snap.Stats.XP)
		fmt.Printf("Next level:  %d / %d XP\n", progression.LevelXP(snap.Stats.XP), progression.XPPerLevel)
		fmt.Printf("Topics:      %d\n", snap.Stats.TotalTopics())
		fmt.Printf("Study time:  %dm\n", snap.Stats.TotalStudyMinutes())
		fmt.Printf("Attendance:  %d day(s)\n", len(snap.Stats.Attendance))
		fmt.Printf("Streak:      %d day(s)\n", snap.Stats.Streak)

		bells, err := db.EventRepo().QueryBells(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query bells: %w", err)
		}
		if len(bells) == 0 {
			fmt.Println("\nNo sessions logged yet.")
			return nil
		}

		fmt.Println("\nRecent Sessions")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-19s  %-20s  %6s  %6s  %6s\n",
			"Timestamp", "Session", "Topics", "Mins", "XP")
		fmt.Println(strings.Repeat("─", 64))
		for _, b := range bells {
			name := b.SessionName
			if len(name) > 20 {
				name = name[:20]
			}
			fmt.Printf("%-19s  %-20s  %6d  %6d  %6d\n",
				b.Timestamp.Local().Format("2006-01-02 15:04:05"),
				name, b.TopicCount, b.DurationMinutes, b.XPAwarded)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
