package cmd

import (
	"os"

	"github.com/sarveshai94-commits/academyquest/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "academyquest",
	Short: "Gamified study dashboard for students",
	Long:  "Academy Quest, a terminal dashboard that turns a school day into an RPG: timetable, quest log, XP, and a period-end bell.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ACADEMYQUEST_DB env var)")
	rootCmd.PersistentFlags().String("name", "", "Player name shown on the home screen (overrides ACADEMYQUEST_PLAYER env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(advisorCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ACADEMYQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolvePlayerName returns the display name from --name, then
// ACADEMYQUEST_PLAYER, then a generic default.
func resolvePlayerName(cmd *cobra.Command) string {
	if n, _ := cmd.Flags().GetString("name"); n != "" {
		return n
	}
	if n := os.Getenv("ACADEMYQUEST_PLAYER"); n != "" {
		return n
	}
	return "Scholar"
}
