package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sarveshai94-commits/academyquest/internal/llm"
	"github.com/sarveshai94-commits/academyquest/internal/store"
	"github.com/spf13/cobra"
)

var advisorCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Inspect the AI advisor configuration and request log",
}

var advisorCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured LLM provider responds",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("provider not configured: %w", err)
		}
		fmt.Printf("Provider model: %s\n", provider.ModelID())

		resp, err := provider.Generate(ctx, llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: "Reply with the single word: ready"},
			},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("probe request failed: %w", err)
		}
		fmt.Printf("Probe reply:    %s\n", strings.TrimSpace(string(resp.Content)))
		fmt.Printf("Tokens:         %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}

var advisorLogCmd = &cobra.Command{
	Use:   "log",
	Short: "List recent advisor API calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

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
		records, err := db.EventRepo().QueryLLMRequests(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No advisor calls recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 96))
		for _, r := range records {
			if purpose != "" && r.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			model := r.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Purpose, model, r.InputTokens, r.OutputTokens, r.LatencyMs, ok)
			if !r.Success && r.ErrorMessage != "" {
				fmt.Printf("%21s%s\n", "", r.ErrorMessage)
			}
		}
		return nil
	},
}

func init() {
	advisorLogCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	advisorLogCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (motivation, daily-boss)")

	advisorCmd.AddCommand(advisorCheckCmd)
	advisorCmd.AddCommand(advisorLogCmd)
}
