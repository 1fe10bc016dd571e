package advisor

import "github.com/sarveshai94-commits/academyquest/internal/llm"

// BossSchema defines the JSON schema for daily boss suggestions.
var BossSchema = &llm.Schema{
	Name:        "daily-boss",
	Description: "The single highest-priority assignment and a plan of attack",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Title of the assignment to tackle first, verbatim from the list",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "One sentence on why this assignment is the priority",
			},
			"strategy": map[string]any{
				"type":        "string",
				"description": "A short concrete plan for defeating it",
			},
		},
		"required":             []any{"title", "reason", "strategy"},
		"additionalProperties": false,
	},
}
