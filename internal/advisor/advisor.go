// Package advisor generates motivational copy and daily boss picks via
// an LLM. Every call degrades gracefully so the rest of the app keeps
// working when no provider is reachable.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/sarveshai94-commits/academyquest/internal/llm"
	"github.com/sarveshai94-commits/academyquest/internal/state"
)

// FallbackMessage is shown when the LLM is unavailable.
const FallbackMessage = "The journey of a thousand levels begins with a single quest."

// Config holds generation tuning for the advisor.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.7,
	}
}

// Service wraps an LLM provider with the advisor's prompt set.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an advisor over the given provider. A nil provider
// is allowed; every call then returns its fallback.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Available reports whether an LLM provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// BossSuggestion is the advisor's pick for the day's priority
// assignment.
type BossSuggestion struct {
	Title    string `json:"title"`
	Reason   string `json:"reason"`
	Strategy string `json:"strategy"`
}

const narratorSystemPrompt = `You are a high-end RPG game narrator for a school productivity app. Speak in gaming terminology: quests, buffs, XP, boss levels. Keep every response short.`

var motivationTemplate = template.Must(template.New("motivation").Parse(
	`The player {{.Name}} is currently Level {{.Level}}. Give them a short, 1-sentence epic motivational message to start their school day.`))

// MotivationalMessage asks the LLM for a one-line pep talk. On any
// failure it returns FallbackMessage rather than an error.
func (s *Service) MotivationalMessage(ctx context.Context, name string, level int) string {
	if !s.Available() {
		return FallbackMessage
	}

	ctx = llm.WithPurpose(ctx, "motivation")

	var buf bytes.Buffer
	if err := motivationTemplate.Execute(&buf, struct {
		Name  string
		Level int
	}{name, level}); err != nil {
		return FallbackMessage
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: narratorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return FallbackMessage
	}

	msg := normalizeMessage(resp.Content)
	if msg == "" {
		return FallbackMessage
	}
	return msg
}

// AnalyzeAssignments asks the LLM which incomplete assignment should be
// the daily boss. Returns nil when the LLM fails or there is nothing to
// analyze.
func (s *Service) AnalyzeAssignments(ctx context.Context, assignments []state.Assignment) (*BossSuggestion, error) {
	if !s.Available() {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	var pending []state.Assignment
	for _, a := range assignments {
		if !a.Completed {
			pending = append(pending, a)
		}
	}
	if len(pending) == 0 {
		return nil, nil
	}

	ctx = llm.WithPurpose(ctx, "daily-boss")

	payload, err := json.Marshal(pending)
	if err != nil {
		return nil, fmt.Errorf("marshal assignments: %w", err)
	}

	userMsg := fmt.Sprintf("Analyze these school assignments: %s\nWhich one should be the 'Daily Boss' (highest priority)?", payload)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: narratorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      BossSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("daily boss analysis failed: %w", err)
	}

	var boss BossSuggestion
	if err := json.Unmarshal(resp.Content, &boss); err != nil {
		return nil, fmt.Errorf("parse daily boss response: %w", err)
	}
	return &boss, nil
}

// normalizeMessage unwraps a response that may arrive either as a bare
// string or as a JSON-encoded string.
func normalizeMessage(raw json.RawMessage) string {
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		return quoted
	}
	return string(bytes.TrimSpace(raw))
}
