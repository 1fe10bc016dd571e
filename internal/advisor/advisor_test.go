package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sarveshai94-commits/academyquest/internal/llm"
	"github.com/sarveshai94-commits/academyquest/internal/state"
)

func pendingAssignments() []state.Assignment {
	return []state.Assignment{
		{ID: "a1", Title: "Calculus Quiz Prep", Subject: "Math", DueDate: "2026-03-04", XPReward: 500, Priority: state.PriorityHigh},
		{ID: "a2", Title: "Code a React App", Subject: "CS", DueDate: "2026-03-07", XPReward: 800, Priority: state.PriorityMedium},
	}
}

func TestMotivationalMessage(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"Level 3 hero, your first quest awaits!"`)},
	)
	s := NewService(mock, DefaultConfig())

	got := s.MotivationalMessage(context.Background(), "Sarvesh", 3)
	if got != "Level 3 hero, your first quest awaits!" {
		t.Errorf("unexpected message: %q", got)
	}

	// The prompt carries the player name and level.
	req := mock.Calls[0]
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "Sarvesh") || !strings.Contains(prompt, "Level 3") {
		t.Errorf("prompt missing player details: %q", prompt)
	}
}

func TestMotivationalMessageFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := NewService(mock, DefaultConfig())

	if got := s.MotivationalMessage(context.Background(), "Sarvesh", 1); got != FallbackMessage {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestMotivationalMessageNilProvider(t *testing.T) {
	s := NewService(nil, DefaultConfig())
	if got := s.MotivationalMessage(context.Background(), "Sarvesh", 1); got != FallbackMessage {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestAnalyzeAssignments(t *testing.T) {
	resp := json.RawMessage(`{"title":"Calculus Quiz Prep","reason":"Due soonest and high priority","strategy":"Break it into three 25-minute sieges"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	s := NewService(mock, DefaultConfig())

	boss, err := s.AnalyzeAssignments(context.Background(), pendingAssignments())
	if err != nil {
		t.Fatalf("AnalyzeAssignments failed: %v", err)
	}
	if boss.Title != "Calculus Quiz Prep" {
		t.Errorf("title = %q, want Calculus Quiz Prep", boss.Title)
	}
	if boss.Strategy == "" {
		t.Error("expected a non-empty strategy")
	}

	// Structured output requested.
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "daily-boss" {
		t.Error("expected daily-boss schema on the request")
	}
}

func TestAnalyzeAssignmentsSkipsCompleted(t *testing.T) {
	resp := json.RawMessage(`{"title":"Code a React App","reason":"Only quest left","strategy":"Start with the scaffold"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	s := NewService(mock, DefaultConfig())

	list := pendingAssignments()
	list[0].Completed = true

	if _, err := s.AnalyzeAssignments(context.Background(), list); err != nil {
		t.Fatalf("AnalyzeAssignments failed: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "Calculus Quiz Prep") {
		t.Error("completed assignment should not reach the prompt")
	}
}

func TestAnalyzeAssignmentsNothingPending(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock, DefaultConfig())

	list := pendingAssignments()
	for i := range list {
		list[i].Completed = true
	}

	boss, err := s.AnalyzeAssignments(context.Background(), list)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if boss != nil {
		t.Errorf("expected nil suggestion, got %+v", boss)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM call, got %d", mock.CallCount())
	}
}

func TestAnalyzeAssignmentsProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := NewService(mock, DefaultConfig())

	if _, err := s.AnalyzeAssignments(context.Background(), pendingAssignments()); err == nil {
		t.Fatal("expected error")
	}
}
