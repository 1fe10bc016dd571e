package triage

import (
	"testing"
	"time"

	"github.com/sarveshai94-commits/academyquest/internal/state"
)

var now = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func onDay(offset int) string {
	return state.FormatDate(now.AddDate(0, 0, offset))
}

func assignment(id, dueDate string, completed bool) state.Assignment {
	return state.Assignment{
		ID:        id,
		Title:     "Quest " + id,
		Subject:   "Math",
		DueDate:   dueDate,
		XPReward:  500,
		Priority:  state.PriorityMedium,
		Completed: completed,
	}
}

func TestDaysRemaining(t *testing.T) {
	tests := []struct {
		name string
		due  string
		want int
	}{
		{"two days out", onDay(2), 2},
		{"five days out", onDay(5), 5},
		{"tomorrow", onDay(1), 1},
		{"due today", onDay(0), 0},
		{"yesterday", onDay(-1), -1},
		{"garbage date treated as today", "not-a-date", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysRemaining(tt.due, now); got != tt.want {
				t.Errorf("DaysRemaining(%q) = %d, want %d", tt.due, got, tt.want)
			}
		})
	}
}

func TestUrgentAssignments(t *testing.T) {
	list := []state.Assignment{
		assignment("a1", onDay(2), false),  // urgent
		assignment("a2", onDay(5), false),  // not urgent
		assignment("a3", onDay(-1), false), // overdue, urgent
		assignment("a4", onDay(1), true),   // completed, never urgent
	}

	got := UrgentAssignments(list, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 urgent assignments, got %d", len(got))
	}
	// Order follows the input list.
	if got[0].ID != "a1" || got[1].ID != "a3" {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestUrgentBoundary(t *testing.T) {
	// Exactly at the window edge counts; one day past it does not.
	if !Urgent(assignment("in", onDay(2), false), now) {
		t.Error("assignment due in 2 days should be urgent")
	}
	if Urgent(assignment("out", onDay(3), false), now) {
		t.Error("assignment due in 3 days should not be urgent")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		due  string
		want string
	}{
		{"overdue", onDay(-1), "OVERDUE"},
		{"due today", onDay(0), "DUE TODAY"},
		{"two days", onDay(2), "2d left"},
		{"five days", onDay(5), "5d left"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(assignment("x", tt.due, false), now); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
