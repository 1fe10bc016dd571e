// Package triage ranks assignments by how soon they are due.
package triage

import (
	"fmt"
	"math"
	"time"

	"github.com/sarveshai94-commits/academyquest/internal/state"
)

// UrgentWindowDays is how far ahead an incomplete assignment counts as
// urgent. Anything due within this many days (or overdue) qualifies.
const UrgentWindowDays = 2

// DaysRemaining returns the number of days until the due date, rounded
// up. Overdue assignments yield negative values; a due date earlier the
// same day rounds to zero. Unparseable dates are treated as due today.
func DaysRemaining(dueDate string, now time.Time) int {
	due, err := time.ParseInLocation(state.DateLayout, dueDate, now.Location())
	if err != nil {
		return 0
	}
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// Urgent reports whether a is incomplete and due within the urgent
// window.
func Urgent(a state.Assignment, now time.Time) bool {
	return !a.Completed && DaysRemaining(a.DueDate, now) <= UrgentWindowDays
}

// UrgentAssignments filters to urgent assignments, preserving list
// order.
func UrgentAssignments(assignments []state.Assignment, now time.Time) []state.Assignment {
	var out []state.Assignment
	for _, a := range assignments {
		if Urgent(a, now) {
			out = append(out, a)
		}
	}
	return out
}

// Label renders the due-date countdown for display.
func Label(a state.Assignment, now time.Time) string {
	d := DaysRemaining(a.DueDate, now)
	switch {
	case d < 0:
		return "OVERDUE"
	case d == 0:
		return "DUE TODAY"
	default:
		return fmt.Sprintf("%dd left", d)
	}
}
