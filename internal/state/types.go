// Package state holds the application aggregate and the transition
// functions that are its only writers. Every transition takes a value copy
// and returns a replacement; Store serializes mutations and persists each
// result.
package state

import (
	"time"

	"github.com/sarveshai94-commits/academyquest/internal/timetable"
)

// Version identifies the snapshot blob layout.
const Version = 1

// DateLayout is the layout for calendar dates (due dates, attendance).
const DateLayout = "2006-01-02"

// Priority is an assignment's priority tier.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Assignment is a quest on the task board. It is created (seeded or via the
// new-quest form), completed exactly once, and never deleted.
type Assignment struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subject     string   `json:"subject"`
	DueDate     string   `json:"dueDate"` // DateLayout
	XPReward    int      `json:"xpReward"`
	Completed   bool     `json:"completed"`
	CompletedAt string   `json:"completedAt,omitempty"` // RFC 3339
	Priority    Priority `json:"priority"`
}

// TopicRecord is an append-only log entry for a non-break session that ended
// with at least one topic logged.
type TopicRecord struct {
	SessionID       string `json:"sessionId"`
	SubjectName     string `json:"subjectName"`
	Count           int    `json:"count"`
	DurationMinutes int    `json:"durationMinutes"`
	Date            string `json:"date"` // RFC 3339
}

// Badge is a cosmetic achievement. The catalog is static; earned badges are
// recorded on UserStats.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlockedAt,omitempty"`
}

// UserStats is the learner's progression record. Append-only except for the
// derived XP/Level pair.
type UserStats struct {
	XP           int           `json:"xp"`
	Level        int           `json:"level"`
	Badges       []Badge       `json:"badges"`
	Streak       int           `json:"streak"`
	LastActive   string        `json:"lastActive"` // RFC 3339
	Attendance   []string      `json:"attendance"` // DateLayout, no duplicates
	TopicHistory []TopicRecord `json:"topicHistory"`
}

// AttendedOn reports whether date is already in the attendance list.
func (u UserStats) AttendedOn(date string) bool {
	for _, d := range u.Attendance {
		if d == date {
			return true
		}
	}
	return false
}

// TotalTopics sums the topic counts across the study history.
func (u UserStats) TotalTopics() int {
	total := 0
	for _, r := range u.TopicHistory {
		total += r.Count
	}
	return total
}

// TotalStudyMinutes sums the session durations across the study history.
func (u UserStats) TotalStudyMinutes() int {
	total := 0
	for _, r := range u.TopicHistory {
		total += r.DurationMinutes
	}
	return total
}

// AppState is the aggregate root. It is replaced wholesale on every
// transition and persisted as a single serialized blob.
type AppState struct {
	Version          int                 `json:"version"`
	Stats            UserStats           `json:"stats"`
	Timetable        timetable.Timetable `json:"timetable"`
	Assignments      []Assignment        `json:"assignments"`
	SchoolModeActive bool                `json:"isSchoolModeActive"`
}

// Clone returns a deep copy of the mutable parts of the state. The timetable
// is shared: the runtime core never edits it.
func (s AppState) Clone() AppState {
	out := s
	out.Stats.Badges = append([]Badge(nil), s.Stats.Badges...)
	out.Stats.Attendance = append([]string(nil), s.Stats.Attendance...)
	out.Stats.TopicHistory = append([]TopicRecord(nil), s.Stats.TopicHistory...)
	out.Assignments = append([]Assignment(nil), s.Assignments...)
	return out
}

// FindAssignment returns the assignment with the given id, or nil.
func (s AppState) FindAssignment(id string) *Assignment {
	for i := range s.Assignments {
		if s.Assignments[i].ID == id {
			return &s.Assignments[i]
		}
	}
	return nil
}

// FormatDate renders t as a calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
