package state

import (
	"time"

	"github.com/sarveshai94-commits/academyquest/internal/progression"
	"github.com/sarveshai94-commits/academyquest/internal/timetable"
)

// addXP applies an experience delta and recomputes the level in the same
// step, keeping the level invariant intact between transitions.
func addXP(s *AppState, delta int) {
	s.Stats.XP += delta
	s.Stats.Level = progression.LevelFor(s.Stats.XP)
}

// BellResult describes what a bell transition awarded.
type BellResult struct {
	XPAwarded int
	Record    *TopicRecord // nil for the flat rest award
}

// ApplyBell handles the end of a class session. A non-break session with
// pending topics logs a TopicRecord and awards per-topic XP plus the session
// bonus; anything else awards the flat rest XP.
func ApplyBell(s AppState, ended timetable.ClassSession, pendingTopics int, now time.Time) (AppState, BellResult) {
	next := s.Clone()

	if !ended.IsBreak && pendingTopics > 0 {
		record := TopicRecord{
			SessionID:       ended.ID,
			SubjectName:     ended.Name,
			Count:           pendingTopics,
			DurationMinutes: ended.DurationMinutes(),
			Date:            now.Format(time.RFC3339),
		}
		next.Stats.TopicHistory = append(next.Stats.TopicHistory, record)
		award := pendingTopics*progression.XPPerTopic + progression.SessionBonusXP
		addXP(&next, award)
		return next, BellResult{XPAwarded: award, Record: &next.Stats.TopicHistory[len(next.Stats.TopicHistory)-1]}
	}

	addXP(&next, progression.RestXP)
	return next, BellResult{XPAwarded: progression.RestXP}
}

// CompleteTask marks the assignment with the given id completed and awards
// its reward. Unknown or already-completed ids return the input state
// unchanged, so repeat calls are no-ops.
func CompleteTask(s AppState, id string, now time.Time) (AppState, bool) {
	target := s.FindAssignment(id)
	if target == nil || target.Completed {
		return s, false
	}

	next := s.Clone()
	for i := range next.Assignments {
		if next.Assignments[i].ID == id {
			next.Assignments[i].Completed = true
			next.Assignments[i].CompletedAt = now.Format(time.RFC3339)
			addXP(&next, next.Assignments[i].XPReward)
			break
		}
	}
	return next, true
}

// ToggleSchoolMode flips school mode. Activation on a date not yet in the
// attendance list appends it and awards the attendance bonus; a repeat
// activation on the same date grants nothing extra. Deactivation never
// touches stats. The second return reports whether attendance was credited.
func ToggleSchoolMode(s AppState, now time.Time) (AppState, bool) {
	next := s.Clone()

	if next.SchoolModeActive {
		next.SchoolModeActive = false
		return next, false
	}

	next.SchoolModeActive = true
	today := FormatDate(now)
	if next.Stats.AttendedOn(today) {
		return next, false
	}
	next.Stats.Attendance = append(next.Stats.Attendance, today)
	addXP(&next, progression.AttendanceXP)
	return next, true
}

// AddAssignment appends a new assignment to the board.
func AddAssignment(s AppState, a Assignment) AppState {
	next := s.Clone()
	next.Assignments = append(next.Assignments, a)
	return next
}

// Touch updates the last-active timestamp.
func Touch(s AppState, now time.Time) AppState {
	next := s.Clone()
	next.Stats.LastActive = now.Format(time.RFC3339)
	return next
}
