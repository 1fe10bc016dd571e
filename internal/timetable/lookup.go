package timetable

import "time"

// ActiveSession returns the first session in display order whose
// [Start, End) interval contains now, or nil when no session is running.
// Schedules are assumed non-overlapping; with overlapping input the first
// match wins.
func ActiveSession(sessions []ClassSession, now Minute) *ClassSession {
	for i := range sessions {
		if sessions[i].Contains(now) {
			return &sessions[i]
		}
	}
	return nil
}

// NextSession returns the session with the smallest start time strictly
// greater than now, ties broken by list order. Returns nil when the day has
// nothing left.
func NextSession(sessions []ClassSession, now Minute) *ClassSession {
	var next *ClassSession
	for i := range sessions {
		s := &sessions[i]
		if s.Start <= now {
			continue
		}
		if next == nil || s.Start < next.Start {
			next = s
		}
	}
	return next
}

// AtEndBoundary reports whether t is the exact bell instant for the session:
// the wall-clock hour and minute equal the session's end minute and the
// second component is zero. The dashboard polls once per second, so this
// matches at most one tick per session end.
func AtEndBoundary(s ClassSession, t time.Time) bool {
	return t.Hour() == s.End.Hour() && t.Minute() == s.End.Min() && t.Second() == 0
}

// Remaining returns the time left until the session's end minute, floored at
// zero.
func Remaining(s ClassSession, t time.Time) time.Duration {
	end := time.Date(t.Year(), t.Month(), t.Day(), s.End.Hour(), s.End.Min(), 0, 0, t.Location())
	d := end.Sub(t)
	if d < 0 {
		return 0
	}
	return d
}
