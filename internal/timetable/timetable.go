// Package timetable models the weekly class schedule and answers the two
// questions the dashboard keeps asking: which session is running right now,
// and which one comes next.
package timetable

import (
	"fmt"
	"time"
)

// Minute is a minute-of-day in [0, 1439].
type Minute int

// MinutesPerDay is the number of minutes in a day.
const MinutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" wall-clock string into a Minute.
func ParseClock(s string) (Minute, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", s)
	}
	return Minute(h*60 + m), nil
}

// MustClock is ParseClock for static schedule data; it panics on bad input.
func MustClock(s string) Minute {
	m, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MinuteOf returns the minute-of-day for t.
func MinuteOf(t time.Time) Minute {
	return Minute(t.Hour()*60 + t.Minute())
}

// Hour returns the hour component of the minute-of-day.
func (m Minute) Hour() int { return int(m) / 60 }

// Min returns the minute component of the minute-of-day.
func (m Minute) Min() int { return int(m) % 60 }

// String renders the minute as "HH:MM".
func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Min())
}

// ClassSession is one entry in a day's schedule. Immutable once part of a
// timetable.
type ClassSession struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Start   Minute `json:"start"`
	End     Minute `json:"end"` // exclusive; End > Start
	IsBreak bool   `json:"isBreak,omitempty"`
	Room    string `json:"room,omitempty"`
}

// DurationMinutes returns the session length in minutes.
func (s ClassSession) DurationMinutes() int {
	return int(s.End - s.Start)
}

// Contains reports whether now falls within the session's [Start, End)
// interval.
func (s ClassSession) Contains(now Minute) bool {
	return now >= s.Start && now < s.End
}

// Day is a day of the week, using time.Weekday naming.
type Day string

const (
	Sunday    Day = "Sunday"
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
)

// Days lists the week in display order, Monday first.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayOf returns the Day for t.
func DayOf(t time.Time) Day {
	return Day(t.Weekday().String())
}

// Timetable maps each day to its ordered session list. Insertion order is
// display order and the "next session" tie-break order. The runtime core
// never edits it.
type Timetable map[Day][]ClassSession

// ForDay returns the schedule for day, or nil when the day has no sessions.
func (t Timetable) ForDay(day Day) []ClassSession {
	return t[day]
}
