package timetable

import (
	"testing"
	"time"
)

func mondaySchedule() []ClassSession {
	return []ClassSession{
		{ID: "1", Name: "Mathematics", Start: MustClock("08:30"), End: MustClock("09:30")},
		{ID: "2", Name: "Physics", Start: MustClock("09:40"), End: MustClock("10:40")},
	}
}

func TestActiveSession_InsideFirst(t *testing.T) {
	s := ActiveSession(mondaySchedule(), MustClock("09:00"))
	if s == nil || s.ID != "1" {
		t.Fatalf("ActiveSession at 09:00 = %v, want session 1", s)
	}
}

func TestActiveSession_Gap(t *testing.T) {
	if s := ActiveSession(mondaySchedule(), MustClock("09:35")); s != nil {
		t.Fatalf("ActiveSession at 09:35 = %v, want nil", s)
	}
}

func TestActiveSession_HalfOpenInterval(t *testing.T) {
	sched := mondaySchedule()
	if s := ActiveSession(sched, MustClock("08:30")); s == nil || s.ID != "1" {
		t.Error("start minute should be inside the session")
	}
	if s := ActiveSession(sched, MustClock("09:30")); s != nil {
		t.Errorf("end minute should be outside the session, got %v", s)
	}
}

func TestNextSession(t *testing.T) {
	sched := mondaySchedule()

	s := NextSession(sched, MustClock("09:00"))
	if s == nil || s.ID != "2" {
		t.Fatalf("NextSession at 09:00 = %v, want session 2", s)
	}
	if s.Start != MustClock("09:40") {
		t.Errorf("next start = %s, want 09:40", s.Start)
	}

	s = NextSession(sched, MustClock("09:35"))
	if s == nil || s.ID != "2" {
		t.Fatalf("NextSession at 09:35 = %v, want session 2", s)
	}

	if s := NextSession(sched, MustClock("10:40")); s != nil {
		t.Fatalf("NextSession at 10:40 = %v, want nil", s)
	}
}

func TestNextSession_BeforeDayStarts(t *testing.T) {
	s := NextSession(mondaySchedule(), MustClock("07:00"))
	if s == nil || s.ID != "1" {
		t.Fatalf("NextSession at 07:00 = %v, want session 1", s)
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("13:05")
	if err != nil {
		t.Fatal(err)
	}
	if m != 13*60+5 {
		t.Errorf("ParseClock(13:05) = %d, want %d", m, 13*60+5)
	}
	if m.String() != "13:05" {
		t.Errorf("String() = %q, want 13:05", m.String())
	}

	for _, bad := range []string{"25:00", "12:61", "noon", ""} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) succeeded, want error", bad)
		}
	}
}

func TestAtEndBoundary(t *testing.T) {
	s := ClassSession{ID: "1", Name: "Mathematics", Start: MustClock("08:30"), End: MustClock("09:30")}

	boundary := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	if !AtEndBoundary(s, boundary) {
		t.Error("expected bell at 09:30:00")
	}
	if AtEndBoundary(s, boundary.Add(time.Second)) {
		t.Error("no bell at 09:30:01")
	}
	if AtEndBoundary(s, boundary.Add(-time.Second)) {
		t.Error("no bell at 09:29:59")
	}
	if AtEndBoundary(s, boundary.Add(time.Minute)) {
		t.Error("no bell at 09:31:00")
	}
}

func TestRemaining(t *testing.T) {
	s := ClassSession{ID: "1", Name: "Mathematics", Start: MustClock("08:30"), End: MustClock("09:30")}

	now := time.Date(2026, 3, 2, 9, 28, 30, 0, time.UTC)
	if got := Remaining(s, now); got != 90*time.Second {
		t.Errorf("Remaining = %s, want 1m30s", got)
	}

	past := time.Date(2026, 3, 2, 9, 31, 0, 0, time.UTC)
	if got := Remaining(s, past); got != 0 {
		t.Errorf("Remaining past end = %s, want 0", got)
	}
}

func TestDurationMinutes(t *testing.T) {
	s := ClassSession{Start: MustClock("13:00"), End: MustClock("14:30")}
	if got := s.DurationMinutes(); got != 90 {
		t.Errorf("DurationMinutes = %d, want 90", got)
	}
}

func TestDayOf(t *testing.T) {
	// 2026-03-02 is a Monday.
	if d := DayOf(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)); d != Monday {
		t.Errorf("DayOf = %s, want Monday", d)
	}
}
