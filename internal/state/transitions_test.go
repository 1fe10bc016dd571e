package state

import (
	"testing"
	"time"

	"github.com/sarveshai94-commits/academyquest/internal/progression"
	"github.com/sarveshai94-commits/academyquest/internal/timetable"
)

var testNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func testState() AppState {
	s := Seed(testNow)
	return s
}

func studySession() timetable.ClassSession {
	return timetable.ClassSession{
		ID:    "1",
		Name:  "Mathematics",
		Start: timetable.MustClock("08:30"),
		End:   timetable.MustClock("09:30"),
	}
}

func breakSession() timetable.ClassSession {
	return timetable.ClassSession{
		ID:      "3",
		Name:    "Recess",
		Start:   timetable.MustClock("10:40"),
		End:     timetable.MustClock("11:00"),
		IsBreak: true,
	}
}

func TestApplyBell_TopicsLogged(t *testing.T) {
	s := testState()
	before := s.Stats.XP

	next, result := ApplyBell(s, studySession(), 3, testNow)

	if result.XPAwarded != 160 {
		t.Errorf("XPAwarded = %d, want 160", result.XPAwarded)
	}
	if next.Stats.XP != before+160 {
		t.Errorf("xp = %d, want %d", next.Stats.XP, before+160)
	}
	if len(next.Stats.TopicHistory) != 1 {
		t.Fatalf("TopicHistory len = %d, want 1", len(next.Stats.TopicHistory))
	}
	rec := next.Stats.TopicHistory[0]
	if rec.Count != 3 {
		t.Errorf("record count = %d, want 3", rec.Count)
	}
	if rec.DurationMinutes != 60 {
		t.Errorf("record duration = %d, want 60", rec.DurationMinutes)
	}
	if rec.SessionID != "1" || rec.SubjectName != "Mathematics" {
		t.Errorf("record identity = %s/%s", rec.SessionID, rec.SubjectName)
	}
	if next.Stats.Level != progression.LevelFor(next.Stats.XP) {
		t.Error("level invariant violated after bell")
	}
}

func TestApplyBell_BreakSession(t *testing.T) {
	s := testState()
	before := s.Stats.XP

	// Topics logged during a break are not credited.
	next, result := ApplyBell(s, breakSession(), 2, testNow)

	if result.XPAwarded != 50 {
		t.Errorf("XPAwarded = %d, want 50", result.XPAwarded)
	}
	if result.Record != nil {
		t.Error("break session should not produce a TopicRecord")
	}
	if next.Stats.XP != before+50 {
		t.Errorf("xp = %d, want %d", next.Stats.XP, before+50)
	}
	if len(next.Stats.TopicHistory) != 0 {
		t.Errorf("TopicHistory len = %d, want 0", len(next.Stats.TopicHistory))
	}
}

func TestApplyBell_NoTopics(t *testing.T) {
	s := testState()

	next, result := ApplyBell(s, studySession(), 0, testNow)

	if result.XPAwarded != 50 {
		t.Errorf("XPAwarded = %d, want 50", result.XPAwarded)
	}
	if len(next.Stats.TopicHistory) != 0 {
		t.Errorf("TopicHistory len = %d, want 0", len(next.Stats.TopicHistory))
	}
}

func TestApplyBell_LevelsUp(t *testing.T) {
	s := testState()
	s.Stats.XP = 950
	s.Stats.Level = 1

	next, _ := ApplyBell(s, studySession(), 3, testNow)

	if next.Stats.XP != 1110 {
		t.Errorf("xp = %d, want 1110", next.Stats.XP)
	}
	if next.Stats.Level != 2 {
		t.Errorf("level = %d, want 2", next.Stats.Level)
	}
}

func TestApplyBell_InputUntouched(t *testing.T) {
	s := testState()
	ApplyBell(s, studySession(), 3, testNow)

	if len(s.Stats.TopicHistory) != 0 || s.Stats.XP != 450 {
		t.Error("ApplyBell mutated its input state")
	}
}

func TestCompleteTask(t *testing.T) {
	s := testState()
	before := s.Stats.XP

	next, changed := CompleteTask(s, "a1", testNow)
	if !changed {
		t.Fatal("expected a change")
	}

	a := next.FindAssignment("a1")
	if a == nil || !a.Completed {
		t.Fatal("a1 not completed")
	}
	if a.CompletedAt == "" {
		t.Error("CompletedAt not set")
	}
	if next.Stats.XP != before+500 {
		t.Errorf("xp = %d, want %d", next.Stats.XP, before+500)
	}
	if next.Stats.Level != progression.LevelFor(next.Stats.XP) {
		t.Error("level invariant violated after completion")
	}

	// Other assignments untouched.
	if b := next.FindAssignment("a2"); b == nil || b.Completed {
		t.Error("a2 should be untouched")
	}
}

func TestCompleteTask_Idempotent(t *testing.T) {
	s := testState()

	once, _ := CompleteTask(s, "a1", testNow)
	twice, changed := CompleteTask(once, "a1", testNow)

	if changed {
		t.Error("second completion reported a change")
	}
	if twice.Stats.XP != once.Stats.XP {
		t.Errorf("xp changed on repeat: %d vs %d", twice.Stats.XP, once.Stats.XP)
	}
}

func TestCompleteTask_UnknownID(t *testing.T) {
	s := testState()

	next, changed := CompleteTask(s, "nope", testNow)
	if changed {
		t.Error("unknown id reported a change")
	}
	if next.Stats.XP != s.Stats.XP {
		t.Error("unknown id changed xp")
	}
}

func TestToggleSchoolMode_FirstActivation(t *testing.T) {
	s := testState()
	before := s.Stats.XP

	next, credited := ToggleSchoolMode(s, testNow)

	if !next.SchoolModeActive {
		t.Error("school mode should be active")
	}
	if !credited {
		t.Error("first activation should credit attendance")
	}
	if next.Stats.XP != before+200 {
		t.Errorf("xp = %d, want %d", next.Stats.XP, before+200)
	}
	if len(next.Stats.Attendance) != 1 || next.Stats.Attendance[0] != "2026-03-02" {
		t.Errorf("attendance = %v", next.Stats.Attendance)
	}
}

func TestToggleSchoolMode_BonusOncePerDay(t *testing.T) {
	s := testState()

	on, _ := ToggleSchoolMode(s, testNow)
	off, credited := ToggleSchoolMode(on, testNow)
	if credited {
		t.Error("deactivation credited attendance")
	}
	if off.SchoolModeActive {
		t.Error("school mode should be off")
	}
	if off.Stats.XP != on.Stats.XP {
		t.Error("deactivation changed xp")
	}

	onAgain, credited := ToggleSchoolMode(off, testNow.Add(2*time.Hour))
	if credited {
		t.Error("second activation on the same date credited attendance")
	}
	if onAgain.Stats.XP != on.Stats.XP {
		t.Errorf("second activation changed xp: %d vs %d", onAgain.Stats.XP, on.Stats.XP)
	}
	if len(onAgain.Stats.Attendance) != 1 {
		t.Errorf("attendance has duplicates: %v", onAgain.Stats.Attendance)
	}
}

func TestToggleSchoolMode_NewDay(t *testing.T) {
	s := testState()

	on, _ := ToggleSchoolMode(s, testNow)
	off, _ := ToggleSchoolMode(on, testNow)
	nextDay, credited := ToggleSchoolMode(off, testNow.AddDate(0, 0, 1))

	if !credited {
		t.Error("activation on a new date should credit attendance")
	}
	if len(nextDay.Stats.Attendance) != 2 {
		t.Errorf("attendance = %v, want two dates", nextDay.Stats.Attendance)
	}
}

func TestAddAssignment(t *testing.T) {
	s := testState()

	next := AddAssignment(s, Assignment{
		ID:       "a3",
		Title:    "Essay Draft",
		Subject:  "Literature",
		DueDate:  "2026-03-09",
		XPReward: 300,
		Priority: PriorityLow,
	})

	if len(next.Assignments) != 3 {
		t.Fatalf("assignments len = %d, want 3", len(next.Assignments))
	}
	if len(s.Assignments) != 2 {
		t.Error("AddAssignment mutated its input")
	}
	if next.FindAssignment("a3") == nil {
		t.Error("new assignment not findable")
	}
}

func TestSeed(t *testing.T) {
	s := Seed(testNow)

	if s.Stats.XP != 450 || s.Stats.Level != 1 {
		t.Errorf("seed stats = %d xp, level %d", s.Stats.XP, s.Stats.Level)
	}
	if len(s.Assignments) != 2 {
		t.Fatalf("seed assignments = %d, want 2", len(s.Assignments))
	}
	if s.Assignments[0].DueDate != "2026-03-04" {
		t.Errorf("first due date = %s, want 2026-03-04", s.Assignments[0].DueDate)
	}
	if s.Assignments[1].DueDate != "2026-03-07" {
		t.Errorf("second due date = %s, want 2026-03-07", s.Assignments[1].DueDate)
	}
	if len(s.Timetable[timetable.Monday]) != 6 {
		t.Errorf("Monday sessions = %d, want 6", len(s.Timetable[timetable.Monday]))
	}
	if s.SchoolModeActive {
		t.Error("seed should start with school mode off")
	}
}
