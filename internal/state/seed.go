package state

import (
	"time"

	"github.com/sarveshai94-commits/academyquest/internal/timetable"
)

// BadgeCatalog is the static set of earnable badges, shown on the home
// screen. Nothing awards them yet.
var BadgeCatalog = []Badge{
	{ID: "early_bird", Name: "Early Bird", Description: "Complete a task 24h before deadline", Icon: "🌅"},
	{ID: "study_warrior", Name: "Study Warrior", Description: "Complete 10 assignments", Icon: "⚔️"},
	{ID: "perfectionist", Name: "Perfectionist", Description: "No missed classes for a week", Icon: "💎"},
	{ID: "night_owl", Name: "Night Owl", Description: "Finish a task after 10 PM", Icon: "🦉"},
	{ID: "first_blood", Name: "First Blood", Description: "Complete your first assignment", Icon: "🩸"},
}

// defaultTimetable is the built-in weekly schedule used on first run.
func defaultTimetable() timetable.Timetable {
	return timetable.Timetable{
		timetable.Monday: {
			{ID: "1", Name: "Mathematics", Start: timetable.MustClock("08:30"), End: timetable.MustClock("09:30")},
			{ID: "2", Name: "Physics", Start: timetable.MustClock("09:40"), End: timetable.MustClock("10:40")},
			{ID: "3", Name: "Recess", Start: timetable.MustClock("10:40"), End: timetable.MustClock("11:00"), IsBreak: true},
			{ID: "4", Name: "Literature", Start: timetable.MustClock("11:00"), End: timetable.MustClock("12:00")},
			{ID: "5", Name: "Lunch Break", Start: timetable.MustClock("12:00"), End: timetable.MustClock("13:00"), IsBreak: true},
			{ID: "6", Name: "Computer Science", Start: timetable.MustClock("13:00"), End: timetable.MustClock("14:30")},
		},
		timetable.Tuesday: {
			{ID: "7", Name: "Chemistry", Start: timetable.MustClock("09:00"), End: timetable.MustClock("10:30")},
			{ID: "8", Name: "History", Start: timetable.MustClock("10:45"), End: timetable.MustClock("12:00")},
		},
	}
}

// Seed builds the first-run state: a little XP to make the bar visible and
// two upcoming assignments with due dates relative to now.
func Seed(now time.Time) AppState {
	return AppState{
		Version: Version,
		Stats: UserStats{
			XP:           450,
			Level:        1,
			Badges:       []Badge{},
			Streak:       3,
			LastActive:   now.Format(time.RFC3339),
			Attendance:   []string{},
			TopicHistory: []TopicRecord{},
		},
		Timetable: defaultTimetable(),
		Assignments: []Assignment{
			{
				ID:       "a1",
				Title:    "Calculus Quiz Prep",
				Subject:  "Math",
				DueDate:  FormatDate(now.AddDate(0, 0, 2)),
				XPReward: 500,
				Priority: PriorityHigh,
			},
			{
				ID:       "a2",
				Title:    "Code a React App",
				Subject:  "CS",
				DueDate:  FormatDate(now.AddDate(0, 0, 5)),
				XPReward: 800,
				Priority: PriorityMedium,
			},
		},
		SchoolModeActive: false,
	}
}
