// Package schedule renders the weekly timetable.
package schedule

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sarveshai94-commits/academyquest/internal/screen"
	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/timetable"
	"github.com/sarveshai94-commits/academyquest/internal/ui/layout"
	"github.com/sarveshai94-commits/academyquest/internal/ui/theme"
)

// ScheduleScreen shows the week, one day at a time.
type ScheduleScreen struct {
	store *state.Store

	// dayIdx indexes timetable.Days.
	dayIdx int
}

var _ screen.Screen = (*ScheduleScreen)(nil)

// New creates the schedule screen opened on today.
func New(st *state.Store) *ScheduleScreen {
	today := timetable.DayOf(time.Now())
	idx := 0
	for i, d := range timetable.Days {
		if d == today {
			idx = i
			break
		}
	}
	return &ScheduleScreen{store: st, dayIdx: idx}
}

func (s *ScheduleScreen) Init() tea.Cmd {
	return nil
}

func (s *ScheduleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		s.dayIdx = (s.dayIdx + len(timetable.Days) - 1) % len(timetable.Days)
	case "right", "l":
		s.dayIdx = (s.dayIdx + 1) % len(timetable.Days)
	}
	return s, nil
}

func (s *ScheduleScreen) View(width, height int) string {
	st := s.store.State()
	now := time.Now()
	day := timetable.Days[s.dayIdx]
	sessions := st.Timetable.ForDay(day)
	isToday := day == timetable.DayOf(now)
	minute := timetable.MinuteOf(now)

	cw := width - 8
	if cw > 60 {
		cw = 60
	}
	if cw < 28 {
		cw = 28
	}

	var sections []string

	sections = append(sections, renderDayHeader(string(day), isToday, cw))

	if len(sessions) == 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render("Free day. No sessions scheduled."))
	}

	for _, sess := range sessions {
		current := isToday && sess.Contains(minute)
		sections = append(sections, renderSessionRow(sess, current, cw))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func renderDayHeader(day string, isToday bool, cw int) string {
	label := day
	style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if isToday {
		label = "▸ " + day + " (today)"
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	nav := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  [←/→ change day]")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(label)+nav) + "\n"
}

func renderSessionRow(sess timetable.ClassSession, current bool, cw int) string {
	name := sess.Name
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if sess.IsBreak {
		name = "☕ " + name
		nameStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	window := fmt.Sprintf("%s – %s", sess.Start, sess.End)

	borderColor := theme.Border
	if current {
		borderColor = theme.Primary
		nameStyle = nameStyle.Bold(true)
	}

	line := nameStyle.Render(name) + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(window)
	if current {
		line += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("  ● NOW")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(cw - 2).
		Padding(0, 1).
		Render(line)
}

func (s *ScheduleScreen) Title() string {
	return "Timetable"
}

// KeyHints customizes the footer for this screen.
func (s *ScheduleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Change day"},
		{Key: "Esc", Description: "Back"},
	}
}
