// Package stats shows lifetime study totals and the topic history log.
package stats

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sarveshai94-commits/academyquest/internal/progression"
	"github.com/sarveshai94-commits/academyquest/internal/screen"
	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/ui/layout"
	"github.com/sarveshai94-commits/academyquest/internal/ui/theme"
)

// historyRows caps how many topic records display at once.
const historyRows = 12

// StatsScreen summarizes progress.
type StatsScreen struct {
	store  *state.Store
	offset int
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates the stats screen.
func New(st *state.Store) *StatsScreen {
	return &StatsScreen{store: st}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	history := s.store.State().Stats.TopicHistory
	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < len(history)-historyRows {
			s.offset++
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	st := s.store.State()

	cw := width - 8
	if cw > 62 {
		cw = 62
	}
	if cw < 28 {
		cw = 28
	}

	var sections []string

	sections = append(sections, renderTotals(st.Stats, cw))
	sections = append(sections, renderHistory(st.Stats.TopicHistory, s.offset, cw))

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func renderTotals(stats state.UserStats, cw int) string {
	val := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	rows := []string{
		dim.Render("Level        ") + val.Render(fmt.Sprintf("%d", stats.Level)),
		dim.Render("Total XP     ") + val.Render(fmt.Sprintf("%d", stats.XP)),
		dim.Render("Next level   ") + val.Render(
			fmt.Sprintf("%d / %d XP", progression.LevelXP(stats.XP), progression.XPPerLevel)),
		dim.Render("Topics       ") + val.Render(fmt.Sprintf("%d", stats.TotalTopics())),
		dim.Render("Study time   ") + val.Render(formatMinutes(stats.TotalStudyMinutes())),
		dim.Render("Attendance   ") + val.Render(fmt.Sprintf("%d day(s)", len(stats.Attendance))),
		dim.Render("Streak       ") + val.Render(fmt.Sprintf("%d day(s)", stats.Streak)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Padding(0, 2).
		Render(strings.Join(rows, "\n"))
}

func formatMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}

func renderHistory(history []state.TopicRecord, offset, cw int) string {
	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("STUDY LOG")

	if len(history) == 0 {
		return header + "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No sessions logged yet. Ring that bell!")
	}

	// Newest first.
	var lines []string
	shown := 0
	for i := len(history) - 1 - offset; i >= 0 && shown < historyRows; i-- {
		r := history[i]
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(displayDate(r.Date)),
			lipgloss.NewStyle().Foreground(theme.Text).Render(r.SubjectName),
			lipgloss.NewStyle().Foreground(theme.Accent).Render(
				fmt.Sprintf("%d topic(s) · %dm", r.Count, r.DurationMinutes))))
		shown++
	}

	return header + "\n" + lipgloss.NewStyle().
		Width(cw).
		Render(strings.Join(lines, "\n"))
}

// displayDate shortens an RFC 3339 timestamp to its calendar date.
func displayDate(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(state.DateLayout)
	}
	return s
}

func (s *StatsScreen) Title() string {
	return "Study Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll log"},
		{Key: "Esc", Description: "Back"},
	}
}
