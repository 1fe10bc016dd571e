package dashboard

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/sarveshai94-commits/academyquest/internal/timetable"
	"github.com/sarveshai94-commits/academyquest/internal/ui/theme"
)

func (d *DashboardScreen) View(width, height int) string {
	st := d.store.State()
	day := timetable.DayOf(d.now)
	sessions := st.Timetable.ForDay(day)
	minute := timetable.MinuteOf(d.now)
	active := timetable.ActiveSession(sessions, minute)
	next := timetable.NextSession(sessions, minute)

	cw := width - 8
	if cw > 64 {
		cw = 64
	}
	if cw < 24 {
		cw = 24
	}

	var sections []string

	sections = append(sections, renderClock(d.now, string(day), cw))
	sections = append(sections, renderSchoolMode(st.SchoolModeActive, cw))
	sections = append(sections, renderActiveCard(active, d.now, cw))

	if next != nil {
		sections = append(sections, renderNextCard(next, cw))
	}

	if active != nil && !active.IsBreak {
		sections = append(sections, renderTopicCounter(d.pendingTopics, cw))
	}

	if d.lastResult != nil {
		sections = append(sections, renderBellFlash(d.lastResult.XPAwarded, cw))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func renderClock(now time.Time, day string, cw int) string {
	clock := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(now.Format("15:04:05"))

	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(day)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(clock + "\n" + label)
}

func renderSchoolMode(active bool, cw int) string {
	var txt string
	if active {
		txt = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("● SCHOOL MODE ENGAGED") +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("   [s] disengage")
	} else {
		txt = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("○ school mode off   [s] engage")
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(txt)
}

func renderActiveCard(active *timetable.ClassSession, now time.Time, cw int) string {
	if active == nil {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Width(cw - 2).
			Align(lipgloss.Center).
			Padding(0, 1).
			Foreground(theme.TextDim).
			Render("No session in progress")
	}

	name := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(active.Name)
	if active.IsBreak {
		name = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("☕ " + active.Name)
	}

	window := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s – %s", active.Start, active.End))

	countdown := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Bell in " + formatCountdown(timetable.Remaining(*active, now)))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(name + "\n" + window + "\n" + countdown)
}

// formatCountdown renders a duration as mm:ss, capping at whole hours
// shown as h:mm:ss.
func formatCountdown(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func renderNextCard(next *timetable.ClassSession, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Up next: %s at %s", next.Name, next.Start))
}

func renderTopicCounter(topics, cw int) string {
	count := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("%d", topics))

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Text).Render("Topics covered this session: ") +
			count +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("   [↑/↓ adjust]"))
}

func renderBellFlash(xp, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("🔔 SESSION COMPLETE  +%d XP", xp))
}
