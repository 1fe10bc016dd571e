package quests

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/sarveshai94-commits/academyquest/internal/advisor"
	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/triage"
	"github.com/sarveshai94-commits/academyquest/internal/ui/components"
	"github.com/sarveshai94-commits/academyquest/internal/ui/layout"
	"github.com/sarveshai94-commits/academyquest/internal/ui/theme"
)

func (q *QuestScreen) View(width, height int) string {
	cw := width - 8
	if cw > 70 {
		cw = 70
	}
	if cw < 30 {
		cw = 30
	}

	var content string
	if q.mode == modeForm {
		content = q.viewForm(cw)
	} else {
		content = q.viewList(cw)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (q *QuestScreen) viewList(cw int) string {
	st := q.store.State()
	now := time.Now()

	var sections []string

	header := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("ACTIVE QUESTS")
	sections = append(sections, header)

	if len(st.Assignments) == 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Quest board is clear. Press [n] to post a new quest."))
	}

	for i, a := range st.Assignments {
		sections = append(sections, renderQuestRow(a, i == q.selected, now, cw))
	}

	if q.flash != nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("✦ %s cleared! +%d XP", q.flash.Title, q.flash.XP)))
	}

	if q.boss != nil {
		sections = append(sections, renderBossCard(q.boss, cw))
	} else if q.bossPending {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Scanning for today's boss..."))
	}

	return strings.Join(sections, "\n\n")
}

func renderQuestRow(a state.Assignment, selected bool, now time.Time, cw int) string {
	check := "☐"
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if a.Completed {
		check = "☑"
		titleStyle = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
	}

	label := triage.Label(a, now)
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if !a.Completed && triage.Urgent(a, now) {
		labelStyle = theme.Urgent
	}

	line := fmt.Sprintf("%s %s  %s",
		check,
		titleStyle.Render(a.Title),
		labelStyle.Render(label))
	meta := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("   %s · %s · +%d XP", a.Subject, a.Priority, a.XPReward))

	borderColor := theme.Border
	if selected {
		borderColor = theme.Primary
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(cw - 2).
		Padding(0, 1).
		Render(line + "\n" + meta)
}

func renderBossCard(boss *advisor.BossSuggestion, cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("👹 DAILY BOSS: " + boss.Title)
	reason := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(boss.Reason)
	strategy := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Italic(true).
		Render("Strategy: " + boss.Strategy)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Error).
		Width(cw - 2).
		Padding(0, 1).
		Render(title + "\n" + reason + "\n" + strategy)
}

func (q *QuestScreen) viewForm(cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	focused := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	row := func(idx int, name, view string) string {
		l := label
		if q.form.focus == idx {
			l = focused
		}
		return l.Render(name) + "\n" + view
	}

	prio := ""
	for i, p := range priorities {
		s := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == q.form.priority {
			s = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}
		prio += s.Render(string(p)) + "  "
	}

	submit := components.NewButton("POST QUEST", q.form.onLastField(), nil).View()

	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("POST NEW QUEST"),
		row(fieldTitle, "Title", q.form.title.View()),
		row(fieldSubject, "Subject", q.form.subject.View()),
		row(fieldDueDays, "Due in (days)", q.form.dueDays.View()),
		row(fieldXP, "XP reward", q.form.xp.View()),
		row(fieldPriority, "Priority  [←/→]", prio),
		submit,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("[tab] next field   [enter] submit   [esc] cancel"),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Padding(1, 2).
		Render(strings.Join(sections, "\n\n"))
}

// KeyHints customizes the footer for this screen.
func (q *QuestScreen) KeyHints() []layout.KeyHint {
	if q.mode == modeForm {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Complete"},
		{Key: "n", Description: "New quest"},
		{Key: "b", Description: "Daily boss"},
		{Key: "Esc", Description: "Back"},
	}
}
