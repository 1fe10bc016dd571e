package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sarveshai94-commits/academyquest/internal/progression"
	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/ui/components"
	"github.com/sarveshai94-commits/academyquest/internal/ui/theme"
)

// Block-letter title.
const hudTitleFull = `  █████╗  ██████╗ █████╗ ██████╗ ███████╗███╗   ███╗██╗   ██╗
 ██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔════╝████╗ ████║╚██╗ ██╔╝
 ███████║██║     ███████║██║  ██║█████╗  ██╔████╔██║ ╚████╔╝
 ██╔══██║██║     ██╔══██║██║  ██║██╔══╝  ██║╚██╔╝██║  ╚██╔╝
 ██║  ██║╚██████╗██║  ██║██████╔╝███████╗██║ ╚═╝ ██║   ██║
 ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═════╝ ╚══════╝╚═╝     ╚═╝   ╚═╝
                      Q  U  E  S  T`

const hudTitleCompact = "A · C · A · D · E · M · Y   Q · U · E · S · T"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for console border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 66 {
		w = 66
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(hudTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(hudTitleFull))
}

// renderXPBar renders the level and XP progress toward the next level.
func renderXPBar(level, xp int, fraction float64, cw int) string {
	barWidth := cw - 4
	if barWidth < 10 {
		barWidth = 10
	}
	bar := components.NewProgressBar("", fraction, false, barWidth).View()

	label := fmt.Sprintf("%s   %s",
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprintf("LEVEL %d", level)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d / %d XP", progression.LevelXP(xp), progression.XPPerLevel)))

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(label + "\n" + bar)
}

// renderMotivation renders the advisor's daily pep talk.
func renderMotivation(msg string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Italic(true).
		Foreground(theme.Text).
		Render(msg)
}

// renderUrgentAlert lists assignments due within the urgent window.
func renderUrgentAlert(urgent []state.Assignment, cw int) string {
	header := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render(fmt.Sprintf("⚠ %d URGENT QUEST(S)", len(urgent)))

	var lines []string
	lines = append(lines, header)
	for _, a := range urgent {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(a.Title))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Error).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderQuestMenu renders each menu item as a fixed-width button.
func renderQuestMenu(items []string, selected int, cw int, compact bool) string {
	if compact {
		return renderQuestMenuCompact(items, selected, cw)
	}

	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderQuestMenuCompact renders menu items as simple text lines for
// small terminals where bordered buttons would overflow.
func renderQuestMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// rival is a static leaderboard entry.
type rival struct {
	Name   string
	Level  int
	Avatar string
}

var rivals = []rival{
	{"X_Factor_Hero", 19, "🐉"},
	{"QuantumScholar", 16, "🌌"},
	{"VoidWalker_7", 14, "🌑"},
}

// renderRanking renders the static global ranking with the player
// slotted in by level.
func renderRanking(playerName string, xp, cw int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("GLOBAL RANKING")

	playerLevel := progression.LevelFor(xp)

	lines := []string{header}
	inserted := false
	for _, r := range rivals {
		if !inserted && playerLevel >= r.Level {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render(fmt.Sprintf("🎮 %s  LVL %d", playerName, playerLevel)))
			inserted = true
		}
		lines = append(lines, dim.Render(fmt.Sprintf("%s %s  LVL %d", r.Avatar, r.Name, r.Level)))
	}
	if !inserted {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("🎮 %s  LVL %d", playerName, playerLevel)))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderBadges renders the badge catalog. Unearned badges show dimmed.
func renderBadges(earned []state.Badge, cw int) string {
	earnedIDs := make(map[string]bool, len(earned))
	for _, b := range earned {
		earnedIDs[b.ID] = true
	}

	var parts []string
	for _, b := range state.BadgeCatalog {
		if earnedIDs[b.ID] {
			parts = append(parts, b.Icon)
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(b.Icon))
		}
	}

	header := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Bold(true).
		Render("MASTERY BADGES")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(header + "\n" + strings.Join(parts, "  "))
}

// renderConsoleFrame wraps content in a double-border frame, centering
// it within the given dimensions.
func renderConsoleFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
