// Package home implements the main menu screen.
package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sarveshai94-commits/academyquest/internal/advisor"
	"github.com/sarveshai94-commits/academyquest/internal/progression"
	"github.com/sarveshai94-commits/academyquest/internal/router"
	"github.com/sarveshai94-commits/academyquest/internal/screen"
	"github.com/sarveshai94-commits/academyquest/internal/screens/dashboard"
	"github.com/sarveshai94-commits/academyquest/internal/screens/quests"
	"github.com/sarveshai94-commits/academyquest/internal/screens/schedule"
	"github.com/sarveshai94-commits/academyquest/internal/screens/stats"
	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/triage"
	"github.com/sarveshai94-commits/academyquest/internal/ui/components"
)

// motivationMsg carries the advisor's pep talk once it arrives.
type motivationMsg string

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	store      *state.Store
	adv        *advisor.Service
	playerName string

	menu       components.Menu
	menuLabels []string
	motivation string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *state.Store, adv *advisor.Service, playerName string) *HomeScreen {
	menuLabels := []string{"ENTER CLASS", "QUEST LOG", "TIMETABLE", "STUDY STATS", "LOG OFF"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(st)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quests.New(st, adv)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: schedule.New(st)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(st)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		store:      st,
		adv:        adv,
		playerName: playerName,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.fetchMotivation()
}

// fetchMotivation asks the advisor for a pep talk off the UI loop.
func (h *HomeScreen) fetchMotivation() tea.Cmd {
	st := h.store.State()
	name := h.playerName
	level := st.Stats.Level
	adv := h.adv

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return motivationMsg(adv.MotivationalMessage(ctx, name, level))
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(motivationMsg); ok {
		h.motivation = string(m)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	st := h.store.State()
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	sections = append(sections, renderXPBar(
		st.Stats.Level,
		st.Stats.XP,
		progression.ProgressFraction(st.Stats.XP),
		cw))

	if h.motivation != "" {
		sections = append(sections, renderMotivation(h.motivation, cw))
	}

	if urgent := triage.UrgentAssignments(st.Assignments, time.Now()); len(urgent) > 0 {
		sections = append(sections, renderUrgentAlert(urgent, cw))
	}

	sections = append(sections, renderQuestMenu(h.menuLabels, h.menu.Selected, cw, compact))

	if !compact {
		sections = append(sections, renderRanking(h.playerName, st.Stats.XP, cw))
		sections = append(sections, renderBadges(st.Stats.Badges, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderConsoleFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
