// Package dashboard implements the live class dashboard: the clock,
// the current and next session, topic logging, and the session-end
// bell.
package dashboard

import (
	"context"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sarveshai94-commits/academyquest/internal/screen"
	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/timetable"
	"github.com/sarveshai94-commits/academyquest/internal/ui/layout"
)

// DashboardScreen tracks the school day in real time.
type DashboardScreen struct {
	store *state.Store

	now           time.Time
	pendingTopics int

	// lastBellKey guards against the bell firing more than once for the
	// same session-minute while ticks land inside second zero.
	lastBellKey string

	lastResult *state.BellResult
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard screen.
func New(st *state.Store) *DashboardScreen {
	return &DashboardScreen{
		store: st,
		now:   time.Now(),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return tickClock()
}

func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		return d.handleTick(time.Time(msg))

	case bellRungMsg:
		d.lastResult = &msg.Result
		d.pendingTopics = 0
		return d, tea.Tick(4*time.Second, func(time.Time) tea.Msg {
			return flashDoneMsg{}
		})

	case flashDoneMsg:
		d.lastResult = nil
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	return d, nil
}

func (d *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "+":
		d.pendingTopics++
	case "down", "j", "-":
		if d.pendingTopics > 0 {
			d.pendingTopics--
		}
	case "s":
		_, _ = d.store.ToggleSchoolMode(context.Background())
	}
	return d, nil
}

func (d *DashboardScreen) handleTick(now time.Time) (screen.Screen, tea.Cmd) {
	d.now = now

	st := d.store.State()
	if !st.SchoolModeActive {
		return d, tickClock()
	}
	sessions := st.Timetable.ForDay(timetable.DayOf(now))

	// The ending session is no longer "active" at its own end boundary,
	// so scan the whole day for a matching end time.
	for _, s := range sessions {
		if !timetable.AtEndBoundary(s, now) {
			continue
		}
		key := s.ID + "@" + now.Format("15:04")
		if key == d.lastBellKey {
			break
		}
		d.lastBellKey = key
		return d, tea.Batch(tickClock(), d.ringBell(s))
	}

	return d, tickClock()
}

// ringBell awards session XP and sounds the terminal bell.
func (d *DashboardScreen) ringBell(ended timetable.ClassSession) tea.Cmd {
	topics := d.pendingTopics
	return func() tea.Msg {
		_, _ = os.Stdout.WriteString("\a")
		_, result := d.store.HandleBell(context.Background(), ended, topics)
		return bellRungMsg{Result: result}
	}
}

func (d *DashboardScreen) Title() string {
	return "Class Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topics"},
		{Key: "s", Description: "School mode"},
		{Key: "Esc", Description: "Back"},
	}
}
