// Package quests implements the assignment log: browsing, completing,
// and creating quests, plus the advisor's daily boss pick.
package quests

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sarveshai94-commits/academyquest/internal/advisor"
	"github.com/sarveshai94-commits/academyquest/internal/screen"
	"github.com/sarveshai94-commits/academyquest/internal/state"
)

// bossMsg carries the advisor's daily boss pick.
type bossMsg struct {
	Boss *advisor.BossSuggestion
	Err  error
}

// completedMsg flashes the XP award after completing a quest.
type completedMsg struct {
	Title string
	XP    int
}

// flashDoneMsg clears the completion flash.
type flashDoneMsg struct{}

type mode int

const (
	modeList mode = iota
	modeForm
)

// QuestScreen lists assignments and lets the player complete or add
// them.
type QuestScreen struct {
	store *state.Store
	adv   *advisor.Service

	mode     mode
	selected int
	form     questForm

	boss        *advisor.BossSuggestion
	bossPending bool
	flash       *completedMsg
}

var _ screen.Screen = (*QuestScreen)(nil)

// New creates the quest log screen.
func New(st *state.Store, adv *advisor.Service) *QuestScreen {
	return &QuestScreen{
		store: st,
		adv:   adv,
	}
}

func (q *QuestScreen) Init() tea.Cmd {
	return nil
}

func (q *QuestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bossMsg:
		q.bossPending = false
		if msg.Err == nil {
			q.boss = msg.Boss
		}
		return q, nil

	case completedMsg:
		q.flash = &msg
		return q, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return flashDoneMsg{}
		})

	case flashDoneMsg:
		q.flash = nil
		return q, nil

	case tea.KeyMsg:
		if q.mode == modeForm {
			return q.updateForm(msg)
		}
		return q.updateList(msg)
	}

	if q.mode == modeForm {
		var cmd tea.Cmd
		q.form, cmd = q.form.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuestScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	assignments := q.store.State().Assignments

	switch msg.String() {
	case "up", "k":
		if q.selected > 0 {
			q.selected--
		}
	case "down", "j":
		if q.selected < len(assignments)-1 {
			q.selected++
		}
	case "enter", " ":
		if q.selected < len(assignments) {
			return q, q.completeQuest(assignments[q.selected])
		}
	case "n":
		q.mode = modeForm
		q.form = newQuestForm()
		return q, q.form.Init()
	case "b":
		if q.adv.Available() && !q.bossPending {
			q.bossPending = true
			return q, q.fetchBoss()
		}
	}
	return q, nil
}

func (q *QuestScreen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		q.mode = modeList
		return q, nil
	case "enter":
		if q.form.onLastField() {
			if a, ok := q.form.parse(); ok {
				q.store.AddAssignment(context.Background(),
					a.title, a.subject, a.dueDate, a.xpReward, a.priority)
				q.mode = modeList
			}
			return q, nil
		}
		q.form.nextField()
		return q, nil
	case "tab":
		q.form.nextField()
		return q, nil
	case "shift+tab":
		q.form.prevField()
		return q, nil
	}

	var cmd tea.Cmd
	q.form, cmd = q.form.Update(msg)
	return q, cmd
}

func (q *QuestScreen) completeQuest(a state.Assignment) tea.Cmd {
	if a.Completed {
		return nil
	}
	return func() tea.Msg {
		_, done := q.store.CompleteTask(context.Background(), a.ID)
		if !done {
			return nil
		}
		return completedMsg{Title: a.Title, XP: a.XPReward}
	}
}

func (q *QuestScreen) fetchBoss() tea.Cmd {
	assignments := q.store.State().Assignments
	adv := q.adv
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		boss, err := adv.AnalyzeAssignments(ctx, assignments)
		return bossMsg{Boss: boss, Err: err}
	}
}

// CapturesEsc keeps Esc local while the new-quest form is open so it
// cancels the form instead of leaving the screen.
func (q *QuestScreen) CapturesEsc() bool {
	return q.mode == modeForm
}

func (q *QuestScreen) Title() string {
	return "Quest Log"
}
