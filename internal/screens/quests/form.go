package quests

import (
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/ui/components"
)

const (
	fieldTitle = iota
	fieldSubject
	fieldDueDays
	fieldXP
	fieldPriority
	fieldCount
)

var priorities = []state.Priority{state.PriorityLow, state.PriorityMedium, state.PriorityHigh}

// questForm collects the details of a new assignment.
type questForm struct {
	title    components.TextInput
	subject  components.TextInput
	dueDays  components.TextInput
	xp       components.TextInput
	priority int

	focus int
}

// parsedQuest is the validated form output.
type parsedQuest struct {
	title    string
	subject  string
	dueDate  string
	xpReward int
	priority state.Priority
}

func newQuestForm() questForm {
	f := questForm{
		title:    components.NewTextInput("Quest title", false, 60),
		subject:  components.NewTextInput("Subject", false, 30),
		dueDays:  components.NewTextInput("Due in days", true, 3),
		xp:       components.NewTextInput("XP reward", true, 5),
		priority: 1, // Medium
	}
	f.title.Model.Focus()
	f.subject.Model.Blur()
	f.dueDays.Model.Blur()
	f.xp.Model.Blur()
	return f
}

func (f questForm) Init() tea.Cmd {
	return f.title.Init()
}

func (f questForm) Update(msg tea.Msg) (questForm, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && f.focus == fieldPriority {
		switch kmsg.String() {
		case "left", "h":
			if f.priority > 0 {
				f.priority--
			}
		case "right", "l":
			if f.priority < len(priorities)-1 {
				f.priority++
			}
		}
		return f, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldSubject:
		f.subject, cmd = f.subject.Update(msg)
	case fieldDueDays:
		f.dueDays, cmd = f.dueDays.Update(msg)
	case fieldXP:
		f.xp, cmd = f.xp.Update(msg)
	}
	return f, cmd
}

func (f *questForm) onLastField() bool {
	return f.focus == fieldPriority
}

func (f *questForm) nextField() {
	f.setFocus((f.focus + 1) % fieldCount)
}

func (f *questForm) prevField() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *questForm) setFocus(target int) {
	f.focus = target
	f.title.Model.Blur()
	f.subject.Model.Blur()
	f.dueDays.Model.Blur()
	f.xp.Model.Blur()
	switch target {
	case fieldTitle:
		f.title.Model.Focus()
	case fieldSubject:
		f.subject.Model.Focus()
	case fieldDueDays:
		f.dueDays.Model.Focus()
	case fieldXP:
		f.xp.Model.Focus()
	}
}

// parse validates the form. Missing numbers fall back to friendly
// defaults rather than blocking submission.
func (f *questForm) parse() (parsedQuest, bool) {
	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		return parsedQuest{}, false
	}

	subject := strings.TrimSpace(f.subject.Value())
	if subject == "" {
		subject = "General"
	}

	days, err := strconv.Atoi(f.dueDays.Value())
	if err != nil || days < 0 {
		days = 7
	}

	xp, err := strconv.Atoi(f.xp.Value())
	if err != nil || xp <= 0 {
		xp = 300
	}

	return parsedQuest{
		title:    title,
		subject:  subject,
		dueDate:  state.FormatDate(time.Now().AddDate(0, 0, days)),
		xpReward: xp,
		priority: priorities[f.priority],
	}, true
}
