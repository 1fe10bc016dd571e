package quests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarveshai94-commits/academyquest/internal/state"
)

func TestFormParseRequiresTitle(t *testing.T) {
	f := newQuestForm()
	_, ok := f.parse()
	assert.False(t, ok)
}

func TestFormParseDefaults(t *testing.T) {
	f := newQuestForm()
	f.title.Model.SetValue("Essay draft")

	got, ok := f.parse()
	require.True(t, ok)
	assert.Equal(t, "Essay draft", got.title)
	assert.Equal(t, "General", got.subject)
	assert.Equal(t, 300, got.xpReward)
	assert.Equal(t, state.PriorityMedium, got.priority)
	assert.Equal(t, state.FormatDate(time.Now().AddDate(0, 0, 7)), got.dueDate)
}

func TestFormParseExplicitValues(t *testing.T) {
	f := newQuestForm()
	f.title.Model.SetValue("  Lab report  ")
	f.subject.Model.SetValue("Chemistry")
	f.dueDays.Model.SetValue("3")
	f.xp.Model.SetValue("450")
	f.priority = 2 // High

	got, ok := f.parse()
	require.True(t, ok)
	assert.Equal(t, "Lab report", got.title)
	assert.Equal(t, "Chemistry", got.subject)
	assert.Equal(t, 450, got.xpReward)
	assert.Equal(t, state.PriorityHigh, got.priority)
	assert.Equal(t, state.FormatDate(time.Now().AddDate(0, 0, 3)), got.dueDate)
}

func TestFormFocusCycles(t *testing.T) {
	f := newQuestForm()
	assert.Equal(t, fieldTitle, f.focus)

	for i := 0; i < fieldCount; i++ {
		f.nextField()
	}
	assert.Equal(t, fieldTitle, f.focus, "focus should wrap around")

	f.prevField()
	assert.Equal(t, fieldPriority, f.focus)
	assert.True(t, f.onLastField())
}
