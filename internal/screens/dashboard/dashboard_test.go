package dashboard

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarveshai94-commits/academyquest/internal/state"
	"github.com/sarveshai94-commits/academyquest/internal/store"
)

// stubStateRepo is an in-memory store.StateRepo.
type stubStateRepo struct {
	snaps []*store.Snapshot
}

func (s *stubStateRepo) Save(_ context.Context, snap *store.Snapshot) error {
	s.snaps = append(s.snaps, snap)
	return nil
}

func (s *stubStateRepo) Latest(context.Context) (*store.Snapshot, error) {
	if len(s.snaps) == 0 {
		return nil, nil
	}
	return s.snaps[len(s.snaps)-1], nil
}

func (s *stubStateRepo) Prune(context.Context, int) error { return nil }

// stubEventRepo is a no-op store.EventRepo that counts bells.
type stubEventRepo struct {
	bells int
}

func (s *stubEventRepo) AppendBell(context.Context, store.BellEventData) error {
	s.bells++
	return nil
}
func (s *stubEventRepo) AppendTask(context.Context, store.TaskEventData) error      { return nil }
func (s *stubEventRepo) AppendAttendance(context.Context, store.AttendanceEventData) error {
	return nil
}
func (s *stubEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (s *stubEventRepo) QueryBells(context.Context, store.QueryOpts) ([]store.BellEventRecord, error) {
	return nil, nil
}
func (s *stubEventRepo) QueryTasks(context.Context, store.QueryOpts) ([]store.TaskEventRecord, error) {
	return nil, nil
}
func (s *stubEventRepo) QueryLLMRequests(context.Context, store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	st := state.NewStore(&stubStateRepo{}, &stubEventRepo{})
	st.Load(context.Background())
	st.ToggleSchoolMode(context.Background())
	return st
}

// 2026-03-02 is a Monday; the seeded Mathematics session ends at 09:30.
var mathEnd = time.Date(2026, 3, 2, 9, 30, 0, 0, time.Local)

func TestBellFiresAtSessionEnd(t *testing.T) {
	d := New(newTestStore(t))

	_, cmd := d.handleTick(mathEnd)
	require.NotNil(t, cmd)
	assert.NotEmpty(t, d.lastBellKey, "bell key should be recorded at the end boundary")
}

func TestBellDoesNotRepeatWithinSameMinute(t *testing.T) {
	d := New(newTestStore(t))

	_, _ = d.handleTick(mathEnd)
	firstKey := d.lastBellKey
	require.NotEmpty(t, firstKey)

	// A duplicate tick inside second zero must not re-ring.
	_, _ = d.handleTick(mathEnd)
	assert.Equal(t, firstKey, d.lastBellKey)
}

func TestNoBellWhenSchoolModeOff(t *testing.T) {
	st := state.NewStore(&stubStateRepo{}, &stubEventRepo{})
	st.Load(context.Background())
	d := New(st)

	_, _ = d.handleTick(mathEnd)
	assert.Empty(t, d.lastBellKey, "bell must not fire while school mode is off")
}

func TestNoBellMidSession(t *testing.T) {
	d := New(newTestStore(t))

	// 09:00:00 Monday sits inside Mathematics, far from any end boundary.
	_, _ = d.handleTick(time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local))
	assert.Empty(t, d.lastBellKey)
}

func TestNoBellOffSecondZero(t *testing.T) {
	d := New(newTestStore(t))

	_, _ = d.handleTick(time.Date(2026, 3, 2, 9, 30, 1, 0, time.Local))
	assert.Empty(t, d.lastBellKey)
}

func TestTopicCounterClamping(t *testing.T) {
	d := New(newTestStore(t))

	_, _ = d.handleKey(tea.KeyPressMsg{Code: tea.KeyUp})
	_, _ = d.handleKey(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, d.pendingTopics)

	_, _ = d.handleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	_, _ = d.handleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	_, _ = d.handleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, d.pendingTopics, "counter must not go negative")
}
