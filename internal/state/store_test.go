package state

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarveshai94-commits/academyquest/internal/store"
)

// memStateRepo is an in-memory StateRepo.
type memStateRepo struct {
	snaps   []*store.Snapshot
	failing bool
}

func (m *memStateRepo) Save(_ context.Context, snap *store.Snapshot) error {
	if m.failing {
		return errors.New("disk full")
	}
	m.snaps = append(m.snaps, snap)
	return nil
}

func (m *memStateRepo) Latest(context.Context) (*store.Snapshot, error) {
	if len(m.snaps) == 0 {
		return nil, nil
	}
	return m.snaps[len(m.snaps)-1], nil
}

func (m *memStateRepo) Prune(_ context.Context, keep int) error {
	if len(m.snaps) > keep {
		m.snaps = m.snaps[len(m.snaps)-keep:]
	}
	return nil
}

// memEventRepo records appended events.
type memEventRepo struct {
	bells       []store.BellEventData
	tasks       []store.TaskEventData
	attendances []store.AttendanceEventData
	llmRequests []store.LLMRequestEventData
}

func (m *memEventRepo) AppendBell(_ context.Context, d store.BellEventData) error {
	m.bells = append(m.bells, d)
	return nil
}

func (m *memEventRepo) AppendTask(_ context.Context, d store.TaskEventData) error {
	m.tasks = append(m.tasks, d)
	return nil
}

func (m *memEventRepo) AppendAttendance(_ context.Context, d store.AttendanceEventData) error {
	m.attendances = append(m.attendances, d)
	return nil
}

func (m *memEventRepo) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	m.llmRequests = append(m.llmRequests, d)
	return nil
}

func (m *memEventRepo) QueryBells(context.Context, store.QueryOpts) ([]store.BellEventRecord, error) {
	return nil, nil
}

func (m *memEventRepo) QueryTasks(context.Context, store.QueryOpts) ([]store.TaskEventRecord, error) {
	return nil, nil
}

func (m *memEventRepo) QueryLLMRequests(context.Context, store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func newTestStore(states store.StateRepo, events store.EventRepo) *Store {
	s := NewStore(states, events)
	s.now = func() time.Time { return testNow }
	return s
}

func TestStore_LoadSeedsFirstRun(t *testing.T) {
	repo := &memStateRepo{}
	s := newTestStore(repo, nil)

	s.Load(context.Background())

	got := s.State()
	assert.Equal(t, 450, got.Stats.XP)
	assert.Len(t, got.Assignments, 2)
	require.Len(t, repo.snaps, 1, "seeded state should be persisted immediately")
}

func TestStore_RoundTrip(t *testing.T) {
	repo := &memStateRepo{}
	events := &memEventRepo{}

	first := newTestStore(repo, events)
	first.Load(context.Background())
	first.CompleteTask(context.Background(), "a1")
	first.ToggleSchoolMode(context.Background())
	want := first.State()

	// A fresh store over the same repo must reproduce the state
	// field-for-field.
	second := newTestStore(repo, events)
	second.Load(context.Background())
	got := second.State()

	assert.Equal(t, want, got)
}

func TestStore_LoadCorruptBlobSeeds(t *testing.T) {
	repo := &memStateRepo{snaps: []*store.Snapshot{{
		Timestamp: testNow,
		Data:      json.RawMessage(`{"version": "not a number"`),
	}}}
	s := newTestStore(repo, nil)

	s.Load(context.Background())

	got := s.State()
	assert.Equal(t, 450, got.Stats.XP, "corruption should fall back to seed defaults")
}

func TestStore_PersistFailureIsNonFatal(t *testing.T) {
	repo := &memStateRepo{failing: true}
	s := newTestStore(repo, nil)
	s.Load(context.Background())

	got, changed := s.CompleteTask(context.Background(), "a1")

	require.True(t, changed)
	assert.True(t, got.FindAssignment("a1").Completed, "in-memory state stays authoritative")
}

func TestStore_EveryMutationPersists(t *testing.T) {
	repo := &memStateRepo{}
	s := newTestStore(repo, nil)
	s.Load(context.Background())
	base := len(repo.snaps)

	s.CompleteTask(context.Background(), "a1")
	s.ToggleSchoolMode(context.Background())
	s.HandleBell(context.Background(), studySession(), 2)
	s.AddAssignment(context.Background(), "Lab Report", "Physics", "2026-03-10", 250, PriorityMedium)

	assert.Equal(t, base+4, len(repo.snaps))
}

func TestStore_EventsAppended(t *testing.T) {
	events := &memEventRepo{}
	s := newTestStore(&memStateRepo{}, events)
	s.Load(context.Background())

	s.CompleteTask(context.Background(), "a1")
	s.CompleteTask(context.Background(), "a1") // no-op, no event
	s.ToggleSchoolMode(context.Background())
	s.ToggleSchoolMode(context.Background()) // off, no attendance
	s.HandleBell(context.Background(), studySession(), 3)

	require.Len(t, events.tasks, 1)
	assert.Equal(t, "a1", events.tasks[0].AssignmentID)
	assert.Equal(t, 500, events.tasks[0].XPAwarded)

	require.Len(t, events.attendances, 1)
	assert.Equal(t, "2026-03-02", events.attendances[0].Date)

	require.Len(t, events.bells, 1)
	assert.Equal(t, 3, events.bells[0].TopicCount)
	assert.Equal(t, 160, events.bells[0].XPAwarded)
}

func TestStore_AddAssignmentGeneratesID(t *testing.T) {
	s := newTestStore(&memStateRepo{}, nil)
	s.Load(context.Background())

	a := s.AddAssignment(context.Background(), "Lab Report", "Physics", "2026-03-10", 250, PriorityMedium)

	assert.NotEmpty(t, a.ID)
	assert.NotNil(t, s.State().FindAssignment(a.ID))
}

func TestAppState_JSONRoundTrip(t *testing.T) {
	orig := Seed(testNow)
	orig, _ = ToggleSchoolMode(orig, testNow)
	orig, _ = ApplyBell(orig, studySession(), 2, testNow)

	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var back AppState
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, orig, back)
}
