package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sarveshai94-commits/academyquest/internal/progression"
	"github.com/sarveshai94-commits/academyquest/internal/store"
	"github.com/sarveshai94-commits/academyquest/internal/timetable"
)

// snapshotsToKeep bounds the snapshot history retained in the database.
const snapshotsToKeep = 50

// Store owns the in-memory AppState and serializes every mutation. Each
// mutation applies a transition to a copy, swaps the result in, persists it
// synchronously, and appends an audit event. Persistence failures are
// warned to stderr and never propagate: the in-memory copy stays
// authoritative for the rest of the run.
type Store struct {
	mu     sync.Mutex
	cur    AppState
	states store.StateRepo
	events store.EventRepo
	now    func() time.Time
}

// NewStore creates a Store. Both repos may be nil (tests); the store then
// runs in-memory only.
func NewStore(states store.StateRepo, events store.EventRepo) *Store {
	return &Store{
		states: states,
		events: events,
		now:    time.Now,
	}
}

// Load restores the latest snapshot, or seeds first-run defaults when no
// snapshot exists or the stored blob doesn't decode. Corruption is treated
// as absence, never a crash.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.states != nil {
		snap, err := s.states.Latest(ctx)
		if err == nil && snap != nil {
			var loaded AppState
			if err := json.Unmarshal(snap.Data, &loaded); err == nil {
				s.cur = loaded
				return
			}
			fmt.Fprintln(os.Stderr, "warning: saved state unreadable, starting fresh")
		} else if err != nil {
			fmt.Fprintln(os.Stderr, "warning: load saved state:", err)
		}
	}

	s.cur = Seed(s.now())
	s.persistLocked(ctx)
}

// State returns a copy of the current state.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Clone()
}

// CompleteTask marks an assignment completed and awards its XP. Unknown or
// already-completed ids are ignored.
func (s *Store) CompleteTask(ctx context.Context, id string) (AppState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := CompleteTask(s.cur, id, s.now())
	if !changed {
		return s.cur.Clone(), false
	}
	s.cur = next
	s.persistLocked(ctx)

	if s.events != nil {
		if a := s.cur.FindAssignment(id); a != nil {
			_ = s.events.AppendTask(ctx, store.TaskEventData{
				AssignmentID: a.ID,
				Title:        a.Title,
				Subject:      a.Subject,
				XPAwarded:    a.XPReward,
			})
		}
	}
	return s.cur.Clone(), true
}

// ToggleSchoolMode flips school mode, crediting attendance at most once per
// calendar date.
func (s *Store) ToggleSchoolMode(ctx context.Context) (AppState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	next, credited := ToggleSchoolMode(s.cur, now)
	s.cur = next
	s.persistLocked(ctx)

	if credited && s.events != nil {
		_ = s.events.AppendAttendance(ctx, store.AttendanceEventData{
			Date:      FormatDate(now),
			XPAwarded: progression.AttendanceXP,
		})
	}
	return s.cur.Clone(), credited
}

// HandleBell applies the session-end award for the session that just rang.
func (s *Store) HandleBell(ctx context.Context, ended timetable.ClassSession, pendingTopics int) (AppState, BellResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, result := ApplyBell(s.cur, ended, pendingTopics, s.now())
	s.cur = next
	s.persistLocked(ctx)

	if s.events != nil {
		topicCount := 0
		if result.Record != nil {
			topicCount = result.Record.Count
		}
		_ = s.events.AppendBell(ctx, store.BellEventData{
			SessionID:       ended.ID,
			SessionName:     ended.Name,
			IsBreak:         ended.IsBreak,
			TopicCount:      topicCount,
			DurationMinutes: ended.DurationMinutes(),
			XPAwarded:       result.XPAwarded,
		})
	}
	return s.cur.Clone(), result
}

// AddAssignment creates a new assignment on the board and returns it.
func (s *Store) AddAssignment(ctx context.Context, title, subject, dueDate string, xpReward int, priority Priority) Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Assignment{
		ID:       uuid.New().String(),
		Title:    title,
		Subject:  subject,
		DueDate:  dueDate,
		XPReward: xpReward,
		Priority: priority,
	}
	s.cur = AddAssignment(s.cur, a)
	s.persistLocked(ctx)
	return a
}

// Reset discards the current state and reseeds defaults.
func (s *Store) Reset(ctx context.Context) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = Seed(s.now())
	s.persistLocked(ctx)
	return s.cur.Clone()
}

// persistLocked saves the current state synchronously. Must be called with
// the mutex held. Failure is non-fatal: the state also lives in memory.
func (s *Store) persistLocked(ctx context.Context) {
	if s.states == nil {
		return
	}

	raw, err := json.Marshal(s.cur)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: encode state:", err)
		return
	}
	snap := &store.Snapshot{
		Timestamp: s.now(),
		Data:      raw,
	}
	if err := s.states.Save(ctx, snap); err != nil {
		fmt.Fprintln(os.Stderr, "warning: persist state:", err)
		return
	}
	_ = s.states.Prune(ctx, snapshotsToKeep)
}
