package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sarveshai94-commits/academyquest/ent"
	"github.com/sarveshai94-commits/academyquest/ent/snapshot"
)

// Snapshot is one saved copy of the serialized application state. The blob
// is self-describing JSON; this package never interprets it.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      json.RawMessage
}

// StateRepo persists application-state snapshots.
type StateRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// stateRepo implements StateRepo using the ent client.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) Save(ctx context.Context, snap *Snapshot) error {
	dataMap, err := rawToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("decode snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *stateRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	raw, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      raw,
	}, nil
}

func (r *stateRepo) Prune(ctx context.Context, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot.
	old, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(old) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := old[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// rawToMap converts a JSON blob to map[string]any for ent JSON storage.
func rawToMap(raw json.RawMessage) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
