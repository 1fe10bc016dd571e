package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sarveshai94-commits/academyquest/ent"
	"github.com/sarveshai94-commits/academyquest/ent/bellevent"
	"github.com/sarveshai94-commits/academyquest/ent/llmrequestevent"
	"github.com/sarveshai94-commits/academyquest/ent/taskevent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// BellEventData captures a session-end bell.
type BellEventData struct {
	SessionID       string
	SessionName     string
	IsBreak         bool
	TopicCount      int
	DurationMinutes int
	XPAwarded       int
}

// BellEventRecord is a stored bell event.
type BellEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	BellEventData
}

// TaskEventData captures an assignment completion.
type TaskEventData struct {
	AssignmentID string
	Title        string
	Subject      string
	XPAwarded    int
}

// TaskEventRecord is a stored task event.
type TaskEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	TaskEventData
}

// AttendanceEventData captures the first school-mode activation of a day.
type AttendanceEventData struct {
	Date      string
	XPAwarded int
}

// LLMRequestEventData captures a single advisor API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a stored advisor API call.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to the audit log.
type EventRepo interface {
	AppendBell(ctx context.Context, data BellEventData) error
	AppendTask(ctx context.Context, data TaskEventData) error
	AppendAttendance(ctx context.Context, data AttendanceEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryBells returns bell events, most recent first.
	QueryBells(ctx context.Context, opts QueryOpts) ([]BellEventRecord, error)

	// QueryTasks returns task completion events, most recent first.
	QueryTasks(ctx context.Context, opts QueryOpts) ([]TaskEventRecord, error)

	// QueryLLMRequests returns advisor API call events, most recent first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)
}

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendBell(ctx context.Context, data BellEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BellEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSessionName(data.SessionName).
		SetIsBreak(data.IsBreak).
		SetTopicCount(data.TopicCount).
		SetDurationMinutes(data.DurationMinutes).
		SetXpAwarded(data.XPAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save bell event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendTask(ctx context.Context, data TaskEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TaskEvent.Create().
		SetSequence(seqNum).
		SetAssignmentID(data.AssignmentID).
		SetTitle(data.Title).
		SetSubject(data.Subject).
		SetXpAwarded(data.XPAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save task event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAttendance(ctx context.Context, data AttendanceEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttendanceEvent.Create().
		SetSequence(seqNum).
		SetDate(data.Date).
		SetXpAwarded(data.XPAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attendance event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryBells(ctx context.Context, opts QueryOpts) ([]BellEventRecord, error) {
	query := r.client.BellEvent.Query().
		Order(ent.Desc(bellevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(bellevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(bellevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(bellevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(bellevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query bell events: %w", err)
	}

	out := make([]BellEventRecord, len(events))
	for i, e := range events {
		out[i] = BellEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			BellEventData: BellEventData{
				SessionID:       e.SessionID,
				SessionName:     e.SessionName,
				IsBreak:         e.IsBreak,
				TopicCount:      e.TopicCount,
				DurationMinutes: e.DurationMinutes,
				XPAwarded:       e.XpAwarded,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) QueryTasks(ctx context.Context, opts QueryOpts) ([]TaskEventRecord, error) {
	query := r.client.TaskEvent.Query().
		Order(ent.Desc(taskevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(taskevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(taskevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(taskevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(taskevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query task events: %w", err)
	}

	out := make([]TaskEventRecord, len(events))
	for i, e := range events {
		out[i] = TaskEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TaskEventData: TaskEventData{
				AssignmentID: e.AssignmentID,
				Title:        e.Title,
				Subject:      e.Subject,
				XPAwarded:    e.XpAwarded,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm request events: %w", err)
	}

	out := make([]LLMRequestRecord, len(events))
	for i, e := range events {
		out[i] = LLMRequestRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		}
	}
	return out, nil
}
