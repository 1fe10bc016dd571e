// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sarveshai94-commits/academyquest/ent/bellevent"
)

// BellEvent is the model entity for the BellEvent schema.
type BellEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Timetable session identifier
	SessionID string `json:"session_id,omitempty"`
	// SessionName holds the value of the "session_name" field.
	SessionName string `json:"session_name,omitempty"`
	// IsBreak holds the value of the "is_break" field.
	IsBreak bool `json:"is_break,omitempty"`
	// Topics logged during the session
	TopicCount int `json:"topic_count,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// XpAwarded holds the value of the "xp_awarded" field.
	XpAwarded    int `json:"xp_awarded,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BellEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bellevent.FieldIsBreak:
			values[i] = new(sql.NullBool)
		case bellevent.FieldID, bellevent.FieldSequence, bellevent.FieldTopicCount, bellevent.FieldDurationMinutes, bellevent.FieldXpAwarded:
			values[i] = new(sql.NullInt64)
		case bellevent.FieldSessionID, bellevent.FieldSessionName:
			values[i] = new(sql.NullString)
		case bellevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BellEvent fields.
func (_m *BellEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bellevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case bellevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case bellevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case bellevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case bellevent.FieldSessionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_name", values[i])
			} else if value.Valid {
				_m.SessionName = value.String
			}
		case bellevent.FieldIsBreak:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_break", values[i])
			} else if value.Valid {
				_m.IsBreak = value.Bool
			}
		case bellevent.FieldTopicCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_count", values[i])
			} else if value.Valid {
				_m.TopicCount = int(value.Int64)
			}
		case bellevent.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case bellevent.FieldXpAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_awarded", values[i])
			} else if value.Valid {
				_m.XpAwarded = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BellEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BellEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BellEvent.
// Note that you need to call BellEvent.Unwrap() before calling this method if this BellEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BellEvent) Update() *BellEventUpdateOne {
	return NewBellEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BellEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BellEvent) Unwrap() *BellEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BellEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BellEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BellEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("session_name=")
	builder.WriteString(_m.SessionName)
	builder.WriteString(", ")
	builder.WriteString("is_break=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBreak))
	builder.WriteString(", ")
	builder.WriteString("topic_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicCount))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("xp_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAwarded))
	builder.WriteByte(')')
	return builder.String()
}

// BellEvents is a parsable slice of BellEvent.
type BellEvents []*BellEvent
