// Code generated by ent, DO NOT EDIT.

package bellevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the bellevent type in the database.
	Label = "bell_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSessionName holds the string denoting the session_name field in the database.
	FieldSessionName = "session_name"
	// FieldIsBreak holds the string denoting the is_break field in the database.
	FieldIsBreak = "is_break"
	// FieldTopicCount holds the string denoting the topic_count field in the database.
	FieldTopicCount = "topic_count"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldXpAwarded holds the string denoting the xp_awarded field in the database.
	FieldXpAwarded = "xp_awarded"
	// Table holds the table name of the bellevent in the database.
	Table = "bell_events"
)

// Columns holds all SQL columns for bellevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldSessionName,
	FieldIsBreak,
	FieldTopicCount,
	FieldDurationMinutes,
	FieldXpAwarded,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// SessionNameValidator is a validator for the "session_name" field. It is called by the builders before save.
	SessionNameValidator func(string) error
	// DefaultIsBreak holds the default value on creation for the "is_break" field.
	DefaultIsBreak bool
	// DefaultTopicCount holds the default value on creation for the "topic_count" field.
	DefaultTopicCount int
	// DefaultDurationMinutes holds the default value on creation for the "duration_minutes" field.
	DefaultDurationMinutes int
	// DefaultXpAwarded holds the default value on creation for the "xp_awarded" field.
	DefaultXpAwarded int
)

// OrderOption defines the ordering options for the BellEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySessionName orders the results by the session_name field.
func BySessionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionName, opts...).ToFunc()
}

// ByIsBreak orders the results by the is_break field.
func ByIsBreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBreak, opts...).ToFunc()
}

// ByTopicCount orders the results by the topic_count field.
func ByTopicCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicCount, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByXpAwarded orders the results by the xp_awarded field.
func ByXpAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpAwarded, opts...).ToFunc()
}
