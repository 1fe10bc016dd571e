// Code generated by ent, DO NOT EDIT.

package bellevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sarveshai94-commits/academyquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionName applies equality check predicate on the "session_name" field. It's identical to SessionNameEQ.
func SessionName(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldSessionName, v))
}

// IsBreak applies equality check predicate on the "is_break" field. It's identical to IsBreakEQ.
func IsBreak(v bool) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldIsBreak, v))
}

// TopicCount applies equality check predicate on the "topic_count" field. It's identical to TopicCountEQ.
func TopicCount(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldTopicCount, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldDurationMinutes, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SessionNameEQ applies the EQ predicate on the "session_name" field.
func SessionNameEQ(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldSessionName, v))
}

// SessionNameNEQ applies the NEQ predicate on the "session_name" field.
func SessionNameNEQ(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNEQ(FieldSessionName, v))
}

// SessionNameIn applies the In predicate on the "session_name" field.
func SessionNameIn(vs ...string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldIn(FieldSessionName, vs...))
}

// SessionNameNotIn applies the NotIn predicate on the "session_name" field.
func SessionNameNotIn(vs ...string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNotIn(FieldSessionName, vs...))
}

// SessionNameGT applies the GT predicate on the "session_name" field.
func SessionNameGT(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGT(FieldSessionName, v))
}

// SessionNameGTE applies the GTE predicate on the "session_name" field.
func SessionNameGTE(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGTE(FieldSessionName, v))
}

// SessionNameLT applies the LT predicate on the "session_name" field.
func SessionNameLT(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLT(FieldSessionName, v))
}

// SessionNameLTE applies the LTE predicate on the "session_name" field.
func SessionNameLTE(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLTE(FieldSessionName, v))
}

// SessionNameContains applies the Contains predicate on the "session_name" field.
func SessionNameContains(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldContains(FieldSessionName, v))
}

// SessionNameHasPrefix applies the HasPrefix predicate on the "session_name" field.
func SessionNameHasPrefix(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldHasPrefix(FieldSessionName, v))
}

// SessionNameHasSuffix applies the HasSuffix predicate on the "session_name" field.
func SessionNameHasSuffix(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldHasSuffix(FieldSessionName, v))
}

// SessionNameEqualFold applies the EqualFold predicate on the "session_name" field.
func SessionNameEqualFold(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEqualFold(FieldSessionName, v))
}

// SessionNameContainsFold applies the ContainsFold predicate on the "session_name" field.
func SessionNameContainsFold(v string) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldContainsFold(FieldSessionName, v))
}

// IsBreakEQ applies the EQ predicate on the "is_break" field.
func IsBreakEQ(v bool) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldIsBreak, v))
}

// IsBreakNEQ applies the NEQ predicate on the "is_break" field.
func IsBreakNEQ(v bool) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNEQ(FieldIsBreak, v))
}

// TopicCountEQ applies the EQ predicate on the "topic_count" field.
func TopicCountEQ(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldTopicCount, v))
}

// TopicCountNEQ applies the NEQ predicate on the "topic_count" field.
func TopicCountNEQ(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNEQ(FieldTopicCount, v))
}

// TopicCountIn applies the In predicate on the "topic_count" field.
func TopicCountIn(vs ...int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldIn(FieldTopicCount, vs...))
}

// TopicCountNotIn applies the NotIn predicate on the "topic_count" field.
func TopicCountNotIn(vs ...int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNotIn(FieldTopicCount, vs...))
}

// TopicCountGT applies the GT predicate on the "topic_count" field.
func TopicCountGT(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGT(FieldTopicCount, v))
}

// TopicCountGTE applies the GTE predicate on the "topic_count" field.
func TopicCountGTE(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGTE(FieldTopicCount, v))
}

// TopicCountLT applies the LT predicate on the "topic_count" field.
func TopicCountLT(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLT(FieldTopicCount, v))
}

// TopicCountLTE applies the LTE predicate on the "topic_count" field.
func TopicCountLTE(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLTE(FieldTopicCount, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLTE(FieldDurationMinutes, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.BellEvent {
	return predicate.BellEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BellEvent) predicate.BellEvent {
	return predicate.BellEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BellEvent) predicate.BellEvent {
	return predicate.BellEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BellEvent) predicate.BellEvent {
	return predicate.BellEvent(sql.NotPredicates(p))
}
