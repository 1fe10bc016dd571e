// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sarveshai94-commits/academyquest/ent/attendanceevent"
	"github.com/sarveshai94-commits/academyquest/ent/bellevent"
	"github.com/sarveshai94-commits/academyquest/ent/llmrequestevent"
	"github.com/sarveshai94-commits/academyquest/ent/schema"
	"github.com/sarveshai94-commits/academyquest/ent/snapshot"
	"github.com/sarveshai94-commits/academyquest/ent/taskevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attendanceeventMixin := schema.AttendanceEvent{}.Mixin()
	attendanceeventMixinFields0 := attendanceeventMixin[0].Fields()
	_ = attendanceeventMixinFields0
	attendanceeventFields := schema.AttendanceEvent{}.Fields()
	_ = attendanceeventFields
	// attendanceeventDescTimestamp is the schema descriptor for timestamp field.
	attendanceeventDescTimestamp := attendanceeventMixinFields0[1].Descriptor()
	// attendanceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attendanceevent.DefaultTimestamp = attendanceeventDescTimestamp.Default.(func() time.Time)
	// attendanceeventDescDate is the schema descriptor for date field.
	attendanceeventDescDate := attendanceeventFields[0].Descriptor()
	// attendanceevent.DateValidator is a validator for the "date" field. It is called by the builders before save.
	attendanceevent.DateValidator = attendanceeventDescDate.Validators[0].(func(string) error)
	// attendanceeventDescXpAwarded is the schema descriptor for xp_awarded field.
	attendanceeventDescXpAwarded := attendanceeventFields[1].Descriptor()
	// attendanceevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	attendanceevent.DefaultXpAwarded = attendanceeventDescXpAwarded.Default.(int)
	belleventMixin := schema.BellEvent{}.Mixin()
	belleventMixinFields0 := belleventMixin[0].Fields()
	_ = belleventMixinFields0
	belleventFields := schema.BellEvent{}.Fields()
	_ = belleventFields
	// belleventDescTimestamp is the schema descriptor for timestamp field.
	belleventDescTimestamp := belleventMixinFields0[1].Descriptor()
	// bellevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	bellevent.DefaultTimestamp = belleventDescTimestamp.Default.(func() time.Time)
	// belleventDescSessionID is the schema descriptor for session_id field.
	belleventDescSessionID := belleventFields[0].Descriptor()
	// bellevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	bellevent.SessionIDValidator = belleventDescSessionID.Validators[0].(func(string) error)
	// belleventDescSessionName is the schema descriptor for session_name field.
	belleventDescSessionName := belleventFields[1].Descriptor()
	// bellevent.SessionNameValidator is a validator for the "session_name" field. It is called by the builders before save.
	bellevent.SessionNameValidator = belleventDescSessionName.Validators[0].(func(string) error)
	// belleventDescIsBreak is the schema descriptor for is_break field.
	belleventDescIsBreak := belleventFields[2].Descriptor()
	// bellevent.DefaultIsBreak holds the default value on creation for the is_break field.
	bellevent.DefaultIsBreak = belleventDescIsBreak.Default.(bool)
	// belleventDescTopicCount is the schema descriptor for topic_count field.
	belleventDescTopicCount := belleventFields[3].Descriptor()
	// bellevent.DefaultTopicCount holds the default value on creation for the topic_count field.
	bellevent.DefaultTopicCount = belleventDescTopicCount.Default.(int)
	// belleventDescDurationMinutes is the schema descriptor for duration_minutes field.
	belleventDescDurationMinutes := belleventFields[4].Descriptor()
	// bellevent.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	bellevent.DefaultDurationMinutes = belleventDescDurationMinutes.Default.(int)
	// belleventDescXpAwarded is the schema descriptor for xp_awarded field.
	belleventDescXpAwarded := belleventFields[5].Descriptor()
	// bellevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	bellevent.DefaultXpAwarded = belleventDescXpAwarded.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescSequence is the schema descriptor for sequence field.
	snapshotDescSequence := snapshotFields[0].Descriptor()
	// snapshot.DefaultSequence holds the default value on creation for the sequence field.
	snapshot.DefaultSequence = snapshotDescSequence.Default.(int64)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	taskeventMixin := schema.TaskEvent{}.Mixin()
	taskeventMixinFields0 := taskeventMixin[0].Fields()
	_ = taskeventMixinFields0
	taskeventFields := schema.TaskEvent{}.Fields()
	_ = taskeventFields
	// taskeventDescTimestamp is the schema descriptor for timestamp field.
	taskeventDescTimestamp := taskeventMixinFields0[1].Descriptor()
	// taskevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	taskevent.DefaultTimestamp = taskeventDescTimestamp.Default.(func() time.Time)
	// taskeventDescAssignmentID is the schema descriptor for assignment_id field.
	taskeventDescAssignmentID := taskeventFields[0].Descriptor()
	// taskevent.AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	taskevent.AssignmentIDValidator = taskeventDescAssignmentID.Validators[0].(func(string) error)
	// taskeventDescTitle is the schema descriptor for title field.
	taskeventDescTitle := taskeventFields[1].Descriptor()
	// taskevent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	taskevent.TitleValidator = taskeventDescTitle.Validators[0].(func(string) error)
	// taskeventDescSubject is the schema descriptor for subject field.
	taskeventDescSubject := taskeventFields[2].Descriptor()
	// taskevent.DefaultSubject holds the default value on creation for the subject field.
	taskevent.DefaultSubject = taskeventDescSubject.Default.(string)
	// taskeventDescXpAwarded is the schema descriptor for xp_awarded field.
	taskeventDescXpAwarded := taskeventFields[3].Descriptor()
	// taskevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	taskevent.DefaultXpAwarded = taskeventDescXpAwarded.Default.(int)
}
