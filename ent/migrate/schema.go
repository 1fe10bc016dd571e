// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttendanceEventsColumns holds the columns for the "attendance_events" table.
	AttendanceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "date", Type: field.TypeString},
		{Name: "xp_awarded", Type: field.TypeInt, Default: 0},
	}
	// AttendanceEventsTable holds the schema information for the "attendance_events" table.
	AttendanceEventsTable = &schema.Table{
		Name:       "attendance_events",
		Columns:    AttendanceEventsColumns,
		PrimaryKey: []*schema.Column{AttendanceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attendanceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttendanceEventsColumns[1]},
			},
			{
				Name:    "attendanceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttendanceEventsColumns[2]},
			},
			{
				Name:    "attendanceevent_date",
				Unique:  false,
				Columns: []*schema.Column{AttendanceEventsColumns[3]},
			},
		},
	}
	// BellEventsColumns holds the columns for the "bell_events" table.
	BellEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "session_name", Type: field.TypeString},
		{Name: "is_break", Type: field.TypeBool, Default: false},
		{Name: "topic_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 0},
		{Name: "xp_awarded", Type: field.TypeInt, Default: 0},
	}
	// BellEventsTable holds the schema information for the "bell_events" table.
	BellEventsTable = &schema.Table{
		Name:       "bell_events",
		Columns:    BellEventsColumns,
		PrimaryKey: []*schema.Column{BellEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bellevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BellEventsColumns[1]},
			},
			{
				Name:    "bellevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BellEventsColumns[2]},
			},
			{
				Name:    "bellevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{BellEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Default: 0},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// TaskEventsColumns holds the columns for the "task_events" table.
	TaskEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assignment_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "xp_awarded", Type: field.TypeInt, Default: 0},
	}
	// TaskEventsTable holds the schema information for the "task_events" table.
	TaskEventsTable = &schema.Table{
		Name:       "task_events",
		Columns:    TaskEventsColumns,
		PrimaryKey: []*schema.Column{TaskEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[1]},
			},
			{
				Name:    "taskevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[2]},
			},
			{
				Name:    "taskevent_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttendanceEventsTable,
		BellEventsTable,
		LlmRequestEventsTable,
		SnapshotsTable,
		TaskEventsTable,
	}
)

func init() {
}
