package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttendanceEvent records the first school-mode activation of a calendar day.
type AttendanceEvent struct {
	ent.Schema
}

func (AttendanceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttendanceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("date").
			NotEmpty().
			Comment("Calendar date, YYYY-MM-DD"),
		field.Int("xp_awarded").
			Default(0),
	}
}

func (AttendanceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
	}
}
