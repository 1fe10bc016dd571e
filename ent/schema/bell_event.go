package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BellEvent records the end of a class session: which session rang out,
// how many topics were logged during it, and the XP the bell awarded.
type BellEvent struct {
	ent.Schema
}

func (BellEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BellEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Timetable session identifier"),
		field.String("session_name").
			NotEmpty(),
		field.Bool("is_break").
			Default(false),
		field.Int("topic_count").
			Default(0).
			Comment("Topics logged during the session"),
		field.Int("duration_minutes").
			Default(0),
		field.Int("xp_awarded").
			Default(0),
	}
}

func (BellEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
