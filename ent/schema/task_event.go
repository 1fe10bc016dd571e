package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskEvent records an assignment completion.
type TaskEvent struct {
	ent.Schema
}

func (TaskEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TaskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assignment_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("subject").
			Default(""),
		field.Int("xp_awarded").
			Default(0),
	}
}

func (TaskEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assignment_id"),
	}
}
