package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single completed (or abandoned) problem attempt.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("problem_id").
			NotEmpty().
			Comment("The problem attempted"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Bool("solved").
			Comment("Whether the problem was solved"),
		field.Int64("time_ms").
			Comment("Milliseconds spent on the problem"),
		field.Int("hints_used").
			Default(0).
			Comment("Hints consumed during the attempt"),
		field.Int("incorrect_attempts").
			Default(0).
			Comment("Wrong answers before solving or giving up"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("difficulty"),
		index.Fields("solved"),
	}
}
