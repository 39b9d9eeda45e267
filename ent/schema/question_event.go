package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionEvent records a proactive guiding question the gate granted.
type QuestionEvent struct {
	ent.Schema
}

func (QuestionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuestionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_text").
			NotEmpty().
			Comment("The question spoken to the student"),
		field.Bool("expects_response").
			Comment("Whether the gate waits for an answer"),
		field.String("state").
			NotEmpty().
			Comment("Conversation state when the question was granted"),
		field.String("trigger").
			NotEmpty().
			Comment("Rule that granted it: stuck, strategic, or probability"),
	}
}

func (QuestionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("trigger"),
	}
}
