package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records the graded outcome of a single question within an
// attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the answer belongs to"),
		field.Int("quiz_id").
			Comment("Quiz the question came from"),
		field.Int("question_id").
			Comment("Question within the quiz"),
		field.String("question_type").
			NotEmpty().
			Comment("single, judge, short, fill_blank, calculation, written, or a service-defined type"),
		field.String("difficulty").
			Default("").
			Comment("Easy, Medium, or Hard; empty when the service omitted it"),
		field.String("user_answer").
			Default("").
			Comment("Normalized answer envelope as JSON, empty when unanswered"),
		field.String("expected_answer").
			Default("").
			Comment("Service-provided expected answer as JSON, empty when none"),
		field.String("verdict").
			NotEmpty().
			Comment("correct, wrong, or pending"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quiz_id"),
		index.Fields("verdict"),
	}
}
