package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded quiz attempt.
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
			Comment("Session the attempt belongs to"),
		field.Int("quiz_id").
			Comment("Service-assigned quiz id"),
		field.Int("document_id").
			Default(0).
			Comment("Document the quiz was generated from, 0 if none"),
		field.Int("question_count").
			Comment("Questions in the quiz"),
		field.Int("answered_count").
			Comment("Questions the learner answered before submitting"),
		field.Float("score").
			Comment("Grader-assigned score"),
		field.Float("accuracy").
			Comment("Fraction of questions graded correct"),
		field.String("feedback").
			Default("").
			Comment("Overall feedback text from the grader"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quiz_id"),
	}
}
