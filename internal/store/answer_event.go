package store

import (
	"context"
	"fmt"

	"github.com/bazs0328/graduation/ent"
	"github.com/bazs0328/graduation/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuizID(data.QuizID).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetDifficulty(data.Difficulty).
		SetUserAnswer(data.UserAnswer).
		SetExpectedAnswer(data.ExpectedAnswer).
		SetVerdict(data.Verdict).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswersForQuiz(ctx context.Context, quizID int) ([]AnswerEventData, error) {
	rows, err := r.client.AnswerEvent.Query().
		Where(answerevent.QuizID(quizID)).
		Order(ent.Asc(answerevent.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	answers := make([]AnswerEventData, 0, len(rows))
	for _, row := range rows {
		answers = append(answers, AnswerEventData{
			SessionID:      row.SessionID,
			QuizID:         row.QuizID,
			QuestionID:     row.QuestionID,
			QuestionType:   row.QuestionType,
			Difficulty:     row.Difficulty,
			UserAnswer:     row.UserAnswer,
			ExpectedAnswer: row.ExpectedAnswer,
			Verdict:        row.Verdict,
		})
	}
	return answers, nil
}
