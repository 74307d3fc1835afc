package store

import (
	"context"
	"fmt"

	"github.com/bazs0328/graduation/ent"
	"github.com/bazs0328/graduation/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuizID(data.QuizID).
		SetDocumentID(data.DocumentID).
		SetQuestionCount(data.QuestionCount).
		SetAnsweredCount(data.AnsweredCount).
		SetScore(data.Score).
		SetAccuracy(data.Accuracy).
		SetFeedback(data.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(attemptevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, AttemptRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AttemptEventData: AttemptEventData{
				SessionID:     row.SessionID,
				QuizID:        row.QuizID,
				DocumentID:    row.DocumentID,
				QuestionCount: row.QuestionCount,
				AnsweredCount: row.AnsweredCount,
				Score:         row.Score,
				Accuracy:      row.Accuracy,
				Feedback:      row.Feedback,
			},
		})
	}
	return records, nil
}
