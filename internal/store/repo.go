package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AttemptEventData captures one graded quiz attempt.
type AttemptEventData struct {
	SessionID     string
	QuizID        int
	DocumentID    int
	QuestionCount int
	AnsweredCount int
	Score         float64
	Accuracy      float64
	Feedback      string
}

// AttemptRecord is a stored attempt with its log position.
type AttemptRecord struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// AnswerEventData captures the graded outcome of one question.
type AnswerEventData struct {
	SessionID      string
	QuizID         int
	QuestionID     int
	QuestionType   string
	Difficulty     string
	UserAnswer     string // normalized envelope as JSON, "" when unanswered
	ExpectedAnswer string // service-provided expected answer as JSON, "" when none
	Verdict        string // correct, wrong, or pending
}

// APIRequestEventData captures one call to the assessment service.
type APIRequestEventData struct {
	Endpoint     string
	Status       int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to the local event log.
type EventRepo interface {
	// AppendAttempt records a graded quiz attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendAnswer records one graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendAPIRequest records a service call outcome.
	AppendAPIRequest(ctx context.Context, data APIRequestEventData) error

	// RecentAttempts returns attempts ordered newest first.
	RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// AnswersForQuiz returns the stored answers of one quiz in question order.
	AnswersForQuiz(ctx context.Context, quizID int) ([]AnswerEventData, error)
}

// ClientState is the restorable part of the client between runs.
type ClientState struct {
	Version    int    `json:"version"`
	SessionID  string `json:"session_id"`
	DocumentID int    `json:"document_id"`
}

// Snapshot represents a point-in-time capture of client state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      ClientState
}

// SnapshotRepo manages client state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
