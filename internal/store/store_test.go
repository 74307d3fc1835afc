package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID:     "sess-1",
			QuizID:        100 + i,
			QuestionCount: 5,
			AnsweredCount: 5,
			Score:         float64(i),
			Accuracy:      0.6,
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	records, err := repo.RecentAttempts(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].QuizID != 102 {
		t.Errorf("records[0].QuizID = %d, want 102", records[0].QuizID)
	}
	if records[1].QuizID != 101 {
		t.Errorf("records[1].QuizID = %d, want 101", records[1].QuizID)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("sequences not descending: %d <= %d", records[0].Sequence, records[1].Sequence)
	}
}

func TestAppendAndQueryAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "sess-1", QuizID: 7, QuestionID: 2, QuestionType: "judge", Difficulty: "Medium", UserAnswer: `{"type":"judge","value":true}`, ExpectedAnswer: `{"type":"judge","value":false}`, Verdict: "wrong"},
		{SessionID: "sess-1", QuizID: 7, QuestionID: 1, QuestionType: "single", Difficulty: "Easy", UserAnswer: `{"type":"single","choice":"B"}`, ExpectedAnswer: `{"type":"single","choice":"B"}`, Verdict: "correct"},
		{SessionID: "sess-1", QuizID: 8, QuestionID: 1, QuestionType: "short", UserAnswer: "", Verdict: "pending"},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	got, err := repo.AnswersForQuiz(ctx, 7)
	if err != nil {
		t.Fatalf("answers for quiz: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d answers, want 2", len(got))
	}
	// Question order, not insertion order.
	if got[0].QuestionID != 1 || got[1].QuestionID != 2 {
		t.Errorf("question order = %d, %d, want 1, 2", got[0].QuestionID, got[1].QuestionID)
	}
	if got[0].Verdict != "correct" {
		t.Errorf("verdict = %q, want correct", got[0].Verdict)
	}
	if got[0].Difficulty != "Easy" {
		t.Errorf("difficulty = %q, want Easy", got[0].Difficulty)
	}
	if got[1].ExpectedAnswer != `{"type":"judge","value":false}` {
		t.Errorf("expected answer = %q", got[1].ExpectedAnswer)
	}
}

func TestAppendAPIRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAPIRequest(ctx, APIRequestEventData{
		Endpoint:  "/quiz/generate",
		Status:    200,
		LatencyMs: 321,
		Success:   true,
	})
	if err != nil {
		t.Fatalf("append api request: %v", err)
	}

	count, err := s.Client().APIRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAPIRequest(ctx, APIRequestEventData{Endpoint: "/chat", Success: true}); err != nil {
		t.Fatalf("append api request: %v", err)
	}
	if err := repo.AppendAttempt(ctx, AttemptEventData{SessionID: "s", QuizID: 1, QuestionCount: 1}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	records, err := repo.RecentAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	// The attempt came second, so it holds sequence 2.
	if records[0].Sequence != 2 {
		t.Errorf("sequence = %d, want 2", records[0].Sequence)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      ClientState{Version: 1, SessionID: "sess-1", DocumentID: 3},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", snap.Data.SessionID)
	}
	if snap.Data.DocumentID != 3 {
		t.Errorf("document id = %d, want 3", snap.Data.DocumentID)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ClientState{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ClientState{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
