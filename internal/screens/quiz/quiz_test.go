package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/bazs0328/graduation/internal/backend"
	quizcore "github.com/bazs0328/graduation/internal/quiz"
	"github.com/bazs0328/graduation/internal/state"
	"github.com/bazs0328/graduation/internal/store"
)

// fakeEventRepo records appended events in memory.
type fakeEventRepo struct {
	attempts []store.AttemptEventData
	answers  []store.AnswerEventData
}

func (f *fakeEventRepo) AppendAttempt(_ context.Context, d store.AttemptEventData) error {
	f.attempts = append(f.attempts, d)
	return nil
}

func (f *fakeEventRepo) AppendAnswer(_ context.Context, d store.AnswerEventData) error {
	f.answers = append(f.answers, d)
	return nil
}

func (f *fakeEventRepo) AppendAPIRequest(context.Context, store.APIRequestEventData) error {
	return nil
}

func (f *fakeEventRepo) RecentAttempts(context.Context, store.QueryOpts) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) AnswersForQuiz(context.Context, int) ([]store.AnswerEventData, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuiz() *quizcore.Quiz {
	return &quizcore.Quiz{
		QuizID: 77,
		Questions: []quizcore.Question{
			{QuestionID: 1, Type: quizcore.TypeSingle, Stem: "选择题", Options: []string{"甲", "乙", "丙"}, SourceChunkIDs: []int{11, 12}},
			{QuestionID: 2, Type: quizcore.TypeJudge, Stem: "判断题"},
			{QuestionID: 3, Type: quizcore.TypeShort, Stem: "简答题"},
		},
		DifficultyPlan: quizcore.DifficultyPlan{quizcore.DifficultyEasy: 3},
	}
}

func newTestScreen() *QuizScreen {
	sess := state.NewSession()
	return New(context.Background(), &backend.MockClient{}, nil, &sess)
}

func TestStartsInSetup(t *testing.T) {
	s := newTestScreen()
	if s.phase != phaseSetup {
		t.Fatalf("phase = %d, want setup", s.phase)
	}
	if s.Title() != "New Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "New Quiz")
	}
}

func TestQuizReadyEntersActivePhase(t *testing.T) {
	s := newTestScreen()
	s.Update(quizReadyMsg{Quiz: testQuiz()})

	if s.phase != phaseActive {
		t.Fatalf("phase = %d, want active", s.phase)
	}
	if s.attempt == nil {
		t.Fatal("expected attempt to be created")
	}
	if s.attempt.Answered() != 0 {
		t.Errorf("Answered = %d, want 0", s.attempt.Answered())
	}
}

func TestQuizReadyErrorReturnsToSetup(t *testing.T) {
	s := newTestScreen()
	s.phase = phaseGenerating
	s.Update(quizReadyMsg{Err: context.DeadlineExceeded})

	if s.phase != phaseSetup {
		t.Fatalf("phase = %d, want setup", s.phase)
	}
	if s.errMsg == "" {
		t.Error("expected error message")
	}
}

func TestLetterKeyAnswersChoiceQuestion(t *testing.T) {
	s := newTestScreen()
	s.Update(quizReadyMsg{Quiz: testQuiz()})

	s.Update(keyPress('b'))

	raw, ok := s.attempt.Raw(1)
	if !ok {
		t.Fatal("expected a stored answer for question 1")
	}
	if raw != "B" {
		t.Errorf("raw = %v, want B", raw)
	}
}

func TestJudgeAnswerCommitted(t *testing.T) {
	s := newTestScreen()
	s.Update(quizReadyMsg{Quiz: testQuiz()})

	// Move to the judge question, then pick false.
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(keyPress('f'))

	raw, ok := s.attempt.Raw(2)
	if !ok {
		t.Fatal("expected a stored answer for question 2")
	}
	if raw != false {
		t.Errorf("raw = %v, want false", raw)
	}
}

func TestSubmissionCarriesNullForUnanswered(t *testing.T) {
	s := newTestScreen()
	s.Update(quizReadyMsg{Quiz: testQuiz()})
	s.Update(keyPress('a'))

	req := s.attempt.Submission()
	if len(req.Answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(req.Answers))
	}
	if req.Answers[0].UserAnswer == nil {
		t.Error("expected envelope for answered question")
	}
	if req.Answers[1].UserAnswer != nil {
		t.Error("expected null envelope for unanswered judge question")
	}
	if req.Answers[2].UserAnswer != nil {
		t.Error("expected null envelope for unanswered short question")
	}
}

func TestEscDuringQuizAsksForConfirmation(t *testing.T) {
	s := newTestScreen()
	s.Update(quizReadyMsg{Quiz: testQuiz()})

	handled, _ := s.HandleEsc()
	if !handled {
		t.Fatal("expected Esc to be intercepted during an active quiz")
	}
	if !s.confirming {
		t.Fatal("expected confirmation prompt")
	}

	// N keeps the quiz.
	s.Update(keyPress('n'))
	if s.confirming {
		t.Error("expected confirmation dismissed")
	}
	if s.phase != phaseActive {
		t.Errorf("phase = %d, want active", s.phase)
	}
}

func TestGradedResultRendersAndPersists(t *testing.T) {
	repo := &fakeEventRepo{}
	sess := state.NewSession()
	s := New(context.Background(), &backend.MockClient{}, repo, &sess)
	s.Update(quizReadyMsg{Quiz: testQuiz()})
	s.Update(keyPress('a'))

	correct := true
	result := &quizcore.SubmitResult{
		Score:    2,
		Accuracy: 2.0 / 3.0,
		PerQuestion: []quizcore.QuestionResult{
			{QuestionID: 1, Correct: &correct, UserAnswer: map[string]any{"type": "single", "choice": "A"}},
			{QuestionID: 2, Correct: nil},
			{QuestionID: 3, Correct: nil},
		},
	}

	_, cmd := s.Update(gradedMsg{Result: result})
	if s.phase != phaseResult {
		t.Fatalf("phase = %d, want result", s.phase)
	}
	if cmd == nil {
		t.Fatal("expected follow-up commands after grading")
	}

	if msg, ok := s.persist()().(persistedMsg); !ok || msg.Err != nil {
		t.Fatalf("persist = %v, want clean persistedMsg", msg)
	}
	if len(repo.attempts) != 1 {
		t.Fatalf("attempts = %d, want 1", len(repo.attempts))
	}
	if repo.attempts[0].QuizID != 77 || repo.attempts[0].Score != 2 {
		t.Errorf("attempt = %+v", repo.attempts[0])
	}
	if len(repo.answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(repo.answers))
	}
	if repo.answers[0].Verdict != "correct" {
		t.Errorf("verdict = %q, want correct", repo.answers[0].Verdict)
	}
	if repo.answers[1].Verdict != "pending" {
		t.Errorf("verdict = %q, want pending", repo.answers[1].Verdict)
	}

	view := s.View(100, 40)
	if view == "" {
		t.Fatal("expected non-empty result view")
	}
}

func TestCitationFailureKeepsResult(t *testing.T) {
	s := newTestScreen()
	s.Update(quizReadyMsg{Quiz: testQuiz()})
	s.Update(keyPress('a'))

	result := &quizcore.SubmitResult{Score: 1, Accuracy: 1.0 / 3.0}
	s.Update(gradedMsg{Result: result})

	s.Update(citationsMsg{Err: context.DeadlineExceeded})

	if s.phase != phaseResult {
		t.Fatalf("phase = %d, want result after citation failure", s.phase)
	}
	if s.result != result {
		t.Error("expected graded result untouched by citation failure")
	}
	if len(s.citations) != 0 {
		t.Errorf("citations = %d, want none", len(s.citations))
	}
}

func TestGradingErrorKeepsAnswers(t *testing.T) {
	s := newTestScreen()
	s.Update(quizReadyMsg{Quiz: testQuiz()})
	s.Update(keyPress('a'))

	s.phase = phaseSubmitting
	s.Update(gradedMsg{Err: context.DeadlineExceeded})

	if s.phase != phaseActive {
		t.Fatalf("phase = %d, want active after failed grading", s.phase)
	}
	if _, ok := s.attempt.Raw(1); !ok {
		t.Error("expected answers preserved after failed grading")
	}
}
