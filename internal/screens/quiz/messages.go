package quiz

import (
	"github.com/bazs0328/graduation/internal/quiz"
	"github.com/bazs0328/graduation/internal/sources"
)

// quizReadyMsg is sent when quiz generation finishes.
type quizReadyMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

// gradedMsg is sent when the submission has been graded.
type gradedMsg struct {
	Result *quiz.SubmitResult
	Err    error
}

// citationsMsg delivers resolved source previews for the result view.
// Resolution failure leaves the result intact; citations just stay absent.
type citationsMsg struct {
	Records map[int]sources.Record
	Err     error
}

// persistedMsg confirms the attempt was written to the local event log.
type persistedMsg struct {
	Err error
}
