package quiz

import "encoding/json"

// QuestionType identifies how a question is asked and answered. The set is
// open: the service may introduce new types, and the client must keep working
// when it meets one it does not recognize (see Normalize).
type QuestionType string

const (
	TypeSingle      QuestionType = "single"      // pick one option by letter
	TypeJudge       QuestionType = "judge"       // true/false
	TypeShort       QuestionType = "short"       // free text
	TypeFillBlank   QuestionType = "fill_blank"  // free text
	TypeCalculation QuestionType = "calculation" // free text
	TypeWritten     QuestionType = "written"     // free text
)

// Known reports whether the type is part of the client's known set.
func (t QuestionType) Known() bool {
	switch t {
	case TypeSingle, TypeJudge, TypeShort, TypeFillBlank, TypeCalculation, TypeWritten:
		return true
	}
	return false
}

// FreeText reports whether answers for this type are entered as plain text.
func (t QuestionType) FreeText() bool {
	switch t {
	case TypeShort, TypeFillBlank, TypeCalculation, TypeWritten:
		return true
	}
	return false
}

// Difficulty is the service-assigned difficulty level of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DifficultyPlan is the requested distribution of question counts across
// difficulty levels for one quiz. All three levels are present in a
// well-formed plan and the counts sum to the requested quiz size.
type DifficultyPlan map[Difficulty]int

// Total returns the sum of all planned counts.
func (p DifficultyPlan) Total() int {
	n := 0
	for _, c := range p {
		n += c
	}
	return n
}

// Question is one generated quiz question. Questions are created by the
// remote service and are immutable for the life of an attempt.
type Question struct {
	QuestionID int          `json:"question_id"`
	Type       QuestionType `json:"type"`
	Difficulty Difficulty   `json:"difficulty"`
	Stem       string       `json:"stem"`

	// Options is present only for single-choice questions, ordered so that
	// index 0 is option A.
	Options []string `json:"options,omitempty"`

	Explanation    string `json:"explanation,omitempty"`
	SourceChunkIDs []int  `json:"source_chunk_ids,omitempty"`
	RelatedConcept string `json:"related_concept,omitempty"`

	// Optional pedagogical metadata the generator may attach.
	KeyPoints        []string `json:"key_points,omitempty"`
	ReviewSuggestion string   `json:"review_suggestion,omitempty"`
	NextStep         string   `json:"next_step,omitempty"`
	DifficultyReason string   `json:"difficulty_reason,omitempty"`
}

// GenerateRequest asks the service for a new quiz.
type GenerateRequest struct {
	DocumentID    int            `json:"document_id,omitempty"`
	Count         int            `json:"count"`
	Types         []QuestionType `json:"types"`
	FocusConcepts []string       `json:"focus_concepts,omitempty"`
}

// Quiz is the service's quiz-generation response.
type Quiz struct {
	QuizID         int            `json:"quiz_id"`
	Questions      []Question     `json:"questions"`
	DifficultyPlan DifficultyPlan `json:"difficulty_plan"`
}

// ChunkIDs returns every source chunk id cited by the quiz's questions,
// in question order, duplicates included.
func (q Quiz) ChunkIDs() []int {
	var ids []int
	for _, question := range q.Questions {
		ids = append(ids, question.SourceChunkIDs...)
	}
	return ids
}

// SubmittedAnswer pairs a question with its canonical answer envelope.
// A nil envelope marshals as JSON null and means "not answered".
type SubmittedAnswer struct {
	QuestionID int      `json:"question_id"`
	UserAnswer Envelope `json:"user_answer"`
}

// SubmitRequest is the grading request for one attempt.
type SubmitRequest struct {
	QuizID  int               `json:"quiz_id"`
	Answers []SubmittedAnswer `json:"answers"`
}

// QuestionResult is the graded outcome of one question. Correct is nil when
// the service could not grade the answer; that state renders differently
// from both correct and incorrect. The answer fields arrive in whatever
// shape the service sent, so they stay untyped until formatting.
type QuestionResult struct {
	QuestionID     int   `json:"question_id"`
	Correct        *bool `json:"correct"`
	UserAnswer     any   `json:"user_answer"`
	ExpectedAnswer any   `json:"expected_answer"`
}

// SubmitResult is the grading response for one attempt.
type SubmitResult struct {
	Score        float64          `json:"score"`
	Accuracy     float64          `json:"accuracy"`
	PerQuestion  []QuestionResult `json:"per_question_result"`
	FeedbackText string           `json:"feedback_text"`
}

// Envelope is the canonical, type-tagged representation of one answer,
// independent of the raw UI value that produced it. A nil Envelope is the
// null envelope: the learner gave no answer.
type Envelope interface {
	isEnvelope()
}

// ChoiceAnswer answers a single-choice question with an option letter.
type ChoiceAnswer struct {
	Choice string `json:"choice"`
}

// JudgeAnswer answers a judge question with a boolean verdict.
type JudgeAnswer struct {
	Value bool `json:"value"`
}

// TextAnswer answers a free-text question.
type TextAnswer struct {
	Text string `json:"text"`
}

// RawAnswer carries the unmodified value of a question type this client
// does not recognize. Submission must never be blocked by an unknown type,
// so the value is forwarded exactly as the UI stored it.
type RawAnswer struct {
	Value any
}

func (ChoiceAnswer) isEnvelope() {}
func (JudgeAnswer) isEnvelope()  {}
func (TextAnswer) isEnvelope()   {}
func (RawAnswer) isEnvelope()    {}

// MarshalJSON emits the wrapped value itself, not the wrapper.
func (r RawAnswer) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value)
}

// Attempt tracks one quiz being taken: the immutable question list plus the
// learner's current raw UI values keyed by question id. The raw values are
// whatever the input widgets hold (an option letter, a bool, free text) and
// are only converted to envelopes at submission time.
type Attempt struct {
	Quiz Quiz

	raw map[int]any
}

// NewAttempt starts a fresh attempt for the given quiz.
func NewAttempt(q Quiz) *Attempt {
	return &Attempt{Quiz: q, raw: make(map[int]any)}
}

// SetRaw stores the learner's current raw value for a question.
// A nil value clears the answer.
func (a *Attempt) SetRaw(questionID int, v any) {
	if v == nil {
		delete(a.raw, questionID)
		return
	}
	a.raw[questionID] = v
}

// Raw returns the stored raw value for a question, if any.
func (a *Attempt) Raw(questionID int) (any, bool) {
	v, ok := a.raw[questionID]
	return v, ok
}

// Answered returns how many questions currently have a stored raw value.
func (a *Attempt) Answered() int {
	return len(a.raw)
}

// Submission normalizes every stored raw value into its canonical envelope
// and builds the grading request. Questions with no stored value (or whose
// value normalizes to nothing) are submitted with a null envelope.
func (a *Attempt) Submission() SubmitRequest {
	req := SubmitRequest{
		QuizID:  a.Quiz.QuizID,
		Answers: make([]SubmittedAnswer, 0, len(a.Quiz.Questions)),
	}
	for _, q := range a.Quiz.Questions {
		raw := a.raw[q.QuestionID]
		req.Answers = append(req.Answers, SubmittedAnswer{
			QuestionID: q.QuestionID,
			UserAnswer: Normalize(q.Type, raw),
		})
	}
	return req
}
