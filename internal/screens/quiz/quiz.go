// Package quiz implements the quiz screen: setup, taking, submission, and
// the graded result view.
package quiz

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/bazs0328/graduation/internal/backend"
	"github.com/bazs0328/graduation/internal/logging"
	quizcore "github.com/bazs0328/graduation/internal/quiz"
	"github.com/bazs0328/graduation/internal/router"
	"github.com/bazs0328/graduation/internal/screen"
	"github.com/bazs0328/graduation/internal/sources"
	"github.com/bazs0328/graduation/internal/state"
	"github.com/bazs0328/graduation/internal/store"
	"github.com/bazs0328/graduation/internal/ui/components"
	"github.com/bazs0328/graduation/internal/ui/layout"
)

type phase int

const (
	phaseSetup phase = iota
	phaseGenerating
	phaseActive
	phaseSubmitting
	phaseResult
)

const (
	defaultCount = 5
	maxCount     = 20
)

// setupTypes are the toggleable question types on the setup form.
var setupTypes = []quizcore.QuestionType{
	quizcore.TypeSingle,
	quizcore.TypeJudge,
	quizcore.TypeShort,
	quizcore.TypeFillBlank,
	quizcore.TypeCalculation,
	quizcore.TypeWritten,
}

// QuizScreen drives a full quiz round trip.
type QuizScreen struct {
	ctx     context.Context
	client  backend.Client
	events  store.EventRepo
	session *state.Session

	phase phase

	// setup form
	countInput   components.TextInput
	typeEnabled  []bool
	setupCursor  int // 0 = count field, 1..len(setupTypes) = type toggles
	focusInput   components.TextInput
	onFocusField bool

	// active quiz
	quiz       *quizcore.Quiz
	attempt    *quizcore.Attempt
	current    int
	options    []components.OptionList
	judges     []components.JudgeToggle
	texts      []components.TextArea
	confirming bool

	// result
	result    *quizcore.SubmitResult
	citations map[int]sources.Record

	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// Option preconfigures the setup form.
type Option func(*QuizScreen)

// WithCount presets the question count field.
func WithCount(n int) Option {
	return func(s *QuizScreen) {
		if n > 0 {
			s.countInput.SetValue(strconv.Itoa(n))
		}
	}
}

// WithTypes enables exactly the named question types. Names that match
// nothing are ignored; when none match, the defaults stay.
func WithTypes(names []string) Option {
	return func(s *QuizScreen) {
		enabled := make([]bool, len(setupTypes))
		matched := false
		for i, t := range setupTypes {
			for _, n := range names {
				if strings.EqualFold(strings.TrimSpace(n), string(t)) {
					enabled[i] = true
					matched = true
				}
			}
		}
		if matched {
			s.typeEnabled = enabled
		}
	}
}

// New creates the quiz screen in its setup phase.
func New(ctx context.Context, client backend.Client, events store.EventRepo, session *state.Session, opts ...Option) *QuizScreen {
	count := components.NewTextInput("5", true, 2)
	focus := components.NewTextInput("focus concepts, comma separated (optional)", false, 0)

	enabled := make([]bool, len(setupTypes))
	enabled[0] = true // single choice on by default
	enabled[1] = true // judge on by default

	s := &QuizScreen{
		ctx:         ctx,
		client:      client,
		events:      events,
		session:     session,
		countInput:  count,
		focusInput:  focus,
		typeEnabled: enabled,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.countInput.Init()
}

func (s *QuizScreen) Title() string {
	switch s.phase {
	case phaseSetup:
		return "New Quiz"
	case phaseGenerating:
		return "Generating"
	case phaseActive:
		return "Quiz"
	case phaseSubmitting:
		return "Grading"
	default:
		return "Result"
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseSetup:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Field"},
			{Key: "Space", Description: "Toggle type"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseActive:
		if s.confirming {
			return []layout.KeyHint{
				{Key: "Y", Description: "Abandon quiz"},
				{Key: "N", Description: "Keep going"},
			}
		}
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	case phaseResult:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	default:
		return nil
	}
}

// HandleEsc intercepts Esc while a quiz is in flight so an accidental key
// press doesn't discard answers.
func (s *QuizScreen) HandleEsc() (bool, tea.Cmd) {
	if s.phase != phaseActive {
		return false, nil
	}
	s.confirming = true
	return true, nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)
	case gradedMsg:
		return s.handleGraded(msg)
	case citationsMsg:
		if msg.Err == nil {
			s.citations = msg.Records
		}
		return s, nil
	case persistedMsg:
		if msg.Err != nil {
			l := logging.FromContext(s.ctx)
			l.Warn().Err(msg.Err).Msg("persist attempt")
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirming {
		switch msg.String() {
		case "y", "Y":
			s.confirming = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch s.phase {
	case phaseSetup:
		return s.handleSetupKey(msg)
	case phaseActive:
		return s.handleActiveKey(msg)
	case phaseResult:
		return s, nil
	}
	return s, nil
}

func (s *QuizScreen) handleSetupKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	lastField := len(setupTypes) + 1 // count, types..., focus

	switch msg.String() {
	case "up":
		if s.setupCursor > 0 {
			s.setupCursor--
		}
		return s, nil
	case "down":
		if s.setupCursor < lastField {
			s.setupCursor++
		}
		return s, nil
	case " ":
		if s.setupCursor >= 1 && s.setupCursor <= len(setupTypes) {
			i := s.setupCursor - 1
			s.typeEnabled[i] = !s.typeEnabled[i]
			return s, nil
		}
	case "enter":
		return s.startGeneration()
	}

	// Route typing to whichever text field holds the cursor.
	var cmd tea.Cmd
	switch s.setupCursor {
	case 0:
		s.countInput, cmd = s.countInput.Update(msg)
	case lastField:
		s.focusInput, cmd = s.focusInput.Update(msg)
	}
	return s, cmd
}

func (s *QuizScreen) startGeneration() (screen.Screen, tea.Cmd) {
	count := defaultCount
	if n, err := s.countInput.NumericValue(); err == nil && n > 0 {
		count = n
	}
	if count > maxCount {
		count = maxCount
	}

	var types []quizcore.QuestionType
	for i, on := range s.typeEnabled {
		if on {
			types = append(types, setupTypes[i])
		}
	}
	if len(types) == 0 {
		s.errMsg = "pick at least one question type"
		return s, nil
	}

	var focus []string
	for _, c := range strings.Split(s.focusInput.Value(), ",") {
		if c = strings.TrimSpace(c); c != "" {
			focus = append(focus, c)
		}
	}

	req := quizcore.GenerateRequest{
		DocumentID:    s.session.DocumentID,
		Count:         count,
		Types:         types,
		FocusConcepts: focus,
	}

	s.phase = phaseGenerating
	s.errMsg = ""
	return s, func() tea.Msg {
		q, err := s.client.GenerateQuiz(s.ctx, *s.session, req)
		return quizReadyMsg{Quiz: q, Err: err}
	}
}

func (s *QuizScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseSetup
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.quiz = msg.Quiz
	s.attempt = quizcore.NewAttempt(*msg.Quiz)
	s.current = 0

	s.options = make([]components.OptionList, len(msg.Quiz.Questions))
	s.judges = make([]components.JudgeToggle, len(msg.Quiz.Questions))
	s.texts = make([]components.TextArea, len(msg.Quiz.Questions))
	for i, q := range msg.Quiz.Questions {
		switch {
		case q.Type == quizcore.TypeSingle:
			s.options[i] = components.NewOptionList(q.Options)
		case q.Type == quizcore.TypeJudge:
			s.judges[i] = components.NewJudgeToggle()
		default:
			s.texts[i] = components.NewTextArea("写下你的答案…", 60, 6)
		}
	}

	s.phase = phaseActive
	return s, nil
}

func (s *QuizScreen) handleActiveKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	q := s.quiz.Questions[s.current]
	freeText := q.Type != quizcore.TypeSingle && q.Type != quizcore.TypeJudge

	switch msg.String() {
	case "ctrl+s":
		return s.submit()
	case "left", "right":
		// Free-text areas own the arrow keys while typing, so page turns
		// use ctrl+arrows there.
		if freeText {
			break
		}
		s.commitCurrent()
		s.turnPage(msg.String() == "right")
		return s, nil
	case "ctrl+left", "ctrl+right":
		s.commitCurrent()
		s.turnPage(msg.String() == "ctrl+right")
		return s, nil
	}

	return s.forwardToInput(msg)
}

func (s *QuizScreen) turnPage(forward bool) {
	if forward && s.current < len(s.quiz.Questions)-1 {
		s.current++
	}
	if !forward && s.current > 0 {
		s.current--
	}
}

// commitCurrent writes the current input value into the attempt.
func (s *QuizScreen) commitCurrent() {
	if s.attempt == nil {
		return
	}
	q := s.quiz.Questions[s.current]
	switch {
	case q.Type == quizcore.TypeSingle:
		if letter := s.options[s.current].ChosenLetter(); letter != "" {
			s.attempt.SetRaw(q.QuestionID, letter)
		}
	case q.Type == quizcore.TypeJudge:
		if v := s.judges[s.current].Value; v != nil {
			s.attempt.SetRaw(q.QuestionID, *v)
		}
	default:
		if text := strings.TrimSpace(s.texts[s.current].Value()); text != "" {
			s.attempt.SetRaw(q.QuestionID, text)
		} else {
			s.attempt.SetRaw(q.QuestionID, nil)
		}
	}
}

func (s *QuizScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.phase != phaseActive || s.quiz == nil {
		return s, nil
	}

	q := s.quiz.Questions[s.current]
	var cmd tea.Cmd
	switch {
	case q.Type == quizcore.TypeSingle:
		s.options[s.current], cmd = s.options[s.current].Update(msg)
	case q.Type == quizcore.TypeJudge:
		s.judges[s.current], cmd = s.judges[s.current].Update(msg)
	default:
		s.texts[s.current], cmd = s.texts[s.current].Update(msg)
	}
	s.commitCurrent()
	return s, cmd
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	s.commitCurrent()
	s.phase = phaseSubmitting

	req := s.attempt.Submission()
	return s, func() tea.Msg {
		res, err := s.client.SubmitQuiz(s.ctx, *s.session, req)
		return gradedMsg{Result: res, Err: err}
	}
}

func (s *QuizScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseActive
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.result = msg.Result
	s.phase = phaseResult
	s.errMsg = ""

	// The graded result is final as soon as it arrives. Citation
	// resolution and local persistence run afterwards and independently;
	// neither can retract it.
	return s, tea.Batch(s.resolveCitations(), s.persist())
}

func (s *QuizScreen) resolveCitations() tea.Cmd {
	ids := sources.Dedupe(s.quiz.ChunkIDs())
	if len(ids) == 0 {
		return nil
	}
	return func() tea.Msg {
		records, err := s.client.ResolveSources(s.ctx, *s.session, ids)
		if err != nil {
			return citationsMsg{Err: err}
		}
		byID := make(map[int]sources.Record, len(records))
		for _, r := range records {
			byID[r.ChunkID] = r
		}
		return citationsMsg{Records: byID}
	}
}

func (s *QuizScreen) persist() tea.Cmd {
	if s.events == nil {
		return nil
	}

	quizID := s.quiz.QuizID
	attempt := store.AttemptEventData{
		SessionID:     s.session.ID,
		QuizID:        quizID,
		DocumentID:    s.session.DocumentID,
		QuestionCount: len(s.quiz.Questions),
		AnsweredCount: s.attempt.Answered(),
		Score:         s.result.Score,
		Accuracy:      s.result.Accuracy,
		Feedback:      s.result.FeedbackText,
	}

	questionByID := make(map[int]quizcore.Question, len(s.quiz.Questions))
	for _, q := range s.quiz.Questions {
		questionByID[q.QuestionID] = q
	}

	answers := make([]store.AnswerEventData, 0, len(s.result.PerQuestion))
	for _, r := range s.result.PerQuestion {
		q := questionByID[r.QuestionID]
		answers = append(answers, store.AnswerEventData{
			SessionID:      s.session.ID,
			QuizID:         quizID,
			QuestionID:     r.QuestionID,
			QuestionType:   string(q.Type),
			Difficulty:     string(q.Difficulty),
			UserAnswer:     marshalAnswer(r.UserAnswer),
			ExpectedAnswer: marshalAnswer(r.ExpectedAnswer),
			Verdict:        quizcore.VerdictOf(r.Correct).String(),
		})
	}

	return func() tea.Msg {
		if err := s.events.AppendAttempt(s.ctx, attempt); err != nil {
			return persistedMsg{Err: err}
		}
		for _, a := range answers {
			if err := s.events.AppendAnswer(s.ctx, a); err != nil {
				return persistedMsg{Err: err}
			}
		}
		return persistedMsg{}
	}
}

// marshalAnswer renders a graded answer for storage; "" for unanswered.
func marshalAnswer(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
