// Package ask implements the question screen: free-form questions against
// the indexed material, with resolved citations under each answer.
package ask

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bazs0328/graduation/internal/backend"
	"github.com/bazs0328/graduation/internal/screen"
	"github.com/bazs0328/graduation/internal/sources"
	"github.com/bazs0328/graduation/internal/state"
	"github.com/bazs0328/graduation/internal/ui/components"
	"github.com/bazs0328/graduation/internal/ui/layout"
	"github.com/bazs0328/graduation/internal/ui/theme"
)

// answerMsg delivers the service's answer.
type answerMsg struct {
	Result *backend.AskResult
	Err    error
}

// citationsMsg delivers resolved citations for one resolution pass. Passes
// superseded by a newer question are dropped on arrival.
type citationsMsg struct {
	Records map[int]sources.Record
	Err     error
}

// AskScreen drives ask-answer rounds.
type AskScreen struct {
	ctx     context.Context
	client  backend.Client
	session *state.Session

	input    components.TextInput
	waiting  bool
	question string
	answer   *backend.AskResult

	resolver  *sources.Resolver
	citations map[int]sources.Record

	errMsg string
}

var _ screen.Screen = (*AskScreen)(nil)
var _ screen.KeyHintProvider = (*AskScreen)(nil)

// New creates the ask screen.
func New(ctx context.Context, client backend.Client, session *state.Session) *AskScreen {
	resolver := sources.New(func(ctx context.Context, chunkIDs []int) ([]sources.Record, error) {
		return client.ResolveSources(ctx, *session, chunkIDs)
	})
	return &AskScreen{
		ctx:      ctx,
		client:   client,
		session:  session,
		input:    components.NewTextInput("输入你的问题…", false, 0),
		resolver: resolver,
	}
}

func (s *AskScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AskScreen) Title() string {
	return "Ask"
}

func (s *AskScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AskScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.answer = msg.Result
		s.citations = nil
		s.errMsg = ""
		return s, s.resolve(msg.Result.ChunkIDs())

	case citationsMsg:
		if msg.Err != nil {
			// A superseded pass is expected noise; anything else is shown.
			if !errors.Is(msg.Err, sources.ErrSuperseded) {
				s.errMsg = msg.Err.Error()
			}
			return s, nil
		}
		s.citations = msg.Records
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s.ask()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AskScreen) ask() (screen.Screen, tea.Cmd) {
	query := strings.TrimSpace(s.input.Value())
	if query == "" || s.waiting {
		return s, nil
	}

	s.question = query
	s.waiting = true
	s.errMsg = ""
	s.input.SetValue("")

	return s, func() tea.Msg {
		res, err := s.client.Ask(s.ctx, *s.session, backend.AskRequest{Query: query})
		return answerMsg{Result: res, Err: err}
	}
}

// resolve starts a citation resolution pass. Each pass carries a generation
// token; when a newer question starts its own pass, this one's result is
// discarded instead of overwriting the newer mapping.
func (s *AskScreen) resolve(chunkIDs []int) tea.Cmd {
	if len(chunkIDs) == 0 {
		return nil
	}
	pass := s.resolver.Start()
	return func() tea.Msg {
		records, err := pass.Resolve(s.ctx, chunkIDs)
		if err != nil {
			return citationsMsg{Err: err}
		}
		return citationsMsg{Records: records}
	}
}

func (s *AskScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Render("问题: ") + s.input.View() + "\n\n")

	switch {
	case s.waiting:
		b.WriteString(theme.Hint.Render("正在思考…") + "\n")
	case s.answer != nil:
		b.WriteString(theme.Hint.Render("问: "+s.question) + "\n\n")
		b.WriteString(theme.Body.Render(s.answer.Answer) + "\n")
		if cite := s.renderCitations(); cite != "" {
			b.WriteString("\n" + cite)
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.errMsg) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *AskScreen) renderCitations() string {
	if s.answer == nil || len(s.answer.Sources) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Citation.Render("出处:") + "\n")
	for _, ref := range s.answer.Sources {
		rec, ok := s.citations[ref.ChunkID]
		if !ok {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  #%d", ref.ChunkID)) + "\n")
			continue
		}
		line := fmt.Sprintf("  %s #%d", rec.DocumentName, rec.ChunkID)
		if rec.TextPreview != "" {
			line += "  " + rec.TextPreview
		}
		b.WriteString(theme.Citation.Render(line) + "\n")
	}
	return b.String()
}
