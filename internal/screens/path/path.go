// Package path renders the recommended learning path built from the
// learner profile.
package path

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bazs0328/graduation/internal/backend"
	"github.com/bazs0328/graduation/internal/learnpath"
	"github.com/bazs0328/graduation/internal/screen"
	"github.com/bazs0328/graduation/internal/state"
	"github.com/bazs0328/graduation/internal/ui/theme"
)

// profileMsg delivers the fetched profile.
type profileMsg struct {
	Profile *learnpath.Profile
	Err     error
}

// PathScreen shows the planned study steps.
type PathScreen struct {
	ctx     context.Context
	client  backend.Client
	session *state.Session

	steps   []learnpath.Step
	loading bool
	empty   bool
	errMsg  string
}

var _ screen.Screen = (*PathScreen)(nil)

// New creates the learning path screen.
func New(ctx context.Context, client backend.Client, session *state.Session) *PathScreen {
	return &PathScreen{
		ctx:     ctx,
		client:  client,
		session: session,
		loading: true,
	}
}

func (s *PathScreen) Init() tea.Cmd {
	return func() tea.Msg {
		p, err := s.client.Profile(s.ctx, *s.session)
		return profileMsg{Profile: p, Err: err}
	}
}

func (s *PathScreen) Title() string {
	return "Learning Path"
}

func (s *PathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(profileMsg); ok {
		s.loading = false
		if m.Err != nil {
			s.errMsg = m.Err.Error()
			return s, nil
		}
		s.steps = learnpath.BuildPath(*m.Profile)
		s.empty = len(s.steps) == 0
	}
	return s, nil
}

func (s *PathScreen) View(width, height int) string {
	var content string
	switch {
	case s.loading:
		content = theme.Hint.Render("正在生成学习路径…")
	case s.errMsg != "":
		content = theme.Incorrect.Render(s.errMsg)
	case s.empty:
		content = theme.Hint.Render("暂无学习建议，先做一次测验吧。")
	default:
		var b strings.Builder
		b.WriteString(theme.Title.Render("学习路径") + "\n\n")
		for i, step := range s.steps {
			b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("%d. %s", i+1, step.Title)) + "\n")
			if step.Reason != "" {
				b.WriteString(theme.Hint.Render("   "+step.Reason) + "\n")
			}
			if step.Source != nil {
				b.WriteString(theme.Citation.Render("   → "+step.Source.Label) + "\n")
			}
			b.WriteString("\n")
		}
		content = b.String()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
