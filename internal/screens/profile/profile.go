// Package profile shows the learner profile: ability, frustration, weak
// concepts, and the last quiz summary.
package profile

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
	"github.com/bazs0328/graduation/internal/ui/components"
	"github.com/bazs0328/graduation/internal/ui/theme"
)

// profileMsg delivers the fetched profile.
type profileMsg struct {
	Profile *learnpath.Profile
	Err     error
}

// ProfileScreen renders the learner profile.
type ProfileScreen struct {
	ctx     context.Context
	client  backend.Client
	session *state.Session

	profile *learnpath.Profile
	loading bool
	errMsg  string
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(ctx context.Context, client backend.Client, session *state.Session) *ProfileScreen {
	return &ProfileScreen{
		ctx:     ctx,
		client:  client,
		session: session,
		loading: true,
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return func() tea.Msg {
		p, err := s.client.Profile(s.ctx, *s.session)
		return profileMsg{Profile: p, Err: err}
	}
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(profileMsg); ok {
		s.loading = false
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.profile = m.Profile
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	var content string
	switch {
	case s.loading:
		content = theme.Hint.Render("正在加载画像…")
	case s.errMsg != "":
		content = theme.Incorrect.Render(s.errMsg)
	default:
		content = s.render(width)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ProfileScreen) render(width int) string {
	p := s.profile

	var b strings.Builder
	b.WriteString(theme.Title.Render("学习画像") + "\n\n")

	ability := p.AbilityLevel
	if ability == "" {
		ability = "未评估"
	}
	b.WriteString(theme.Body.Render("能力水平: "+ability) + "\n\n")

	frustration := components.NewProgressBar(
		"挫败感", float64(p.FrustrationScore)/10, false, min(width-8, 50))
	b.WriteString(frustration.View())
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d/10", p.FrustrationScore)) + "\n\n")

	if len(p.WeakConcepts) == 0 {
		b.WriteString(theme.Hint.Render("暂无薄弱概念记录") + "\n")
	} else {
		b.WriteString(theme.Body.Bold(true).Render("薄弱概念") + "\n")
		for _, wc := range p.WeakConcepts {
			line := fmt.Sprintf("  %s  答错 %d 次", wc.Concept, wc.WrongCount)
			if wc.WrongRate > 0 {
				line += fmt.Sprintf("（错误率 %s）", learnpath.FormatPercent(wc.WrongRate))
			}
			b.WriteString(theme.Body.Render(line) + "\n")
		}
	}

	if summary := s.renderSummary(); summary != "" {
		b.WriteString("\n" + summary)
	}

	return b.String()
}

func (s *ProfileScreen) renderSummary() string {
	summary := s.profile.LastQuizSummary
	if len(summary) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("最近一次测验") + "\n")
	if v, ok := summary["quiz_id"]; ok {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  编号: %v", v)) + "\n")
	}
	if v, ok := summary["accuracy"].(float64); ok {
		b.WriteString(theme.Body.Render("  正确率: "+learnpath.FormatPercent(v)) + "\n")
	}
	return b.String()
}
