// Package history lists past quiz attempts from the local event log.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bazs0328/graduation/internal/screen"
	"github.com/bazs0328/graduation/internal/state"
	"github.com/bazs0328/graduation/internal/store"
	"github.com/bazs0328/graduation/internal/ui/theme"
)

const pageSize = 20

// attemptsMsg delivers the loaded attempts.
type attemptsMsg struct {
	Records []store.AttemptRecord
	Err     error
}

// HistoryScreen shows recent attempts, newest first.
type HistoryScreen struct {
	ctx     context.Context
	events  store.EventRepo
	session *state.Session

	records []store.AttemptRecord
	loading bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates the history screen.
func New(ctx context.Context, events store.EventRepo, session *state.Session) *HistoryScreen {
	return &HistoryScreen{
		ctx:     ctx,
		events:  events,
		session: session,
		loading: true,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.events.RecentAttempts(s.ctx, store.QueryOpts{Limit: pageSize})
		return attemptsMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(attemptsMsg); ok {
		s.loading = false
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.records = m.Records
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var content string
	switch {
	case s.loading:
		content = theme.Hint.Render("正在读取记录…")
	case s.errMsg != "":
		content = theme.Incorrect.Render(s.errMsg)
	case len(s.records) == 0:
		content = theme.Hint.Render("还没有测验记录")
	default:
		var b strings.Builder
		b.WriteString(theme.Title.Render("历史测验") + "\n\n")
		for _, r := range s.records {
			line := fmt.Sprintf("%s  测验 %d  %d 题  得分 %.1f  正确率 %.0f%%",
				r.Timestamp.Local().Format("01-02 15:04"),
				r.QuizID, r.QuestionCount, r.Score, r.Accuracy*100)
			b.WriteString(theme.Body.Render(line) + "\n")
			if r.Feedback != "" {
				b.WriteString(theme.Hint.Render("  "+r.Feedback) + "\n")
			}
		}
		content = b.String()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
