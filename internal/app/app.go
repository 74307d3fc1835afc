// Package app owns the root Bubble Tea model: the screen router, the
// header/footer frame, and global key handling.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bazs0328/graduation/internal/backend"
	"github.com/bazs0328/graduation/internal/router"
	"github.com/bazs0328/graduation/internal/screen"
	"github.com/bazs0328/graduation/internal/screens/home"
	"github.com/bazs0328/graduation/internal/state"
	"github.com/bazs0328/graduation/internal/store"
	"github.com/bazs0328/graduation/internal/ui/layout"
)

// Options carries everything the TUI needs to run.
type Options struct {
	Ctx     context.Context
	Client  backend.Client
	Events  store.EventRepo
	Session *state.Session

	// Start, when set, is pushed above the home screen on startup so a
	// command can open a feature directly.
	Start screen.Screen
}

// Model is the root Bubble Tea model.
type Model struct {
	router  *router.Router
	session *state.Session
	start   screen.Screen
	width   int
	height  int
}

// New creates the root model with the home screen active.
func New(opts Options) Model {
	homeScreen := home.New(home.Deps{
		Ctx:     opts.Ctx,
		Client:  opts.Client,
		Events:  opts.Events,
		Session: opts.Session,
	})
	return Model{
		router:  router.New(homeScreen),
		session: opts.Session,
		start:   opts.Start,
	}
}

func (m Model) Init() tea.Cmd {
	if m.start != nil {
		start := m.start
		return func() tea.Msg { return router.PushScreenMsg{Screen: start} }
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(interface {
				HandleEsc() (bool, tea.Cmd)
			}); ok {
				if handled, cmd := h.HandleEsc(); handled {
					return m, cmd
				}
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	sessionID := ""
	documentID := 0
	if m.session != nil {
		sessionID = m.session.ShortID()
		documentID = m.session.DocumentID
	}
	header := layout.RenderHeader(title, sessionID, documentID, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m Model) footerHints(active any) []layout.KeyHint {
	if p, ok := active.(interface{ KeyHints() []layout.KeyHint }); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
