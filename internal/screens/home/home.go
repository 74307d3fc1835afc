// Package home is the entry screen: a menu over the client's features.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bazs0328/graduation/internal/backend"
	"github.com/bazs0328/graduation/internal/router"
	"github.com/bazs0328/graduation/internal/screen"
	"github.com/bazs0328/graduation/internal/screens/ask"
	"github.com/bazs0328/graduation/internal/screens/history"
	"github.com/bazs0328/graduation/internal/screens/path"
	"github.com/bazs0328/graduation/internal/screens/profile"
	quizscreen "github.com/bazs0328/graduation/internal/screens/quiz"
	"github.com/bazs0328/graduation/internal/state"
	"github.com/bazs0328/graduation/internal/store"
	"github.com/bazs0328/graduation/internal/ui/components"
	"github.com/bazs0328/graduation/internal/ui/theme"
)

// Deps carries the shared services every feature screen needs.
type Deps struct {
	Ctx     context.Context
	Client  backend.Client
	Events  store.EventRepo
	Session *state.Session
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "Take quiz", Action: push(func() screen.Screen {
			return quizscreen.New(deps.Ctx, deps.Client, deps.Events, deps.Session)
		})},
		{Label: "Ask a question", Action: push(func() screen.Screen {
			return ask.New(deps.Ctx, deps.Client, deps.Session)
		})},
		{Label: "Learning path", Action: push(func() screen.Screen {
			return path.New(deps.Ctx, deps.Client, deps.Session)
		})},
		{Label: "Profile", Action: push(func() screen.Screen {
			return profile.New(deps.Ctx, deps.Client, deps.Session)
		})},
		{Label: "Recent quizzes", Action: push(func() screen.Screen {
			return history.New(deps.Ctx, deps.Events, deps.Session)
		}), Disabled: deps.Events == nil},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("Studymate")
	subtitle := theme.Subtitle.Render("study, quiz, and review your course material")

	var sections []string
	sections = append(sections, title, subtitle, "", h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
