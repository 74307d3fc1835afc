package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bazs0328/graduation/internal/ui/theme"
)

// JudgeToggle is a true/false selector for judgment questions. It starts
// with nothing chosen, matching an unanswered question.
type JudgeToggle struct {
	// Value is the committed choice; nil means not chosen yet.
	Value *bool

	// cursor is the highlighted side: 0 = true, 1 = false.
	cursor int
}

// NewJudgeToggle creates a toggle with no choice committed.
func NewJudgeToggle() JudgeToggle {
	return JudgeToggle{}
}

// Init returns nil.
func (j JudgeToggle) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection.
func (j JudgeToggle) Update(msg tea.Msg) (JudgeToggle, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return j, nil
	}

	switch kmsg.String() {
	case "left", "h", "right", "l", "tab":
		j.cursor = 1 - j.cursor
	case "enter", " ":
		v := j.cursor == 0
		j.Value = &v
	case "t", "y":
		v := true
		j.Value = &v
		j.cursor = 0
	case "f", "n":
		v := false
		j.Value = &v
		j.cursor = 1
	}

	return j, nil
}

// SetValue restores a previous choice.
func (j *JudgeToggle) SetValue(v bool) {
	j.Value = &v
	if v {
		j.cursor = 0
	} else {
		j.cursor = 1
	}
}

// View renders the two sides.
func (j JudgeToggle) View() string {
	render := func(label string, idx int, val bool) string {
		chosen := j.Value != nil && *j.Value == val
		switch {
		case chosen:
			return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("● " + label)
		case j.cursor == idx:
			return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + label)
		default:
			return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + label)
		}
	}

	return render("正确", 0, true) + "      " + render("错误", 1, false)
}
