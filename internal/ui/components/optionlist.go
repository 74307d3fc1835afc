package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bazs0328/graduation/internal/ui/theme"
)

// OptionList is a single-choice selector over lettered options. Any option
// count is supported; letters run A, B, C and so on.
type OptionList struct {
	Options []string

	// Selected is the cursor position.
	Selected int

	// Chosen is the committed option index, -1 before a choice is made.
	Chosen int
}

// NewOptionList creates an option list with nothing chosen.
func NewOptionList(options []string) OptionList {
	return OptionList{
		Options: options,
		Chosen:  -1,
	}
}

// OptionLetter converts an option index to its display letter.
func OptionLetter(i int) string {
	return string(rune('A' + i))
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Hitting a letter key
// jumps straight to that option.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter", " ":
		o.Chosen = o.Selected
	default:
		if len(key) == 1 {
			c := key[0]
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			idx := int(c - 'A')
			if idx >= 0 && idx < len(o.Options) {
				o.Selected = idx
				o.Chosen = idx
			}
		}
	}

	return o, nil
}

// ChosenLetter returns the letter of the committed choice, "" when none.
func (o OptionList) ChosenLetter() string {
	if o.Chosen < 0 || o.Chosen >= len(o.Options) {
		return ""
	}
	return OptionLetter(o.Chosen)
}

// SetChosenLetter restores a previous choice from its letter.
func (o *OptionList) SetChosenLetter(letter string) {
	if len(letter) != 1 {
		return
	}
	idx := int(letter[0] - 'A')
	if idx >= 0 && idx < len(o.Options) {
		o.Chosen = idx
		o.Selected = idx
	}
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected {
			prefix = "▸ "
		}
		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, OptionLetter(i), opt)

		switch {
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == o.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
