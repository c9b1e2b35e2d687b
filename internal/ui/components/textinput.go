package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprechen/internal/ui/theme"
)

// TextInput is where the transcript arrives. It stands in for a speech
// recognizer: each edit is an interim result and Submit makes it final,
// after which the text is frozen and marked as passed or not.
type TextInput struct {
	Model textinput.Model

	final  bool
	passed bool
}

// NewTextInput returns a focused input accepting up to limit runes.
func NewTextInput(placeholder string, limit int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Prompt = "» "
	m.CharLimit = limit
	m.Focus()
	return TextInput{Model: m}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.final {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	if !t.final {
		return t.Model.View()
	}
	mark := theme.Incorrect.Render("✗")
	if t.passed {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return t.Model.View() + " " + mark
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit freezes the transcript and records the verdict.
func (t *TextInput) Submit(passed bool) {
	t.final, t.passed = true, passed
	t.Model.Blur()
}
