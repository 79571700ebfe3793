package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// queryCharLimit bounds the query input.
const queryCharLimit = 2048

// NewPaletteInput creates the palette query input.
func NewPaletteInput(theme *Theme) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search tabs, bookmarks, history or commands..."
	ti.CharLimit = queryCharLimit
	ti.PromptStyle = theme.Icon
	ti.PlaceholderStyle = theme.Subtle
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = theme.Icon
	return ti
}

// InputBox frames the rendered input, in the accent color while focused.
func (t *Theme) InputBox(input string, focused bool) string {
	if focused {
		return t.InputFocused.Render(input)
	}
	return t.Input.Render(input)
}
