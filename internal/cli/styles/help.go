package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledHelp creates a help model in the theme colors.
func NewStyledHelp(theme *Theme) help.Model {
	separator := lipgloss.NewStyle().Foreground(theme.Border)

	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = theme.Icon
	h.Styles.ShortDesc = theme.Subtle
	h.Styles.ShortSeparator = separator
	h.Styles.FullKey = theme.Icon
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = separator
	return h
}

// PaletteKeyMap holds the palette keybindings. It implements help.KeyMap.
type PaletteKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Copy   key.Binding
	Clear  key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PaletteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Copy, k.Clear, k.Cancel}
}

// FullHelp returns keybindings for expanded help.
func (k PaletteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Open, k.Copy},
		{k.Clear, k.Cancel},
	}
}

// DefaultPaletteKeyMap returns the default palette keybindings.
// Letters are left to the query input, so navigation uses arrows and ctrl keys.
func DefaultPaletteKeyMap() PaletteKeyMap {
	return PaletteKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy url"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "clear"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
	}
}
