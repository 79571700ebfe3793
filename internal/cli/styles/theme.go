// Package styles provides the lipgloss rendering of the palette TUI and CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/palette/internal/infrastructure/config"
)

// Semantic colors that the config palette does not carry.
const (
	errorColor   = "#ef4444"
	warningColor = "#f59e0b"
)

// Theme holds the colors of the configured palette and the styles built from them.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color
	Success        lipgloss.Color

	// Status and CLI output
	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	Icon         lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Result groups
	Heading     lipgloss.Style
	Count       lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	RowDetail   lipgloss.Style

	// Query input
	Input        lipgloss.Style
	InputFocused lipgloss.Style
}

// NewTheme creates a Theme from the tui palette, falling back to the dark defaults.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultDarkPalette()
	if cfg != nil && cfg.TUI.Palette.Background != "" {
		p = cfg.TUI.Palette
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from a ColorPalette. Success shares the accent color.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color(errorColor),
		Warning:        lipgloss.Color(warningColor),
		Success:        lipgloss.Color(p.Accent),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Title = fg(t.Text).Bold(true)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.Icon = fg(t.Accent)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.Heading = fg(t.Muted).Bold(true)
	t.Count = fg(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)
	t.Row = fg(t.Text).PaddingLeft(2)
	t.RowSelected = fg(t.Accent).
		Background(t.SurfaceVariant).
		PaddingLeft(2).
		Bold(true)
	t.RowDetail = fg(t.Muted)

	// Input and InputFocused differ only in border color.
	input := fg(t.Text).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)
	t.Input = input.BorderForeground(t.Border)
	t.InputFocused = input.BorderForeground(t.Accent)
}
