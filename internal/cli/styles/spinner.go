package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// NewPendingSpinner creates the spinner shown while sources are loading.
func NewPendingSpinner(theme *Theme) spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(theme.Icon),
	)
}

// PendingIndicator renders the spinner and how many sources are still loading.
// It renders nothing when pending is zero.
func (t *Theme) PendingIndicator(s spinner.Model, pending int) string {
	if pending <= 0 {
		return ""
	}
	label := "loading 1 source"
	if pending > 1 {
		label = fmt.Sprintf("loading %d sources", pending)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, s.View(), " ", t.Subtle.Render(label))
}
