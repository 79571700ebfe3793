package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/palette/internal/domain/build"
	"github.com/bnema/palette/internal/domain/entity"
)

// AboutInfo is what "palette about" reports.
type AboutInfo struct {
	Build      build.Info
	ConfigFile string
	LogDir     string
	// PlacesPath is empty when no Firefox profile was found.
	PlacesPath string
}

// AboutRenderer renders the about screen: the group glyphs next to build and path details.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders info as a two-column block.
func (r *AboutRenderer) Render(info AboutInfo) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderGlyphs(), "   ", r.renderDetails(info))
}

// renderGlyphs stacks the group icons in display order.
func (r *AboutRenderer) renderGlyphs() string {
	glyphs := make([]string, 0, len(entity.GroupOrder))
	for _, key := range entity.GroupOrder {
		glyphs = append(glyphs, r.theme.Icon.Render(GroupIcon(key)))
	}
	return lipgloss.NewStyle().MarginTop(2).MarginLeft(2).Render(strings.Join(glyphs, "\n"))
}

func (r *AboutRenderer) renderDetails(info AboutInfo) string {
	places := r.theme.Highlight.Render(info.PlacesPath)
	if info.PlacesPath == "" {
		places = r.theme.WarningStyle.Render("no Firefox profile found")
	}

	commit := info.Build.ShortCommit()
	if commit == "" {
		commit = "unknown"
	}

	lines := []string{
		r.theme.Title.Render("palette") + " " + r.theme.Subtle.Render(info.Build.Version),
		"",
		r.line(IconGitBranch, "Commit", r.theme.Highlight.Render(commit)),
		r.line(IconCalendar, "Built", r.theme.Highlight.Render(info.Build.BuildDate)),
		r.line(IconGo, "Go", r.theme.Highlight.Render(info.Build.GoVersion)),
		"",
		r.line(IconConfig, "Config", r.theme.Highlight.Render(info.ConfigFile)),
		r.line(IconFolder, "Logs", r.theme.Highlight.Render(info.LogDir)),
		r.line(IconBookmark, "Places", places),
		"",
		r.line(IconGithub, "", r.theme.Subtle.Render(build.RepoURL)),
	}
	return strings.Join(lines, "\n")
}

func (r *AboutRenderer) line(icon, label, value string) string {
	if label == "" {
		return fmt.Sprintf("%s %s", r.theme.Icon.Render(icon), value)
	}
	return fmt.Sprintf("%s %s %s", r.theme.Icon.Render(icon), r.theme.Subtle.Render(fmt.Sprintf("%-7s", label)), value)
}
