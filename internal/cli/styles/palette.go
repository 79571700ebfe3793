package styles

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/domain/entity"
	urlutil "github.com/bnema/palette/internal/domain/url"
)

const ellipsis = "…"

// maxBangHints caps the bang suggestions shown on one line.
const maxBangHints = 5

var groupIcons = map[entity.GroupKey]string{
	entity.GroupCurrentWindowTabs:  IconTab,
	entity.GroupCommands:           IconTerminal,
	entity.GroupRecentlyClosedTabs: IconRestore,
	entity.GroupBookmarks:          IconBookmark,
	entity.GroupHistorySuggestions: IconClock,
}

// GroupIcon returns the glyph shown next to a group heading.
func GroupIcon(key entity.GroupKey) string {
	if icon, ok := groupIcons[key]; ok {
		return icon
	}
	return IconGlobe
}

// Truncate shortens s to width display cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// VisibleGroups drops empty groups and keeps at most maxRows items per group.
// A maxRows of zero or less keeps every item.
func VisibleGroups(groups []entity.Group, maxRows int) []entity.Group {
	out := make([]entity.Group, 0, len(groups))
	for _, g := range groups {
		if len(g.Items) == 0 {
			continue
		}
		if maxRows > 0 && len(g.Items) > maxRows {
			g.Items = g.Items[:maxRows]
		}
		out = append(out, g)
	}
	return out
}

// Rows flattens groups in display order.
func Rows(groups []entity.Group) []entity.ResultItem {
	var rows []entity.ResultItem
	for _, g := range groups {
		rows = append(rows, g.Items...)
	}
	return rows
}

// PaletteRenderer renders grouped palette results.
type PaletteRenderer struct {
	theme *Theme
}

// NewPaletteRenderer creates a new palette renderer with the given theme.
func NewPaletteRenderer(theme *Theme) *PaletteRenderer {
	return &PaletteRenderer{theme: theme}
}

// RenderGroups renders visible groups; cursor indexes the flattened rows, -1 selects nothing.
func (r *PaletteRenderer) RenderGroups(groups []entity.Group, cursor, width int) string {
	var sb strings.Builder
	row := 0
	for i, g := range groups {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.RenderHeading(g))
		for _, item := range g.Items {
			sb.WriteString("\n")
			sb.WriteString(r.RenderRow(item, row == cursor, width))
			row++
		}
	}
	return sb.String()
}

// RenderHeading renders a group heading with its icon and size.
func (r *PaletteRenderer) RenderHeading(g entity.Group) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.Icon.Render(GroupIcon(g.Key)),
		r.theme.Heading.Render(g.Heading),
		r.theme.Count.Render(fmt.Sprintf("%d", len(g.Items))),
	)
}

// RenderRow renders one selectable row within width cells.
func (r *PaletteRenderer) RenderRow(item entity.ResultItem, selected bool, width int) string {
	style := r.theme.Row
	if selected {
		style = r.theme.RowSelected
	}

	icon := IconGlobe
	if item.Group == entity.GroupCommands {
		icon = CommandIcon(item.IconURL)
	}

	// padding, icon and the separating spaces
	avail := width - 6
	if avail < 10 {
		avail = 10
	}

	title := item.Title
	detail := ""
	if item.Group != entity.GroupCommands {
		detail = urlutil.ExtractDomain(item.URL)
		if detail == "" {
			detail = item.URL
		}
	}

	titleWidth := avail
	if detail != "" {
		titleWidth = avail * 2 / 3
	}
	title = Truncate(title, titleWidth)

	line := icon + " " + title
	if detail != "" {
		detailWidth := avail - runewidth.StringWidth(title) - 2
		if detailWidth > 0 {
			line += "  " + r.theme.RowDetail.Render(Truncate(detail, detailWidth))
		}
	}
	return style.Render(line)
}

// RenderEmpty renders the hint shown when no row matches.
func (r *PaletteRenderer) RenderEmpty(query string) string {
	if strings.TrimSpace(query) == "" {
		return r.theme.Subtle.Render("  Nothing to show yet.")
	}
	return r.theme.Subtle.Render(fmt.Sprintf("  No results. Press enter to search the web for %q.", query))
}

// RenderBangHint renders the bang line under the query. Empty hints render nothing.
func (r *PaletteRenderer) RenderBangHint(hint usecase.BangHint) string {
	if hint.Active != nil {
		return r.theme.Subtle.Render("  Enter searches ") +
			r.theme.Highlight.Render(hint.Active.Description) +
			r.theme.Subtle.Render(fmt.Sprintf(" for %q", hint.Terms))
	}
	if len(hint.Suggestions) == 0 {
		return ""
	}

	suggestions := hint.Suggestions
	if len(suggestions) > maxBangHints {
		suggestions = suggestions[:maxBangHints]
	}
	parts := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		parts = append(parts, r.theme.Highlight.Render("!"+s.Key)+" "+r.theme.Subtle.Render(s.Description))
	}
	return "  " + strings.Join(parts, r.theme.Subtle.Render("  ·  "))
}
