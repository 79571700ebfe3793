package styles

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/domain/entity"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel…", Truncate("hello world", 4))
	assert.LessOrEqual(t, runewidth.StringWidth(Truncate("日本語のタイトル", 7)), 7)
	assert.Equal(t, "", Truncate("x", 0))
}

func TestVisibleGroups(t *testing.T) {
	groups := []entity.Group{
		{Key: entity.GroupCurrentWindowTabs, Items: []entity.ResultItem{{URL: "a"}, {URL: "b"}, {URL: "c"}}},
		{Key: entity.GroupCommands},
		{Key: entity.GroupBookmarks, Items: []entity.ResultItem{{URL: "d"}}},
	}

	visible := VisibleGroups(groups, 2)
	assert.Len(t, visible, 2)
	assert.Len(t, visible[0].Items, 2)
	assert.Len(t, groups[0].Items, 3)

	rows := Rows(visible)
	assert.Equal(t, []string{"a", "b", "d"}, []string{rows[0].URL, rows[1].URL, rows[2].URL})

	assert.Len(t, Rows(VisibleGroups(groups, 0)), 4)
}

func TestPaletteRenderer_RenderGroups(t *testing.T) {
	r := NewPaletteRenderer(NewTheme(nil))
	groups := []entity.Group{
		{Key: entity.GroupBookmarks, Heading: "Bookmarks", Items: []entity.ResultItem{
			{Title: "Go", URL: "https://www.go.dev/doc", Group: entity.GroupBookmarks},
		}},
		{Key: entity.GroupCommands, Heading: "Commands", Items: []entity.ResultItem{
			{Title: "New Window", IconURL: "window", Group: entity.GroupCommands, Command: "new_window"},
		}},
	}

	out := r.RenderGroups(groups, 1, 80)
	assert.Contains(t, out, "Bookmarks")
	assert.Contains(t, out, "go.dev")
	assert.Contains(t, out, "New Window")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestCommandIcon(t *testing.T) {
	assert.Equal(t, IconWindow, CommandIcon("window"))
	assert.Equal(t, IconTerminal, CommandIcon("unknown"))
}

func TestPaletteRenderer_RenderBangHint(t *testing.T) {
	r := NewPaletteRenderer(NewTheme(nil))

	assert.Empty(t, r.RenderBangHint(usecase.BangHint{}))

	active := r.RenderBangHint(usecase.BangHint{
		Active: &usecase.BangSuggestion{Key: "w", Description: "Wikipedia search"},
		Terms:  "go",
	})
	assert.Contains(t, active, "Wikipedia search")
	assert.Contains(t, active, `"go"`)

	var many []usecase.BangSuggestion
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		many = append(many, usecase.BangSuggestion{Key: k, Description: k + " search"})
	}
	line := r.RenderBangHint(usecase.BangHint{Suggestions: many})
	assert.Contains(t, line, "!e")
	assert.NotContains(t, line, "!f")
}
