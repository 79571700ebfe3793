package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/domain/entity"
	"github.com/bnema/palette/internal/logging"
)

// Command identifiers.
const (
	CommandNewTab             entity.CommandID = "new_tab"
	CommandNewWindow          entity.CommandID = "new_window"
	CommandOpenHistory        entity.CommandID = "open_history"
	CommandOpenDownloads      entity.CommandID = "open_downloads"
	CommandOpenExtensions     entity.CommandID = "open_extensions"
	CommandOpenBookmarks      entity.CommandID = "open_bookmarks"
	CommandBookmarkTab        entity.CommandID = "bookmark_tab"
	CommandOpenSettings       entity.CommandID = "open_settings"
	CommandReloadTab          entity.CommandID = "reload_tab"
	CommandNewIncognitoWindow entity.CommandID = "new_incognito_window"
)

// DefaultInternalScheme prefixes browser internal pages.
const DefaultInternalScheme = "chrome://"

// ErrNoActiveTab is returned when a command needs the active tab and there is none.
var ErrNoActiveTab = errors.New("no active tab in current window")

// CommandCapabilities are the browser capabilities commands act on.
type CommandCapabilities struct {
	Tabs      port.TabDirectory
	Windows   port.WindowDirectory
	Bookmarks port.BookmarkStore
}

// CommandOptions tunes the command table.
type CommandOptions struct {
	// InternalScheme defaults to DefaultInternalScheme.
	InternalScheme string
}

// CommandTable is the fixed, ordered set of palette commands.
type CommandTable struct {
	commands []entity.CommandSpec
	byID     map[entity.CommandID]entity.CommandSpec
	byAction map[string]entity.CommandSpec
}

// NewCommandTable builds the command table bound to caps.
func NewCommandTable(caps CommandCapabilities, opts CommandOptions) *CommandTable {
	scheme := opts.InternalScheme
	if scheme == "" {
		scheme = DefaultInternalScheme
	}

	openPage := func(page string) func(context.Context) error {
		return func(ctx context.Context) error {
			return caps.Tabs.CreateTab(ctx, entity.CreateTabInput{URL: scheme + page})
		}
	}

	commands := []entity.CommandSpec{
		{
			ID: CommandNewTab, Action: "newTab", Name: "New Tab", Icon: "tab", ShortcutHint: "ctrl+t",
			Invoke: func(ctx context.Context) error {
				return caps.Tabs.CreateTab(ctx, entity.CreateTabInput{})
			},
		},
		{
			ID: CommandNewWindow, Action: "newWindow", Name: "New Window", Icon: "window", ShortcutHint: "ctrl+n",
			Invoke: func(ctx context.Context) error {
				return caps.Windows.CreateWindow(ctx, entity.CreateWindowInput{})
			},
		},
		{ID: CommandOpenHistory, Action: "openHistory", Name: "Open History Page", Icon: "history", ShortcutHint: "ctrl+h", Invoke: openPage("history")},
		{ID: CommandOpenDownloads, Action: "openDownloads", Name: "Open Downloads", Icon: "download", ShortcutHint: "ctrl+j", Invoke: openPage("downloads")},
		{ID: CommandOpenExtensions, Action: "openExtensions", Name: "Open Extensions", Icon: "puzzle", Invoke: openPage("extensions")},
		{ID: CommandOpenBookmarks, Action: "openBookmarks", Name: "Open Bookmarks", Icon: "bookmark", ShortcutHint: "ctrl+shift+o", Invoke: openPage("bookmarks")},
		{
			ID: CommandBookmarkTab, Action: "bookmarkTab", Name: "Add this tab to Bookmarks", Icon: "star", ShortcutHint: "ctrl+d",
			Invoke: func(ctx context.Context) error {
				return bookmarkActiveTab(ctx, caps)
			},
		},
		{ID: CommandOpenSettings, Action: "openSettings", Name: "Open Settings", Icon: "gear", Invoke: openPage("settings")},
		{
			ID: CommandReloadTab, Action: "reloadTab", Name: "Reload Tab", Icon: "reload", ShortcutHint: "ctrl+r",
			Invoke: func(ctx context.Context) error {
				return caps.Tabs.ReloadActiveTab(ctx)
			},
		},
		{
			ID: CommandNewIncognitoWindow, Action: "newIncognitoWindow", Name: "New Incognito Window", Icon: "incognito", ShortcutHint: "ctrl+shift+n",
			Invoke: func(ctx context.Context) error {
				return caps.Windows.CreateWindow(ctx, entity.CreateWindowInput{Incognito: true})
			},
		},
	}

	return &CommandTable{
		commands: commands,
		byID:     lo.KeyBy(commands, func(c entity.CommandSpec) entity.CommandID { return c.ID }),
		byAction: lo.KeyBy(commands, func(c entity.CommandSpec) string { return c.Action }),
	}
}

func bookmarkActiveTab(ctx context.Context, caps CommandCapabilities) error {
	win, err := caps.Windows.GetCurrentWindow(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current window: %w", err)
	}

	filter := entity.ActiveIn(win.ID)
	tabs, err := caps.Tabs.QueryTabs(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to query active tab: %w", err)
	}

	tab, ok := lo.Find(tabs, filter.Matches)
	if !ok {
		return ErrNoActiveTab
	}

	logging.FromContext(ctx).Debug().Str("url", logging.TruncateURL(tab.URL, 80)).Msg("bookmarking active tab")

	if err := caps.Bookmarks.CreateBookmark(ctx, entity.CreateBookmarkInput{Title: tab.Title, URL: tab.URL}); err != nil {
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	return nil
}

// All returns every command in table order.
func (t *CommandTable) All() []entity.CommandSpec {
	return append([]entity.CommandSpec(nil), t.commands...)
}

// ByID looks a command up by identifier.
func (t *CommandTable) ByID(id entity.CommandID) (entity.CommandSpec, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// ByAction looks a command up by its legacy bridge action name.
func (t *CommandTable) ByAction(action string) (entity.CommandSpec, bool) {
	c, ok := t.byAction[action]
	return c, ok
}

// Filter keeps the commands whose name contains query, case-insensitively.
// An empty query keeps every command.
func (t *CommandTable) Filter(query string) []entity.CommandSpec {
	if query == "" {
		return t.All()
	}
	needle := strings.ToLower(query)
	return lo.Filter(t.commands, func(c entity.CommandSpec, _ int) bool {
		return strings.Contains(strings.ToLower(c.Name), needle)
	})
}
