package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/domain/entity"
	"github.com/bnema/palette/internal/logging"
)

const (
	// DefaultHistorySeedLimit caps the "recently visited" list for an empty query.
	DefaultHistorySeedLimit = 5
	// DefaultHistoryMaxResults caps a history text search.
	DefaultHistoryMaxResults = 1000
)

// Provider is an independent source of raw palette entries.
type Provider interface {
	Group() entity.GroupKey
	Fetch(ctx context.Context, query string) ([]entity.RawEntry, error)
}

// ActiveTabsProvider lists the tabs of the window the palette was invoked from.
type ActiveTabsProvider struct {
	tabs    port.TabDirectory
	windows port.WindowDirectory
}

// NewActiveTabsProvider creates a provider over the tab and window directories.
func NewActiveTabsProvider(tabs port.TabDirectory, windows port.WindowDirectory) *ActiveTabsProvider {
	return &ActiveTabsProvider{tabs: tabs, windows: windows}
}

// Group implements Provider.
func (p *ActiveTabsProvider) Group() entity.GroupKey { return entity.GroupCurrentWindowTabs }

// Fetch resolves the current window on every call, so a focus change between
// cycles is picked up.
func (p *ActiveTabsProvider) Fetch(ctx context.Context, _ string) ([]entity.RawEntry, error) {
	win, err := p.windows.GetCurrentWindow(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current window: %w", err)
	}

	tabs, err := p.tabs.QueryTabs(ctx, entity.InWindow(win.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to query tabs: %w", err)
	}

	// Adapters may ignore the window filter.
	tabs = lo.Filter(tabs, func(t entity.Tab, _ int) bool { return t.WindowID == win.ID })

	return lo.Map(tabs, func(t entity.Tab, _ int) entity.RawEntry {
		return entity.RawEntry{Title: t.Title, URL: t.URL, IconURL: t.FavIconURL, WindowID: t.WindowID}
	}), nil
}

// RecentlyClosedProvider lists recently closed tabs.
type RecentlyClosedProvider struct {
	sessions port.SessionStore
}

// NewRecentlyClosedProvider creates a provider over the session store.
func NewRecentlyClosedProvider(sessions port.SessionStore) *RecentlyClosedProvider {
	return &RecentlyClosedProvider{sessions: sessions}
}

// Group implements Provider.
func (p *RecentlyClosedProvider) Group() entity.GroupKey { return entity.GroupRecentlyClosedTabs }

// Fetch returns closed tabs tagged WindowIDNone. Closed windows are skipped.
func (p *RecentlyClosedProvider) Fetch(ctx context.Context, _ string) ([]entity.RawEntry, error) {
	sessions, err := p.sessions.GetRecentlyClosed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recently closed sessions: %w", err)
	}

	return lo.FilterMap(sessions, func(s entity.ClosedSession, _ int) (entity.RawEntry, bool) {
		if s.Tab == nil {
			return entity.RawEntry{}, false
		}
		return entity.RawEntry{
			Title:    s.Tab.Title,
			URL:      s.Tab.URL,
			IconURL:  s.Tab.FavIconURL,
			WindowID: entity.WindowIDNone,
		}, true
	}), nil
}

// BookmarksProvider flattens the bookmark tree.
type BookmarksProvider struct {
	bookmarks port.BookmarkStore
}

// NewBookmarksProvider creates a provider over the bookmark store.
func NewBookmarksProvider(bookmarks port.BookmarkStore) *BookmarksProvider {
	return &BookmarksProvider{bookmarks: bookmarks}
}

// Group implements Provider.
func (p *BookmarksProvider) Group() entity.GroupKey { return entity.GroupBookmarks }

// Fetch walks the tree in pre-order and emits every node with a URL.
func (p *BookmarksProvider) Fetch(ctx context.Context, _ string) ([]entity.RawEntry, error) {
	roots, err := p.bookmarks.GetBookmarkTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark tree: %w", err)
	}

	var entries []entity.RawEntry
	for _, root := range roots {
		root.Walk(func(n *entity.BookmarkNode) {
			if n.URL == "" {
				return
			}
			entries = append(entries, entity.RawEntry{Title: n.Title, URL: n.URL, WindowID: entity.WindowIDNone})
		})
	}
	return entries, nil
}

// HistoryProvider searches browsing history with the current query.
type HistoryProvider struct {
	history    port.HistoryStore
	seedLimit  int
	maxResults int
}

// HistoryLimits bounds the history provider. Zero values select the defaults.
type HistoryLimits struct {
	SeedLimit  int
	MaxResults int
}

// NewHistoryProvider creates a provider over the history store.
func NewHistoryProvider(history port.HistoryStore, limits HistoryLimits) *HistoryProvider {
	if limits.SeedLimit <= 0 {
		limits.SeedLimit = DefaultHistorySeedLimit
	}
	if limits.MaxResults <= 0 {
		limits.MaxResults = DefaultHistoryMaxResults
	}
	return &HistoryProvider{history: history, seedLimit: limits.SeedLimit, maxResults: limits.MaxResults}
}

// Group implements Provider.
func (p *HistoryProvider) Group() entity.GroupKey { return entity.GroupHistorySuggestions }

// Fetch returns a short seed list for an empty query and a wide search otherwise.
// Entries missing a title or URL are dropped.
func (p *HistoryProvider) Fetch(ctx context.Context, query string) ([]entity.RawEntry, error) {
	log := logging.FromContext(ctx)

	limit := p.maxResults
	if query == "" {
		limit = p.seedLimit
	}

	items, err := p.history.SearchHistory(ctx, entity.HistoryQuery{Text: query, MaxResults: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}

	if len(items) > limit {
		items = items[:limit]
	}

	entries := lo.FilterMap(items, func(h entity.HistoryItem, _ int) (entity.RawEntry, bool) {
		if h.Title == "" || h.URL == "" {
			return entity.RawEntry{}, false
		}
		return entity.RawEntry{Title: h.Title, URL: h.URL, WindowID: entity.WindowIDNone}, true
	})

	log.Trace().
		Str("query", query).
		Int("limit", limit).
		Int("returned", len(items)).
		Int("kept", len(entries)).
		Msg("history search completed")

	return entries, nil
}

var (
	_ Provider = (*ActiveTabsProvider)(nil)
	_ Provider = (*RecentlyClosedProvider)(nil)
	_ Provider = (*BookmarksProvider)(nil)
	_ Provider = (*HistoryProvider)(nil)
)
