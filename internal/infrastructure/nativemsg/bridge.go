package nativemsg

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/domain/entity"
)

// Bridge method names understood by the extension.
const (
	MethodTabsQuery                 = "tabs.query"
	MethodTabsUpdate                = "tabs.update"
	MethodTabsCreate                = "tabs.create"
	MethodTabsReload                = "tabs.reload"
	MethodWindowsGetCurrent         = "windows.getCurrent"
	MethodWindowsCreate             = "windows.create"
	MethodBookmarksGetTree          = "bookmarks.getTree"
	MethodBookmarksCreate           = "bookmarks.create"
	MethodHistorySearch             = "history.search"
	MethodSessionsGetRecentlyClosed = "sessions.getRecentlyClosed"
)

// Caller issues one request to the extension.
type Caller interface {
	Call(ctx context.Context, method string, params, out any) error
}

// Bridge exposes the extension's browser APIs as a port.Browser.
type Bridge struct {
	caller Caller
}

var _ port.Browser = (*Bridge)(nil)

// NewBridge creates a bridge over caller, usually a *Conn.
func NewBridge(caller Caller) *Bridge {
	return &Bridge{caller: caller}
}

type tabUpdateParams struct {
	TabID            entity.TabID     `json:"tabId"`
	UpdateProperties entity.TabUpdate `json:"updateProperties"`
}

// wireHistoryItem is history.HistoryItem; lastVisitTime is in milliseconds.
type wireHistoryItem struct {
	URL           string  `json:"url"`
	Title         string  `json:"title"`
	LastVisitTime float64 `json:"lastVisitTime"`
	VisitCount    int64   `json:"visitCount"`
}

// wireSession is sessions.Session; lastModified is in seconds.
type wireSession struct {
	LastModified int64       `json:"lastModified"`
	Tab          *entity.Tab `json:"tab,omitempty"`
	Window       *struct{}   `json:"window,omitempty"`
}

// QueryTabs calls tabs.query with filter.
func (b *Bridge) QueryTabs(ctx context.Context, filter entity.TabFilter) ([]entity.Tab, error) {
	var tabs []entity.Tab
	if err := b.caller.Call(ctx, MethodTabsQuery, filter, &tabs); err != nil {
		return nil, fmt.Errorf("failed to query tabs: %w", err)
	}
	return tabs, nil
}

// UpdateTab calls tabs.update for tab id.
func (b *Bridge) UpdateTab(ctx context.Context, id entity.TabID, update entity.TabUpdate) error {
	if err := b.caller.Call(ctx, MethodTabsUpdate, tabUpdateParams{TabID: id, UpdateProperties: update}, nil); err != nil {
		return fmt.Errorf("failed to update tab %d: %w", id, err)
	}
	return nil
}

// CreateTab opens a new tab.
func (b *Bridge) CreateTab(ctx context.Context, input entity.CreateTabInput) error {
	if err := b.caller.Call(ctx, MethodTabsCreate, input, nil); err != nil {
		return fmt.Errorf("failed to create tab: %w", err)
	}
	return nil
}

// ReloadActiveTab reloads the active tab of the current window.
func (b *Bridge) ReloadActiveTab(ctx context.Context) error {
	if err := b.caller.Call(ctx, MethodTabsReload, nil, nil); err != nil {
		return fmt.Errorf("failed to reload tab: %w", err)
	}
	return nil
}

// GetCurrentWindow returns the window the palette was opened from.
func (b *Bridge) GetCurrentWindow(ctx context.Context) (entity.Window, error) {
	var win entity.Window
	if err := b.caller.Call(ctx, MethodWindowsGetCurrent, nil, &win); err != nil {
		return entity.Window{}, fmt.Errorf("failed to get current window: %w", err)
	}
	return win, nil
}

// CreateWindow opens a new window, incognito when input.Incognito is set.
func (b *Bridge) CreateWindow(ctx context.Context, input entity.CreateWindowInput) error {
	if err := b.caller.Call(ctx, MethodWindowsCreate, input, nil); err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	return nil
}

// GetBookmarkTree returns the bookmark roots.
func (b *Bridge) GetBookmarkTree(ctx context.Context) ([]*entity.BookmarkNode, error) {
	var roots []*entity.BookmarkNode
	if err := b.caller.Call(ctx, MethodBookmarksGetTree, nil, &roots); err != nil {
		return nil, fmt.Errorf("failed to get bookmark tree: %w", err)
	}
	return roots, nil
}

// CreateBookmark adds a bookmark.
func (b *Bridge) CreateBookmark(ctx context.Context, input entity.CreateBookmarkInput) error {
	if err := b.caller.Call(ctx, MethodBookmarksCreate, input, nil); err != nil {
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	return nil
}

// SearchHistory runs history.search. Visit times arrive in milliseconds.
func (b *Bridge) SearchHistory(ctx context.Context, query entity.HistoryQuery) ([]entity.HistoryItem, error) {
	var items []wireHistoryItem
	if err := b.caller.Call(ctx, MethodHistorySearch, query, &items); err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	return lo.Map(items, func(it wireHistoryItem, _ int) entity.HistoryItem {
		return entity.HistoryItem{
			URL:         it.URL,
			Title:       it.Title,
			LastVisited: time.UnixMilli(int64(it.LastVisitTime)),
			VisitCount:  it.VisitCount,
		}
	}), nil
}

// GetRecentlyClosed lists recently closed tabs and windows.
func (b *Bridge) GetRecentlyClosed(ctx context.Context) ([]entity.ClosedSession, error) {
	var sessions []wireSession
	if err := b.caller.Call(ctx, MethodSessionsGetRecentlyClosed, nil, &sessions); err != nil {
		return nil, fmt.Errorf("failed to get recently closed: %w", err)
	}
	return lo.Map(sessions, func(s wireSession, _ int) entity.ClosedSession {
		return entity.ClosedSession{Tab: s.Tab, LastModified: time.Unix(s.LastModified, 0)}
	}), nil
}
