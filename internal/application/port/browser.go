package port

import (
	"context"
	"errors"

	"github.com/bnema/palette/internal/domain/entity"
)

var (
	// ErrUnsupported is returned when an adapter has no such capability.
	ErrUnsupported = errors.New("operation not supported by this browser adapter")

	// ErrReadOnly is returned by stores that cannot be written to.
	ErrReadOnly = errors.New("store is read-only")
)

// TabDirectory lists and manipulates open tabs.
type TabDirectory interface {
	// QueryTabs returns tabs matching filter. Adapters may ignore parts of the
	// filter, so callers re-check what they depend on.
	QueryTabs(ctx context.Context, filter entity.TabFilter) ([]entity.Tab, error)
	UpdateTab(ctx context.Context, id entity.TabID, update entity.TabUpdate) error
	// CreateTab opens a tab. An empty URL opens the browser's new tab page.
	CreateTab(ctx context.Context, input entity.CreateTabInput) error
	ReloadActiveTab(ctx context.Context) error
}

// WindowDirectory resolves and opens browser windows.
type WindowDirectory interface {
	GetCurrentWindow(ctx context.Context) (entity.Window, error)
	CreateWindow(ctx context.Context, input entity.CreateWindowInput) error
}

// BookmarkStore reads and writes the bookmark tree.
type BookmarkStore interface {
	// GetBookmarkTree returns the top-level nodes of the tree.
	GetBookmarkTree(ctx context.Context) ([]*entity.BookmarkNode, error)
	CreateBookmark(ctx context.Context, input entity.CreateBookmarkInput) error
}

// HistoryStore searches browsing history.
type HistoryStore interface {
	// SearchHistory returns at most query.MaxResults items, most recent first.
	// An empty text matches everything.
	SearchHistory(ctx context.Context, query entity.HistoryQuery) ([]entity.HistoryItem, error)
}

// SessionStore lists recently closed sessions.
type SessionStore interface {
	GetRecentlyClosed(ctx context.Context) ([]entity.ClosedSession, error)
}

// Browser is the full set of capabilities the palette drives.
type Browser interface {
	TabDirectory
	WindowDirectory
	BookmarkStore
	HistoryStore
	SessionStore
}
