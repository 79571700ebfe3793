package desktop

import (
	"context"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/domain/entity"
)

// LiveSource provides tabs, windows and sessions.
type LiveSource interface {
	port.TabDirectory
	port.WindowDirectory
	port.SessionStore
}

// StoredSource provides history and bookmarks.
type StoredSource interface {
	port.HistoryStore
	port.BookmarkStore
}

// Composite glues a live source and a stored source into one port.Browser.
// A nil stored source reports port.ErrUnsupported for history and bookmarks.
type Composite struct {
	live   LiveSource
	stored StoredSource
}

var _ port.Browser = (*Composite)(nil)

// NewComposite creates a browser from its two halves.
func NewComposite(live LiveSource, stored StoredSource) *Composite {
	return &Composite{live: live, stored: stored}
}

// QueryTabs delegates to the live source.
func (c *Composite) QueryTabs(ctx context.Context, filter entity.TabFilter) ([]entity.Tab, error) {
	return c.live.QueryTabs(ctx, filter)
}

// UpdateTab delegates to the live source.
func (c *Composite) UpdateTab(ctx context.Context, id entity.TabID, update entity.TabUpdate) error {
	return c.live.UpdateTab(ctx, id, update)
}

// CreateTab delegates to the live source.
func (c *Composite) CreateTab(ctx context.Context, input entity.CreateTabInput) error {
	return c.live.CreateTab(ctx, input)
}

// ReloadActiveTab delegates to the live source.
func (c *Composite) ReloadActiveTab(ctx context.Context) error {
	return c.live.ReloadActiveTab(ctx)
}

// GetCurrentWindow delegates to the live source.
func (c *Composite) GetCurrentWindow(ctx context.Context) (entity.Window, error) {
	return c.live.GetCurrentWindow(ctx)
}

// CreateWindow delegates to the live source.
func (c *Composite) CreateWindow(ctx context.Context, input entity.CreateWindowInput) error {
	return c.live.CreateWindow(ctx, input)
}

// GetRecentlyClosed delegates to the live source.
func (c *Composite) GetRecentlyClosed(ctx context.Context) ([]entity.ClosedSession, error) {
	return c.live.GetRecentlyClosed(ctx)
}

// GetBookmarkTree delegates to the stored source.
func (c *Composite) GetBookmarkTree(ctx context.Context) ([]*entity.BookmarkNode, error) {
	if c.stored == nil {
		return nil, port.ErrUnsupported
	}
	return c.stored.GetBookmarkTree(ctx)
}

// CreateBookmark delegates to the stored source.
func (c *Composite) CreateBookmark(ctx context.Context, input entity.CreateBookmarkInput) error {
	if c.stored == nil {
		return port.ErrUnsupported
	}
	return c.stored.CreateBookmark(ctx, input)
}

// SearchHistory delegates to the stored source.
func (c *Composite) SearchHistory(ctx context.Context, query entity.HistoryQuery) ([]entity.HistoryItem, error) {
	if c.stored == nil {
		return nil, port.ErrUnsupported
	}
	return c.stored.SearchHistory(ctx, query)
}
