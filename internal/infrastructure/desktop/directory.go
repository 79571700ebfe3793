// Package desktop provides browser capabilities without a live extension:
// URLs open through the desktop's default browser.
package desktop

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/browser"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/domain/entity"
	urlutil "github.com/bnema/palette/internal/domain/url"
	"github.com/bnema/palette/internal/logging"
)

const blankPage = "about:blank"

// Opener opens a URL outside the process.
type Opener func(url string) error

// Directory implements the tab, window and session ports offline.
type Directory struct {
	open Opener
}

var (
	_ port.TabDirectory    = (*Directory)(nil)
	_ port.WindowDirectory = (*Directory)(nil)
	_ port.SessionStore    = (*Directory)(nil)
)

// NewDirectory creates a directory opening URLs with the default browser.
// The opener's output is discarded so it cannot draw over the TUI.
func NewDirectory() *Directory {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Directory{open: browser.OpenURL}
}

// NewDirectoryWithOpener creates a directory using open.
func NewDirectoryWithOpener(open Opener) *Directory {
	return &Directory{open: open}
}

// QueryTabs reports no open tabs; the desktop exposes none.
func (d *Directory) QueryTabs(context.Context, entity.TabFilter) ([]entity.Tab, error) {
	return nil, nil
}

// UpdateTab is unsupported; desktop tabs cannot be addressed.
func (d *Directory) UpdateTab(context.Context, entity.TabID, entity.TabUpdate) error {
	return port.ErrUnsupported
}

// CreateTab opens input.URL, normalized, in the default browser.
func (d *Directory) CreateTab(ctx context.Context, input entity.CreateTabInput) error {
	target := blankPage
	if input.URL != "" {
		target = urlutil.Normalize(input.URL)
	}

	logging.FromContext(ctx).Debug().Str("url", logging.TruncateURL(target, 80)).Msg("opening url in default browser")

	if err := d.open(target); err != nil {
		return fmt.Errorf("failed to open %s: %w", logging.TruncateURL(target, 80), err)
	}
	return nil
}

// ReloadActiveTab is unsupported.
func (d *Directory) ReloadActiveTab(context.Context) error {
	return port.ErrUnsupported
}

// GetCurrentWindow returns window 0.
func (d *Directory) GetCurrentWindow(context.Context) (entity.Window, error) {
	return entity.Window{ID: 0, Focused: true}, nil
}

// CreateWindow is unsupported.
func (d *Directory) CreateWindow(context.Context, entity.CreateWindowInput) error {
	return port.ErrUnsupported
}

// GetRecentlyClosed is unsupported; there is no session history offline.
func (d *Directory) GetRecentlyClosed(context.Context) ([]entity.ClosedSession, error) {
	return nil, port.ErrUnsupported
}
