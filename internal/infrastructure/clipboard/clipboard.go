// Package clipboard provides a system clipboard adapter.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/logging"
)

// ErrUnsupported is returned when no clipboard tool is installed
// (wl-clipboard, xclip or xsel on Linux).
var ErrUnsupported = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

// Adapter implements port.Clipboard.
type Adapter struct {
	write       func(string) error
	unsupported bool
}

var _ port.Clipboard = (*Adapter)(nil)

// New creates a new clipboard adapter over the system clipboard.
func New() *Adapter {
	return &Adapter{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if a.unsupported {
		return ErrUnsupported
	}
	if err := a.write(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}

	log.Debug().Int("len", len(text)).Msg("clipboard write success")
	return nil
}
