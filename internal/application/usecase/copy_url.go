package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/domain/entity"
	"github.com/bnema/palette/internal/logging"
)

// ErrNoClipboard is returned when no clipboard is available.
var ErrNoClipboard = errors.New("clipboard not available")

// CopyURLUseCase copies the URL of a result row to the system clipboard.
type CopyURLUseCase struct {
	clipboard port.Clipboard
}

// NewCopyURLUseCase creates a new CopyURLUseCase. A nil clipboard makes every copy fail.
func NewCopyURLUseCase(clipboard port.Clipboard) *CopyURLUseCase {
	return &CopyURLUseCase{clipboard: clipboard}
}

// Copy writes item's URL to the clipboard. Command rows have no URL.
func (uc *CopyURLUseCase) Copy(ctx context.Context, item entity.ResultItem) error {
	if item.URL == "" {
		return fmt.Errorf("failed to copy %q: %w", item.Title, ErrEmptyURL)
	}
	ctx = logging.WithURL(ctx, item.URL)
	log := logging.FromContext(ctx)

	if uc.clipboard == nil {
		return ErrNoClipboard
	}

	if err := uc.clipboard.WriteText(ctx, item.URL); err != nil {
		log.Error().Err(err).Msg("clipboard write failed")
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	log.Debug().Msg("url copied to clipboard")
	return nil
}
