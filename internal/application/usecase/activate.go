package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/domain/entity"
	urlutil "github.com/bnema/palette/internal/domain/url"
	"github.com/bnema/palette/internal/logging"
)

// DefaultSearchEngine is the fallback search template.
const DefaultSearchEngine = "https://www.google.com/search?q=%s"

var (
	// ErrUnknownCommand is returned when activating a command that is not in the table.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrEmptyURL is returned when activating a navigable row without URL.
	ErrEmptyURL = errors.New("result item has no url")
)

// QueryState is the part of the aggregator selection needs.
type QueryState interface {
	Snapshot() entity.AggregateResult
	Reset(ctx context.Context) uint64
}

// FallbackOptions configures the search fallback.
type FallbackOptions struct {
	// Engine is a URL template with a %s placeholder. Defaults to DefaultSearchEngine.
	Engine string
	// Shortcuts maps bang keys to URL templates.
	Shortcuts map[string]string
	// IncludeCommands makes matching commands suppress the fallback.
	IncludeCommands bool
}

// SelectionUseCase handles Enter: activating a row or falling back to a web search.
type SelectionUseCase struct {
	state    QueryState
	commands *CommandTable
	tabs     port.TabDirectory

	mu       sync.RWMutex
	fallback FallbackOptions
}

// NewSelectionUseCase creates a new selection use case.
func NewSelectionUseCase(state QueryState, commands *CommandTable, tabs port.TabDirectory, fallback FallbackOptions) *SelectionUseCase {
	if fallback.Engine == "" {
		fallback.Engine = DefaultSearchEngine
	}
	return &SelectionUseCase{
		state:    state,
		commands: commands,
		tabs:     tabs,
		fallback: fallback,
	}
}

// SetFallback replaces the fallback options, e.g. after a config reload.
func (uc *SelectionUseCase) SetFallback(fallback FallbackOptions) {
	if fallback.Engine == "" {
		fallback.Engine = DefaultSearchEngine
	}
	uc.mu.Lock()
	uc.fallback = fallback
	uc.mu.Unlock()
}

// ActivateInput identifies the selected row.
type ActivateInput struct {
	Item entity.ResultItem
}

// ActivateOutput reports what activation did.
type ActivateOutput struct {
	Command entity.CommandID
	// FocusedTab is set when an open tab with the same URL was focused.
	FocusedTab *entity.TabID
	Created    bool
}

// Activate runs a command row, or focuses an open tab with the row's URL and
// opens a new tab when none exists. The query is reset afterwards, also on error.
func (uc *SelectionUseCase) Activate(ctx context.Context, input ActivateInput) (*ActivateOutput, error) {
	log := logging.FromContext(ctx)
	defer uc.state.Reset(ctx)

	item := input.Item
	if item.Group == entity.GroupCommands || item.Command != "" {
		cmd, ok := uc.commands.ByID(item.Command)
		if !ok {
			return nil, fmt.Errorf("failed to activate %q: %w", item.Command, ErrUnknownCommand)
		}
		log.Debug().Str("command", string(cmd.ID)).Msg("invoking command")
		if err := cmd.Invoke(ctx); err != nil {
			return nil, fmt.Errorf("failed to invoke command %s: %w", cmd.ID, err)
		}
		return &ActivateOutput{Command: cmd.ID}, nil
	}

	if item.URL == "" {
		return nil, ErrEmptyURL
	}

	tabs, err := uc.tabs.QueryTabs(ctx, entity.TabFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to query tabs: %w", err)
	}

	if tab, ok := lo.Find(tabs, func(t entity.Tab) bool { return t.URL == item.URL }); ok {
		log.Debug().Int64("tab_id", int64(tab.ID)).Str("url", logging.TruncateURL(item.URL, 80)).Msg("focusing existing tab")
		if err := uc.tabs.UpdateTab(ctx, tab.ID, entity.TabUpdate{Active: true}); err != nil {
			return nil, fmt.Errorf("failed to focus tab: %w", err)
		}
		id := tab.ID
		return &ActivateOutput{FocusedTab: &id}, nil
	}

	log.Debug().Str("url", logging.TruncateURL(item.URL, 80)).Msg("opening new tab")
	if err := uc.tabs.CreateTab(ctx, entity.CreateTabInput{URL: item.URL}); err != nil {
		return nil, fmt.Errorf("failed to create tab: %w", err)
	}
	return &ActivateOutput{Created: true}, nil
}

// SubmitOutput reports whether the fallback fired.
type SubmitOutput struct {
	Fallback bool
	URL      string
}

// Submit opens a web search for the current query when no navigable row exists.
// An empty query, or any navigable row, makes it a no-op and the query is kept.
func (uc *SelectionUseCase) Submit(ctx context.Context) (*SubmitOutput, error) {
	log := logging.FromContext(ctx)
	snap := uc.state.Snapshot()

	uc.mu.RLock()
	fallback := uc.fallback
	uc.mu.RUnlock()

	if strings.TrimSpace(snap.Query) == "" {
		return &SubmitOutput{}, nil
	}
	if n := snap.NavigableCount(); n > 0 {
		log.Trace().Int("navigable", n).Msg("results present, fallback skipped")
		return &SubmitOutput{}, nil
	}
	if fallback.IncludeCommands && len(snap.Commands) > 0 {
		log.Trace().Int("commands", len(snap.Commands)).Msg("commands match, fallback skipped")
		return &SubmitOutput{}, nil
	}

	target := urlutil.SearchURL(snap.Query, fallback.Shortcuts, fallback.Engine)
	defer uc.state.Reset(ctx)

	log.Debug().Str("url", logging.TruncateURL(target, 80)).Msg("opening search fallback")
	if err := uc.tabs.CreateTab(ctx, entity.CreateTabInput{URL: target}); err != nil {
		return &SubmitOutput{Fallback: true, URL: target}, fmt.Errorf("failed to open search: %w", err)
	}
	return &SubmitOutput{Fallback: true, URL: target}, nil
}
