package cli

import (
	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/domain/favicon"
	"github.com/bnema/palette/internal/infrastructure/config"
)

// PaletteSession bundles the aggregator and selection use case over one browser.
type PaletteSession struct {
	Aggregator *usecase.PaletteAggregator
	Selection  *usecase.SelectionUseCase
	Commands   *usecase.CommandTable
	Bangs      *usecase.BangHintsUseCase
}

// NewPaletteSession wires providers, commands, aggregation and selection from cfg.
func NewPaletteSession(cfg *config.Config, browser port.Browser, opts ...usecase.AggregatorOption) *PaletteSession {
	commands := usecase.NewCommandTable(usecase.CommandCapabilities{
		Tabs:      browser,
		Windows:   browser,
		Bookmarks: browser,
	}, usecase.CommandOptions{InternalScheme: cfg.Browser.InternalScheme})

	providers := []usecase.Provider{
		usecase.NewActiveTabsProvider(browser, browser),
		usecase.NewRecentlyClosedProvider(browser),
		usecase.NewBookmarksProvider(browser),
		usecase.NewHistoryProvider(browser, usecase.HistoryLimits{
			SeedLimit:  cfg.History.SeedLimit,
			MaxResults: cfg.History.MaxResults,
		}),
	}

	resolver := favicon.NewResolver(cfg.Favicon.Service, cfg.Favicon.Fallback)
	opts = append([]usecase.AggregatorOption{usecase.WithIconResolver(resolver)}, opts...)
	aggregator := usecase.NewPaletteAggregator(providers, commands, opts...)

	return &PaletteSession{
		Aggregator: aggregator,
		Selection:  usecase.NewSelectionUseCase(aggregator, commands, browser, FallbackOptions(cfg)),
		Commands:   commands,
		Bangs:      NewBangHints(cfg),
	}
}

// FallbackOptions maps the search and fallback sections to selection options.
func FallbackOptions(cfg *config.Config) usecase.FallbackOptions {
	return usecase.FallbackOptions{
		Engine:          cfg.Search.Engine,
		Shortcuts:       cfg.Search.ShortcutURLs(),
		IncludeCommands: cfg.Fallback.IncludeCommands,
	}
}

// NewBangHints builds bang hints from the configured search shortcuts.
func NewBangHints(cfg *config.Config) *usecase.BangHintsUseCase {
	shortcuts := make(map[string]usecase.SearchShortcut, len(cfg.Search.Shortcuts))
	for key, s := range cfg.Search.Shortcuts {
		shortcuts[key] = usecase.SearchShortcut{URL: s.URL, Description: s.Description}
	}
	return usecase.NewBangHintsUseCase(shortcuts)
}

// Close stops in-flight provider fetches.
func (s *PaletteSession) Close() {
	s.Aggregator.Close()
}
