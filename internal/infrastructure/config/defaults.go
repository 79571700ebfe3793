package config

// Default configuration constants
const (
	defaultSearchEngine   = "https://www.google.com/search?q=%s"
	defaultSeedLimit      = 5
	defaultMaxResults     = 1000
	defaultFaviconService = "https://icons.duckduckgo.com/ip3/%s.ico"
	defaultFaviconFall    = "globe"
	defaultScheme         = "chrome://"

	// Logging defaults
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultMaxLogAgeDays = 7 // days

	defaultMaxRowsPerGroup = 8
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Engine:    defaultSearchEngine,
			Shortcuts: GetDefaultSearchShortcuts(),
		},
		History: HistoryConfig{
			SeedLimit:  defaultSeedLimit,
			MaxResults: defaultMaxResults,
		},
		Favicon: FaviconConfig{
			Service:  defaultFaviconService,
			Fallback: defaultFaviconFall,
		},
		Fallback: FallbackConfig{
			IncludeCommands: false,
		},
		Browser: BrowserConfig{
			InternalScheme: defaultScheme,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			MaxSize:       defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
		TUI: TUIConfig{
			MaxRowsPerGroup: defaultMaxRowsPerGroup,
			Palette:         DefaultDarkPalette(),
		},
	}
}

// DefaultDarkPalette returns the built-in dark terminal colors.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1d",
		SurfaceVariant: "#26262b",
		Text:           "#e4e4e7",
		Muted:          "#71717a",
		Accent:         "#4ade80",
		Border:         "#3f3f46",
	}
}

// GetDefaultSearchShortcuts returns the default search shortcuts.
func GetDefaultSearchShortcuts() map[string]SearchShortcut {
	return map[string]SearchShortcut{
		"ddg": {
			URL:         "https://duckduckgo.com/?q=%s",
			Description: "DuckDuckGo search",
		},
		"g": {
			URL:         "https://www.google.com/search?q=%s",
			Description: "Google search",
		},
		"gh": {
			URL:         "https://github.com/search?q=%s",
			Description: "GitHub search",
		},
		"go": {
			URL:         "https://pkg.go.dev/search?q=%s",
			Description: "Go package search",
		},
		"mdn": {
			URL:         "https://developer.mozilla.org/en-US/search?q=%s",
			Description: "MDN Web Docs search",
		},
		"w": {
			URL:         "https://en.wikipedia.org/wiki/%s",
			Description: "Wikipedia search",
		},
		"yt": {
			URL:         "https://www.youtube.com/results?search_query=%s",
			Description: "YouTube search",
		},
	}
}
