package config

// Config represents the complete configuration for palette.
type Config struct {
	Search   SearchConfig   `mapstructure:"search" toml:"search" json:"search"`
	History  HistoryConfig  `mapstructure:"history" toml:"history" json:"history"`
	Favicon  FaviconConfig  `mapstructure:"favicon" toml:"favicon" json:"favicon"`
	Fallback FallbackConfig `mapstructure:"fallback" toml:"fallback" json:"fallback"`
	Browser  BrowserConfig  `mapstructure:"browser" toml:"browser" json:"browser"`
	Offline  OfflineConfig  `mapstructure:"offline" toml:"offline" json:"offline"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	TUI      TUIConfig      `mapstructure:"tui" toml:"tui" json:"tui"`
}

// SearchConfig controls the fallback web search.
type SearchConfig struct {
	// Engine is the URL template used when nothing matches (must contain %s placeholder)
	Engine    string                    `mapstructure:"engine" toml:"engine" json:"engine" jsonschema:"description=Search URL template with a %s placeholder"`
	Shortcuts map[string]SearchShortcut `mapstructure:"shortcuts" toml:"shortcuts" json:"shortcuts,omitempty"`
}

// SearchShortcut represents a bang shortcut such as !gh.
type SearchShortcut struct {
	URL         string `mapstructure:"url" toml:"url" json:"url"`
	Description string `mapstructure:"description" toml:"description" json:"description"`
}

// ShortcutURLs returns a simple map of shortcut keys to URL templates.
// This is useful for passing to url.SearchURL.
func (s SearchConfig) ShortcutURLs() map[string]string {
	urls := make(map[string]string, len(s.Shortcuts))
	for key, shortcut := range s.Shortcuts {
		urls[key] = shortcut.URL
	}
	return urls
}

// HistoryConfig bounds the history provider.
type HistoryConfig struct {
	// SeedLimit caps the "recently visited" list shown for an empty query.
	SeedLimit int `mapstructure:"seed_limit" toml:"seed_limit" json:"seed_limit" jsonschema:"minimum=1"`
	// MaxResults caps a text search.
	MaxResults int `mapstructure:"max_results" toml:"max_results" json:"max_results" jsonschema:"minimum=1"`
}

// FaviconConfig selects the external icon service.
type FaviconConfig struct {
	Service  string `mapstructure:"service" toml:"service" json:"service"`
	Fallback string `mapstructure:"fallback" toml:"fallback" json:"fallback"`
}

// FallbackConfig tunes when Enter opens a web search.
type FallbackConfig struct {
	// IncludeCommands makes matching commands suppress the search fallback.
	IncludeCommands bool `mapstructure:"include_commands" toml:"include_commands" json:"include_commands"`
}

// BrowserConfig describes the host browser.
type BrowserConfig struct {
	// InternalScheme prefixes internal pages such as history and settings.
	InternalScheme string `mapstructure:"internal_scheme" toml:"internal_scheme" json:"internal_scheme"`
}

// OfflineConfig points the TUI and query modes at a local profile.
type OfflineConfig struct {
	// PlacesPath is a Firefox places.sqlite. Empty means auto-detect.
	PlacesPath string `mapstructure:"places_path" toml:"places_path" json:"places_path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSize       int    `mapstructure:"max_size" toml:"max_size" json:"max_size"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age" json:"max_age"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// TUIConfig controls the terminal palette.
type TUIConfig struct {
	MaxRowsPerGroup int          `mapstructure:"max_rows_per_group" toml:"max_rows_per_group" json:"max_rows_per_group" jsonschema:"minimum=1"`
	Palette         ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds the hex colors of the terminal theme.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" toml:"border" json:"border"`
}
