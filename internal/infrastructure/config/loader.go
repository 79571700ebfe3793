// Package config provides configuration management for palette with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config") // Name without extension
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// Environment variables use the PALETTE_ prefix (e.g. PALETTE_SEARCH_ENGINE).
	v.SetEnvPrefix("PALETTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging environment variable bindings
	if err := v.BindEnv("logging.level", "PALETTE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PALETTE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PALETTE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PALETTE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decode()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, normalizes and validates. Must be called with m.mu held.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureLogDir(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureLogDir(config *Config) error {
	if config.Logging.LogDir != "" {
		return nil
	}
	dir, err := GetLogDir()
	if err != nil {
		return fmt.Errorf("failed to get log directory: %w", err)
	}
	config.Logging.LogDir = dir
	return nil
}

func normalizeConfig(config *Config) {
	config.Search.Engine = strings.TrimSpace(config.Search.Engine)
	config.Browser.InternalScheme = strings.TrimSpace(config.Browser.InternalScheme)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Offline.PlacesPath = expandHome(strings.TrimSpace(config.Offline.PlacesPath))

	if config.Favicon.Fallback == "" {
		config.Favicon.Fallback = defaultFaviconFall
	}
	if config.TUI.Palette.Background == "" {
		config.TUI.Palette = DefaultDarkPalette()
	}
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Search.Shortcuts = make(map[string]SearchShortcut, len(m.config.Search.Shortcuts))
	for k, v := range m.config.Search.Shortcuts {
		configCopy.Search.Shortcuts[k] = v
	}
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	defaults := DefaultConfig()
	// The log directory is resolved at load time so the file stays portable.
	defaults.Logging.LogDir = ""
	return WriteConfigOrdered(defaults, configFile)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("search.engine", defaults.Search.Engine)
	m.viper.SetDefault("search.shortcuts", defaults.Search.Shortcuts)

	m.viper.SetDefault("history.seed_limit", defaults.History.SeedLimit)
	m.viper.SetDefault("history.max_results", defaults.History.MaxResults)

	m.viper.SetDefault("favicon.service", defaults.Favicon.Service)
	m.viper.SetDefault("favicon.fallback", defaults.Favicon.Fallback)

	m.viper.SetDefault("fallback.include_commands", defaults.Fallback.IncludeCommands)

	m.viper.SetDefault("browser.internal_scheme", defaults.Browser.InternalScheme)

	m.viper.SetDefault("offline.places_path", defaults.Offline.PlacesPath)

	m.setLoggingDefaults(defaults)
	m.setTUIDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setTUIDefaults(defaults *Config) {
	m.viper.SetDefault("tui.max_rows_per_group", defaults.TUI.MaxRowsPerGroup)
	m.viper.SetDefault("tui.palette.background", defaults.TUI.Palette.Background)
	m.viper.SetDefault("tui.palette.surface", defaults.TUI.Palette.Surface)
	m.viper.SetDefault("tui.palette.surface_variant", defaults.TUI.Palette.SurfaceVariant)
	m.viper.SetDefault("tui.palette.text", defaults.TUI.Palette.Text)
	m.viper.SetDefault("tui.palette.muted", defaults.TUI.Palette.Muted)
	m.viper.SetDefault("tui.palette.accent", defaults.TUI.Palette.Accent)
	m.viper.SetDefault("tui.palette.border", defaults.TUI.Palette.Border)
}
