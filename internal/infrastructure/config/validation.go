package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateFavicon(config)...)
	validationErrors = append(validationErrors, validateBrowser(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTUI(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate runs the same checks Load applies.
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(config)
}

func validateSearch(config *Config) []string {
	var validationErrors []string
	if !strings.Contains(config.Search.Engine, "%s") {
		validationErrors = append(validationErrors, "search.engine must contain %s placeholder")
	}
	for key, shortcut := range config.Search.Shortcuts {
		if key == "" || strings.ContainsAny(key, " !") {
			validationErrors = append(validationErrors, fmt.Sprintf("search.shortcuts key %q must be a single word without '!'", key))
		}
		if !strings.Contains(shortcut.URL, "%s") {
			validationErrors = append(validationErrors, fmt.Sprintf("search.shortcuts.%s.url must contain %%s placeholder", key))
		}
	}
	return validationErrors
}

func validateHistory(config *Config) []string {
	var validationErrors []string
	if config.History.SeedLimit < 1 {
		validationErrors = append(validationErrors, "history.seed_limit must be positive")
	}
	if config.History.MaxResults < 1 {
		validationErrors = append(validationErrors, "history.max_results must be positive")
	}
	return validationErrors
}

func validateFavicon(config *Config) []string {
	if config.Favicon.Service != "" && !strings.Contains(config.Favicon.Service, "%s") {
		return []string{"favicon.service must contain %s placeholder"}
	}
	return nil
}

func validateBrowser(config *Config) []string {
	scheme := config.Browser.InternalScheme
	if !strings.HasSuffix(scheme, "://") && scheme != "about:" {
		return []string{"browser.internal_scheme must end with :// (e.g. chrome://)"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of: trace, debug, info, warn, error")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: console, json")
	}
	if config.Logging.MaxSize < 0 {
		validationErrors = append(validationErrors, "logging.max_size must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateTUI(config *Config) []string {
	if config.TUI.MaxRowsPerGroup < 1 {
		return []string{"tui.max_rows_per_group must be positive"}
	}
	return nil
}
