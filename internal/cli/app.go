// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/palette/internal/application/port"
	"github.com/bnema/palette/internal/cli/styles"
	"github.com/bnema/palette/internal/domain/build"
	"github.com/bnema/palette/internal/infrastructure/config"
	"github.com/bnema/palette/internal/infrastructure/desktop"
	"github.com/bnema/palette/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/palette/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	places *sqlite.PlacesStore

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()

	// Create theme from config
	theme := styles.NewTheme(cfg)

	// Unknown levels fall back to info.
	level, _ := logging.ParseLevel(cfg.Logging.Level)
	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: level, Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			Dir:        cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSize,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "cli")
	ctx = logging.WithSession(ctx, logging.GenerateSessionID())

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         theme,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// PlacesPath returns the configured places.sqlite, or the discovered one.
// It is empty when no Firefox profile exists.
func (a *App) PlacesPath() string {
	if a.Config.Offline.PlacesPath != "" {
		return a.Config.Offline.PlacesPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return sqlite.DiscoverPlaces(home)
}

// OfflineBrowser returns the browser used outside an extension session:
// tabs open through the desktop handler, history and bookmarks come from a
// local Firefox profile when one is found.
func (a *App) OfflineBrowser() port.Browser {
	log := logging.FromContext(a.ctx)

	if a.places == nil {
		if path := a.PlacesPath(); path != "" {
			store, err := sqlite.NewPlacesStore(a.ctx, path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("places database unavailable")
			} else {
				log.Debug().Str("path", path).Msg("places database opened")
				a.places = store
			}
		}
	}

	if a.places == nil {
		return desktop.NewComposite(desktop.NewDirectory(), nil)
	}
	return desktop.NewComposite(desktop.NewDirectory(), a.places)
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.places != nil {
		err = a.places.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
// The manager is nil when the config directory cannot be resolved.
func loadConfig() (*config.Manager, *config.Config) {
	// The configured logger does not exist yet.
	log := logging.NewFromEnv()

	mgr, err := config.NewManager()
	if err != nil {
		log.Warn().Err(err).Msg("config unavailable, using defaults")
		return nil, config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		log.Warn().Err(err).Msg("config not loaded, using defaults")
		return mgr, config.DefaultConfig()
	}

	return mgr, mgr.Get()
}
