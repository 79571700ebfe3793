package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/palette/internal/app/messaging"
	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/cli"
	"github.com/bnema/palette/internal/infrastructure/config"
	"github.com/bnema/palette/internal/infrastructure/nativemsg"
	"github.com/bnema/palette/internal/logging"
)

var hostCmd = &cobra.Command{
	Use:   "host [origin]",
	Short: "Run as the browser's native messaging host",
	Long: `Speak the native messaging protocol on stdin/stdout.

The browser starts this mode itself once the manifest is installed
(see 'palette manifest --install'); you should not need to run it by hand.
Logs are written to the log directory only, stdout carries the protocol.`,
	DisableFlagParsing: true,
	RunE: func(_ *cobra.Command, args []string) error {
		return RunHost(args)
	},
}

func init() {
	rootCmd.AddCommand(hostCmd)
}

// IsHostLaunch reports whether args look like a browser starting the host.
// Chromium passes the caller origin; Firefox passes the manifest path and
// the extension id.
func IsHostLaunch(args []string) bool {
	if len(args) == 0 {
		return false
	}
	if strings.HasPrefix(args[0], "chrome-extension://") {
		return true
	}
	return len(args) >= 2 && strings.HasSuffix(args[0], ".json")
}

// loadHostConfig loads the user config. Problems are returned rather than
// logged because the file logger depends on the config.
func loadHostConfig() (*config.Config, *config.Manager, []error) {
	cfg := config.DefaultConfig()
	mgr, err := config.NewManager()
	if err != nil {
		return cfg, nil, []error{fmt.Errorf("failed to create config manager: %w", err)}
	}
	if err := mgr.Load(); err != nil {
		return cfg, mgr, []error{fmt.Errorf("failed to load config, using defaults: %w", err)}
	}
	return mgr.Get(), mgr, nil
}

// warnStartupProblems logs what went wrong before the logger existed.
func warnStartupProblems(log *zerolog.Logger, problems []error) {
	for _, p := range problems {
		log.Warn().Err(p).Msg("host started with degraded config")
	}
}

// RunHost serves one native messaging session until the browser closes stdin.
func RunHost(args []string) error {
	cfg, mgr, problems := loadHostConfig()

	// Stdout is the wire: logs only ever go to the file.
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		problems = append(problems, err)
	}
	logger, cleanup, logErr := logging.NewWithFile(
		logging.Config{Level: level, Format: logging.FormatJSON},
		logging.FileConfig{
			Enabled:    true,
			Dir:        cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSize,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		},
	)
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithContext(ctx, logger)
	ctx = logging.WithSession(ctx, logging.GenerateSessionID())
	ctx = logging.WithComponent(ctx, "host")
	log := logging.FromContext(ctx)
	if logErr != nil {
		// Falls back to stderr, which browsers forward to their own log.
		log.Warn().Err(logErr).Msg("file logging unavailable")
	}
	warnStartupProblems(log, problems)

	origin := ""
	if len(args) > 0 {
		origin = args[len(args)-1]
	}
	log.Info().Str("origin", origin).Str("version", buildInfo.Version).Msg("native host started")

	var handler *messaging.Handler
	conn := nativemsg.NewConn(os.Stdin, os.Stdout, nativemsg.HandlerFunc(func(ctx context.Context, raw json.RawMessage) {
		handler.HandleMessage(ctx, raw)
	}))
	handler = messaging.NewHandler(ctx, conn, buildInfo.Version)

	session := cli.NewPaletteSession(cfg, nativemsg.NewBridge(conn), usecase.WithListener(handler.OnGroup))
	defer session.Close()
	handler.SetPalette(session.Aggregator, session.Selection)

	if mgr != nil {
		mgr.OnConfigChange(func(updated *config.Config) {
			session.Selection.SetFallback(cli.FallbackOptions(updated))
			log.Info().Str("engine", updated.Search.Engine).Msg("search fallback updated")
		})
		if err := mgr.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	if err := conn.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("native host stopped")
		return fmt.Errorf("native messaging: %w", err)
	}
	log.Info().Msg("browser closed the connection")
	return nil
}
