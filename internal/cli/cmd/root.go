// Package cmd provides Cobra CLI commands for palette.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/palette/internal/cli"
	"github.com/bnema/palette/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "palette",
		Short: "A keyboard command palette for your browser",
		Long: `Palette - one search box for open tabs, recently closed tabs,
bookmarks, history and browser commands.

Palette runs as a native messaging host next to a browser extension, or
standalone in a terminal against a local browser profile.

Features:
  - Grouped, deduplicated results streamed as each source answers
  - Enter focuses an already open tab instead of duplicating it
  - Web search fallback with bang shortcuts (!gh, !w, etc.)
  - Browser commands: new window, reload, bookmark this tab, ...

Use 'palette tui' to open the terminal palette, 'palette manifest --install'
to register the native messaging host, or 'palette query' for scripting.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "host", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}
