// Package main is the palette entry point: a terminal palette and the
// browser extension's native messaging host in one binary.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/bnema/palette/internal/cli/cmd"
	"github.com/bnema/palette/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Browsers start the host with their own arguments, not a subcommand.
	if cmd.IsHostLaunch(os.Args[1:]) {
		if err := cmd.RunHost(os.Args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}
