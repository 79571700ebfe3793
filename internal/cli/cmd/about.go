package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/palette/internal/cli/styles"
	"github.com/bnema/palette/internal/infrastructure/config"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version, build and path information",
	Long: `Display the version and build info, plus the files palette reads:
the config file, the log directory and the Firefox places database used offline.`,
	RunE: runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	configFile, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to resolve config file: %w", err)
	}

	info := styles.AboutInfo{
		Build:      app.BuildInfo,
		ConfigFile: configFile,
		LogDir:     getLogDir(app.Config.Logging.LogDir),
		PlacesPath: app.PlacesPath(),
	}
	fmt.Println(styles.NewAboutRenderer(app.Theme).Render(info))
	return nil
}
