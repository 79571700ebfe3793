package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/palette/internal/cli/styles"
	"github.com/bnema/palette/internal/infrastructure/desktop"
	"github.com/bnema/palette/internal/infrastructure/nativemsg"
)

var (
	manifestBrowser     string
	manifestExtensionID string
	manifestHostPath    string
	manifestInstall     bool
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print or install the native messaging host manifest",
	Long: `Generate the manifest that lets the browser extension start palette.

By default the manifest is printed. With --install it is written to the
browser's per-user NativeMessagingHosts directory.

Examples:
  palette manifest --extension-id abcdef...            # Print for Chrome
  palette manifest --browser firefox --extension-id palette@bnema.dev --install`,
	RunE: runManifest,
}

func init() {
	rootCmd.AddCommand(manifestCmd)

	manifestCmd.Flags().StringVarP(&manifestBrowser, "browser", "b", "chrome", "browser family: chrome or firefox")
	manifestCmd.Flags().StringVar(&manifestExtensionID, "extension-id", "", "id of the palette extension")
	manifestCmd.Flags().StringVar(&manifestHostPath, "path", "", "host executable path (default: this binary)")
	manifestCmd.Flags().BoolVar(&manifestInstall, "install", false, "write the manifest for the current user")
	_ = manifestCmd.MarkFlagRequired("extension-id")
}

func runManifest(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	family, err := nativemsg.ParseBrowserFamily(manifestBrowser)
	if err != nil {
		return err
	}

	hostPath := manifestHostPath
	if hostPath == "" {
		hostPath, err = desktop.ExecutablePath()
		if err != nil {
			return err
		}
	}

	m, err := nativemsg.NewManifest(family, hostPath, manifestExtensionID)
	if err != nil {
		return err
	}

	if !manifestInstall {
		data, err := m.JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir, err := desktop.ManifestDir(home, family)
	if err != nil {
		return err
	}
	path, err := desktop.InstallManifest(app.Ctx(), dir, m)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderWritten("Native messaging manifest", path))
	return nil
}
