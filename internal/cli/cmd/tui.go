package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/palette/internal/application/usecase"
	"github.com/bnema/palette/internal/cli"
	"github.com/bnema/palette/internal/cli/model"
	"github.com/bnema/palette/internal/infrastructure/clipboard"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive palette in the terminal",
	Long: `Open the palette against the local browser profile.

Rows open through the desktop URL handler. History and bookmarks are read
from a Firefox places.sqlite (auto-detected, or offline.places_path).

Keys:
  up/down, ctrl+p/ctrl+n   move the selection
  enter                    open the selection, or search the web
  ctrl+y                   copy the selected URL
  ctrl+u                   clear the query
  esc                      close`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := app.Ctx()
	updates, listener := model.NewUpdateSignal()
	session := cli.NewPaletteSession(app.Config, app.OfflineBrowser(), usecase.WithListener(listener))
	defer session.Close()

	m := model.NewPaletteModel(ctx, app.Theme, model.PaletteConfig{
		Palette:  session.Aggregator,
		Selector: session.Selection,
		Updates:  updates,
		MaxRows:  app.Config.TUI.MaxRowsPerGroup,
		Bangs:    session.Bangs,
		Copier:   usecase.NewCopyURLUseCase(clipboard.New()),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run palette: %w", err)
	}

	final, ok := finalModel.(model.PaletteModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}

	outcome := final.Outcome()
	switch {
	case outcome.Err != nil:
		return outcome.Err
	case outcome.Submitted != nil:
		fmt.Println(app.Theme.Subtle.Render("Searching: " + outcome.Submitted.URL))
	case outcome.Activated != nil && outcome.Activated.Command != "":
		fmt.Println(app.Theme.Subtle.Render("Ran: " + string(outcome.Activated.Command)))
	}
	return nil
}
