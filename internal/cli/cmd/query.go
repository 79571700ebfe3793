package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/palette/internal/cli"
	"github.com/bnema/palette/internal/cli/styles"
	"github.com/bnema/palette/internal/domain/entity"
)

// queryWidth is the row width used for plain output.
const queryWidth = 100

var (
	queryJSON bool
	queryMax  int
)

var queryCmd = &cobra.Command{
	Use:   "query [text...]",
	Short: "Run one palette query and print the grouped results",
	Long: `Run a single aggregation cycle against the local profile and print it.

Without text the empty-query view is shown (recent history, all commands).

Examples:
  palette query rust          # Grouped results for "rust"
  palette query --json go     # Machine-readable output
  palette query -n 3 docs     # At most 3 rows per group`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output as JSON")
	queryCmd.Flags().IntVarP(&queryMax, "max", "n", 0, "maximum rows per group (default from config)")
}

// queryGroup is the JSON shape of one printed group.
type queryGroup struct {
	Group   entity.GroupKey     `json:"group"`
	Heading string              `json:"heading"`
	Items   []entity.ResultItem `json:"items"`
}

// queryOutput is the JSON shape of a query result.
type queryOutput struct {
	Query  string       `json:"query"`
	Groups []queryGroup `json:"groups"`
}

func runQuery(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := app.Ctx()
	session := cli.NewPaletteSession(app.Config, app.OfflineBrowser())
	defer session.Close()

	text := strings.Join(args, " ")
	result, err := session.Aggregator.Collect(ctx, text)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	maxRows := queryMax
	if maxRows <= 0 {
		maxRows = app.Config.TUI.MaxRowsPerGroup
	}
	groups := styles.VisibleGroups(result.Groups(), maxRows)

	if queryJSON {
		return writeQueryJSON(os.Stdout, text, groups)
	}

	renderer := styles.NewPaletteRenderer(app.Theme)
	if len(groups) == 0 {
		fmt.Println(renderer.RenderEmpty(text))
		return nil
	}
	fmt.Println(renderer.RenderGroups(groups, -1, queryWidth))
	return nil
}

func writeQueryJSON(w io.Writer, text string, groups []entity.Group) error {
	out := queryOutput{Query: text, Groups: make([]queryGroup, 0, len(groups))}
	for _, g := range groups {
		out.Groups = append(out.Groups, queryGroup{Group: g.Key, Heading: g.Heading, Items: g.Items})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
