package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/palette/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

// docFormat generates one kind of documentation for a command tree.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir, version string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: config.GetManDir,
		generate: func(root *cobra.Command, dir, version string) error {
			now := time.Now()
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "PALETTE",
				Section: "1",
				Source:  "palette " + version,
				Manual:  "Palette Manual",
				Date:    &now,
			}, dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate: func(root *cobra.Command, dir, _ string) error {
			return doc.GenMarkdownTree(root, dir)
		},
	},
}

var genDocsCmd = &cobra.Command{
	Use:    "gen-docs",
	Short:  "Generate man pages or markdown for the CLI",
	Hidden: true,
	Long: `Generate documentation from the command definitions.

Formats:
  man       manual pages, installed to ~/.local/share/man/man1 by default
  markdown  one .md file per command, written to ./docs by default

Run 'mandb' afterwards if 'man palette' does not find the new pages.`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man or markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	files, dir, err := generateDocs(rootCmd, genDocsFormat, genDocsOutputDir, buildInfo.Version)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d %s files to %s\n", len(files), genDocsFormat, dir)
	for _, name := range files {
		fmt.Printf("  - %s\n", name)
	}
	return nil
}

// generateDocs writes the docs of root in format to dir, or to the format's
// default directory when dir is empty. It returns the generated file names.
func generateDocs(root *cobra.Command, format, dir, version string) ([]string, string, error) {
	f, ok := docFormats[format]
	if !ok {
		return nil, "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}

	if dir == "" {
		var err error
		if dir, err = f.defaultDir(); err != nil {
			return nil, "", fmt.Errorf("failed to resolve %s directory: %w", format, err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// Keeps the output byte-identical between runs.
	root.DisableAutoGenTag = true
	if err := f.generate(root, dir, version); err != nil {
		return nil, "", fmt.Errorf("failed to generate %s docs: %w", format, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, dir, nil
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == f.ext {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, dir, nil
}
