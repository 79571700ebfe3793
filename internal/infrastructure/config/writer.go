package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileHeader opens every written config file.
const fileHeader = "# palette configuration\n# Run 'palette config schema' for editor completion.\n\n"

var tableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg to path through a temporary file, so a reader
// watching the file never sees a partial write.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := MarshalOrdered(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append([]byte(fileHeader), data...)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("failed to set config file mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// MarshalOrdered encodes cfg as TOML. Keys keep struct order and tables are
// sorted by name, so the output is stable across runs.
func MarshalOrdered(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// sortTOMLSections reorders the tables of content by name. Top-level keys
// stay first and tables are separated by one blank line.
func sortTOMLSections(content string) string {
	type table struct {
		name  string
		lines []string
	}

	var (
		top    []string
		tables []table
	)
	for _, line := range strings.Split(content, "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			tables = append(tables, table{name: m[1], lines: []string{line}})
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(tables) == 0 {
			top = append(top, line)
		} else {
			last := &tables[len(tables)-1]
			last.lines = append(last.lines, line)
		}
	}
	sort.SliceStable(tables, func(i, j int) bool { return tables[i].name < tables[j].name })

	blocks := make([]string, 0, len(tables)+1)
	if len(top) > 0 {
		blocks = append(blocks, strings.Join(top, "\n"))
	}
	for _, t := range tables {
		blocks = append(blocks, strings.Join(t.lines, "\n"))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
