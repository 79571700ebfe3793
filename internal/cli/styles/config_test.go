package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/palette/internal/cli/styles"
	"github.com/bnema/palette/internal/infrastructure/config"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewConfigRenderer(theme)

	out := r.RenderConfigInfo("/tmp/palette/config.toml", false)
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "not created yet")

	out = r.RenderConfigInfo("/tmp/palette/config.toml", true)
	require.Contains(t, out, "present")
}

func TestConfigRenderer_RenderWrittenAndError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	require.Contains(t, r.RenderWritten("schema", "/tmp/palette/config.schema.json"), "config.schema.json")
	require.Contains(t, r.RenderExists("/tmp/palette/config.toml"), "--force")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
}
