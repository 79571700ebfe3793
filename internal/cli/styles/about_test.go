package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/palette/internal/cli/styles"
	"github.com/bnema/palette/internal/domain/build"
)

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(nil))

	out := r.Render(styles.AboutInfo{
		Build:      build.Info{Version: "0.4.1", Commit: "1a2b3c4d5e", BuildDate: "2026-10-01", GoVersion: "go1.25.3"},
		ConfigFile: "/home/u/.config/palette/config.toml",
		LogDir:     "/home/u/.local/state/palette/logs",
		PlacesPath: "/home/u/.mozilla/firefox/x.default/places.sqlite",
	})

	assert.Contains(t, out, "0.4.1")
	assert.Contains(t, out, "1a2b3c4")
	assert.NotContains(t, out, "1a2b3c4d5e")
	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, "places.sqlite")
	assert.Contains(t, out, build.RepoURL)
}

func TestAboutRenderer_NoPlaces(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(nil))

	out := r.Render(styles.AboutInfo{Build: build.Info{Version: "dev"}})

	assert.Contains(t, out, "no Firefox profile found")
	assert.Contains(t, out, "unknown")
}
