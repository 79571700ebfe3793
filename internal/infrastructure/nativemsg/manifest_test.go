package nativemsg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrowserFamily(t *testing.T) {
	tests := []struct {
		in      string
		want    BrowserFamily
		wantErr bool
	}{
		{"chrome", FamilyChromium, false},
		{"Brave", FamilyChromium, false},
		{"firefox", FamilyFirefox, false},
		{"safari", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBrowserFamily(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewManifest(t *testing.T) {
	m, err := NewManifest(FamilyChromium, "/usr/bin/palette", "chrome-extension://abcdef/")
	require.NoError(t, err)
	assert.Equal(t, []string{"chrome-extension://abcdef/"}, m.AllowedOrigins)
	assert.Empty(t, m.AllowedExtensions)

	data, err := m.JSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, HostName, decoded["name"])
	assert.Equal(t, "stdio", decoded["type"])
	assert.NotContains(t, decoded, "allowed_extensions")

	ff, err := NewManifest(FamilyFirefox, "/usr/bin/palette", "palette@bnema.dev")
	require.NoError(t, err)
	assert.Equal(t, []string{"palette@bnema.dev"}, ff.AllowedExtensions)

	_, err = NewManifest(FamilyChromium, "palette", "abc")
	assert.Error(t, err)
	_, err = NewManifest(FamilyFirefox, "/usr/bin/palette", "")
	assert.Error(t, err)
}
