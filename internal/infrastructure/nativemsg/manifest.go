package nativemsg

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// HostName is the native messaging host identifier.
const HostName = "com.bnema.palette"

const hostDescription = "palette command palette host"

// BrowserFamily selects the manifest flavour.
type BrowserFamily string

const (
	FamilyChromium BrowserFamily = "chrome"
	FamilyFirefox  BrowserFamily = "firefox"
)

// ParseBrowserFamily accepts chromium-based browser names as "chrome".
func ParseBrowserFamily(s string) (BrowserFamily, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chrome", "chromium", "brave", "edge", "vivaldi":
		return FamilyChromium, nil
	case "firefox", "librewolf", "zen":
		return FamilyFirefox, nil
	default:
		return "", fmt.Errorf("unsupported browser %q (expected chrome or firefox)", s)
	}
}

// Manifest is the native messaging host manifest.
type Manifest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Path              string   `json:"path"`
	Type              string   `json:"type"`
	AllowedOrigins    []string `json:"allowed_origins,omitempty"`
	AllowedExtensions []string `json:"allowed_extensions,omitempty"`
}

// NewManifest builds the manifest for family. execPath must be absolute.
func NewManifest(family BrowserFamily, execPath, extensionID string) (*Manifest, error) {
	if !filepath.IsAbs(execPath) {
		return nil, fmt.Errorf("host path must be absolute: %s", execPath)
	}
	if extensionID == "" {
		return nil, fmt.Errorf("extension id cannot be empty")
	}

	m := &Manifest{Name: HostName, Description: hostDescription, Path: execPath, Type: "stdio"}
	switch family {
	case FamilyChromium:
		id := strings.TrimSuffix(strings.TrimPrefix(extensionID, "chrome-extension://"), "/")
		m.AllowedOrigins = []string{"chrome-extension://" + id + "/"}
	case FamilyFirefox:
		m.AllowedExtensions = []string{extensionID}
	default:
		return nil, fmt.Errorf("unsupported browser family %q", family)
	}
	return m, nil
}

// JSON renders the manifest indented.
func (m *Manifest) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return append(data, '\n'), nil
}
