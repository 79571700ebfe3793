package desktop

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/bnema/palette/internal/infrastructure/nativemsg"
	"github.com/bnema/palette/internal/logging"
)

const (
	appName  = "palette"
	filePerm = 0o644
	dirPerm  = 0o755
)

// ExecutablePath returns the resolved path of the running palette binary.
func ExecutablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

// ManifestDir returns the per-user native messaging hosts directory for family.
func ManifestDir(home string, family nativemsg.BrowserFamily) (string, error) {
	switch {
	case runtime.GOOS == "darwin" && family == nativemsg.FamilyChromium:
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "NativeMessagingHosts"), nil
	case runtime.GOOS == "darwin" && family == nativemsg.FamilyFirefox:
		return filepath.Join(home, "Library", "Application Support", "Mozilla", "NativeMessagingHosts"), nil
	case family == nativemsg.FamilyChromium:
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			configHome = filepath.Join(home, ".config")
		}
		return filepath.Join(configHome, "google-chrome", "NativeMessagingHosts"), nil
	case family == nativemsg.FamilyFirefox:
		return filepath.Join(home, ".mozilla", "native-messaging-hosts"), nil
	default:
		return "", fmt.Errorf("unsupported browser family %q", family)
	}
}

// InstallManifest writes m into dir and returns the written path.
func InstallManifest(ctx context.Context, dir string, m *nativemsg.Manifest) (string, error) {
	log := logging.FromContext(ctx)

	data, err := m.JSON()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create manifest directory: %w", err)
	}

	path := filepath.Join(dir, m.Name+".json")
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}

	log.Info().Str("path", path).Msg("native messaging manifest installed")
	return path, nil
}
