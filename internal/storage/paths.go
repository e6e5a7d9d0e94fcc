package storage

import (
	"os"
	"path/filepath"
)

const appName = ".aura"

// DefaultStoragePath returns the default storage location for AURA
// Platform-specific paths:
//   - macOS/Linux: ~/.aura
//   - Windows: %USERPROFILE%\.aura
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appName), nil
}
