package files

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Manager provides file management operations.
type Manager struct{}

// NewManager creates a new file manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// FileExists checks if a file exists at the given path.
func (m *Manager) FileExists(path string) bool {
	_, err := os.Stat(path)
	exists := err == nil

	slog.Debug("FileExists check",
		slog.String("path", path),
		slog.Bool("exists", exists))

	return exists
}

// EnsureDirectory creates a directory with all parent directories.
// Idempotent: an existing directory is not an error.
func (m *Manager) EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// EnsureCSVName forces a .csv suffix on an output filename.
func EnsureCSVName(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return filename
	}
	return filename + ".csv"
}
