package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths is the single source of truth for every file-system location the
// tools touch. All paths resolve relative to the executable directory,
// never the current working directory, so the binaries behave the same
// whether launched from a shell or a scheduler.
type Paths struct {
	ExecutableDir string
	DataDir       string
	InboxDir      string
	ReportsDir    string
	TablesDir     string
	CombinedDir   string
	LogsDir       string

	// Well-known artifacts.
	DNACombinedCSV      string
	RNACombinedCSV      string
	CMACombinedCSV      string
	CMAFixedCombinedCSV string
	NoTablesManifest    string
}

// NewPaths builds the standard layout under baseDir. Exposed so tests can
// anchor the layout inside a temp directory.
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	combinedDir := filepath.Join(dataDir, "combined")
	tablesDir := filepath.Join(dataDir, "tables")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		InboxDir:      filepath.Join(dataDir, "inbox"),
		ReportsDir:    filepath.Join(dataDir, "reports"),
		TablesDir:     tablesDir,
		CombinedDir:   combinedDir,
		LogsDir:       filepath.Join(baseDir, "logs"),

		DNACombinedCSV:      filepath.Join(combinedDir, DNACombinedFile),
		RNACombinedCSV:      filepath.Join(combinedDir, RNACombinedFile),
		CMACombinedCSV:      filepath.Join(combinedDir, CMACombinedFile),
		CMAFixedCombinedCSV: filepath.Join(combinedDir, CMAFixedCombinedFile),
		NoTablesManifest:    filepath.Join(tablesDir, NoTablesFile),
	}
}

// GetPaths resolves the layout relative to the running executable.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// EnsureDirectories creates every directory in the layout. Idempotent.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.DataDir,
		p.InboxDir,
		p.ReportsDir,
		p.TablesDir,
		p.CombinedDir,
		p.LogsDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the absolute path for a named log file.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetConfigPath returns the expected location of the YAML config file.
func (p *Paths) GetConfigPath() string {
	return filepath.Join(p.ExecutableDir, ConfigFileName)
}
