package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stream", cfg.Tables.Mode)
	assert.True(t, cfg.Integration.IncludeWorkbooks)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad tables mode", func(c *Config) { c.Tables.Mode = "lattice" }},
		{"zero page distance", func(c *Config) { c.Split.MaxPageDistance = 0 }},
		{"empty start pattern", func(c *Config) { c.Split.StartPattern = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestMergeConfigsEnvWins(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Logging.Level = "debug"
	fileCfg.Logging.Output = "file"
	fileCfg.Split.MaxPageDistance = 25

	envCfg := Config{}
	envCfg.Logging.Level = "warn"

	merged := mergeConfigs(fileCfg, envCfg)
	assert.Equal(t, "warn", merged.Logging.Level, "env value must win")
	assert.Equal(t, "file", merged.Logging.Output, "file value fills the gap")
	assert.Equal(t, 25, merged.Split.MaxPageDistance)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
logging:
  level: debug
  format: text
  output: console
split:
  specimen_pattern: 'S\d{2}-\d+'
  max_page_distance: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := loadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 5, cfg.Split.MaxPageDistance)
}

func TestLoadFromFileRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [not a map"), 0644))

	_, err := loadFromFile(path)
	assert.Error(t, err)
}

func TestNewPathsLayout(t *testing.T) {
	base := t.TempDir()
	paths := NewPaths(base)

	assert.Equal(t, filepath.Join(base, "data", "inbox"), paths.InboxDir)
	assert.Equal(t, filepath.Join(base, "data", "combined", DNACombinedFile), paths.DNACombinedCSV)
	assert.Equal(t, filepath.Join(base, "data", "tables", NoTablesFile), paths.NoTablesManifest)
	assert.Equal(t, filepath.Join(base, "logs", "merge.log"), paths.GetLogPath("merge.log"))
}

func TestEnsureDirectoriesIdempotent(t *testing.T) {
	paths := NewPaths(t.TempDir())

	require.NoError(t, paths.EnsureDirectories())
	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.InboxDir, paths.ReportsDir, paths.TablesDir, paths.CombinedDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
