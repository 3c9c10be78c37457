// Command tableextract recovers tables from per-report PDFs, writing one
// CSV per table plus a manifest of reports where no table was found.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"oncoreports/internal/config"
	"oncoreports/internal/infrastructure"
	"oncoreports/internal/tables"
)

func main() {
	inDir := flag.String("in", "", "input directory with per-report PDFs (defaults to data/reports relative to executable)")
	outDir := flag.String("out", "", "output directory for table CSVs (defaults to data/tables relative to executable)")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inDir == "" {
		*inDir = paths.ReportsDir
	}
	if *outDir == "" {
		*outDir = paths.TablesDir
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
		cfg.Logging.FilePath = paths.GetLogPath("tableextract.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger.Info("Starting table extraction",
		slog.String("input_dir", *inDir),
		slog.String("output_dir", *outDir),
		slog.String("mode", cfg.Tables.Mode),
		slog.Int("sensitivity", cfg.Tables.Sensitivity))

	manifestPath := filepath.Join(*outDir, config.NoTablesFile)
	runner := tables.NewRunner(cfg.Tables)
	if err := runner.ProcessDirectory(ctx, *inDir, *outDir, manifestPath); err != nil {
		logger.Error("Table extraction failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
