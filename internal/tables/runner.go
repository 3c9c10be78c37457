package tables

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"oncoreports/internal/config"
	"oncoreports/internal/errors"
	"oncoreports/internal/exporter"
	"oncoreports/internal/files"
	"oncoreports/internal/infrastructure"
)

// noTablesHeader is the single column of the manifest listing PDFs where
// the engine found nothing.
var noTablesHeader = []string{"PDF_Filename"}

// Runner drives table extraction over a directory of report PDFs. Every
// recovered table lands in its own CSV named after the source report, the
// engine and the table's 1-based index; reports yielding no tables are
// listed in a manifest CSV.
type Runner struct {
	engine  Engine
	writer  *exporter.CSVWriter
	manager *files.Manager
}

// NewRunner creates a runner using the engine selected by cfg.
func NewRunner(cfg config.TablesConfig) *Runner {
	return &Runner{
		engine:  NewStreamEngine(cfg.Sensitivity),
		writer:  exporter.NewCSVWriter(),
		manager: files.NewManager(),
	}
}

// NewRunnerWithEngine creates a runner around a specific engine.
func NewRunnerWithEngine(engine Engine) *Runner {
	return &Runner{
		engine:  engine,
		writer:  exporter.NewCSVWriter(),
		manager: files.NewManager(),
	}
}

// ProcessDirectory extracts tables from every PDF in inputDir into
// outputDir and writes the no-tables manifest at manifestPath. Per-file
// failures are logged and skipped; the scan always runs to completion.
func (r *Runner) ProcessDirectory(ctx context.Context, inputDir, outputDir, manifestPath string) error {
	logger := infrastructure.LoggerWithContext(ctx)

	discovery := files.NewDiscovery(inputDir)
	pdfs, err := discovery.FindPDFFiles(".")
	if err != nil {
		return errors.Config("scan input directory", err)
	}
	if err := r.manager.EnsureDirectory(outputDir); err != nil {
		return errors.Config("create output directory", err)
	}

	logger.Info("Starting table extraction",
		"engine", r.engine.Name(),
		"input_dir", inputDir,
		"pdf_count", len(pdfs))

	var noTables [][]string
	for _, pdf := range pdfs {
		extracted, err := r.engine.ExtractTables(pdf.Path, "all")
		if err != nil {
			logger.Warn("Skipping unreadable PDF",
				"file", pdf.Name,
				"error", err.Error())
			continue
		}

		if len(extracted) == 0 {
			logger.Info("No tables found", "file", pdf.Name)
			noTables = append(noTables, []string{pdf.Name})
			continue
		}

		stem := strings.TrimSuffix(pdf.Name, filepath.Ext(pdf.Name))
		for i, table := range extracted {
			outName := fmt.Sprintf("%s_table_%s_%d.csv", stem, r.engine.Name(), i+1)
			outPath := filepath.Join(outputDir, outName)
			if err := r.writer.WriteCSV(outPath, exporter.WriteOptions{
				Headers: table.Rows[0],
				Records: table.Rows[1:],
			}); err != nil {
				logger.Error("Failed to write table",
					"file", pdf.Name,
					"output_path", outPath,
					"error", err.Error())
				continue
			}
			logger.Debug("Wrote table",
				"file", pdf.Name,
				"page", table.Page,
				"output_path", outPath)
		}
	}

	if err := r.writer.WriteCSV(manifestPath, exporter.WriteOptions{
		Headers: noTablesHeader,
		Records: noTables,
	}); err != nil {
		return errors.Persist("write no-tables manifest", err)
	}

	logger.Info("Table extraction complete",
		"pdf_count", len(pdfs),
		"no_table_count", len(noTables))
	return nil
}
