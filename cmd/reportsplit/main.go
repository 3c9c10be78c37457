// Command reportsplit cuts bulk pathology scan PDFs into one file per
// laboratory report, named after the specimen identifier inside each.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"oncoreports/internal/config"
	"oncoreports/internal/exporter"
	"oncoreports/internal/files"
	"oncoreports/internal/infrastructure"
	"oncoreports/internal/reportsplit"
)

func main() {
	inDir := flag.String("in", "", "input directory with bulk scan PDFs (defaults to data/inbox relative to executable)")
	outDir := flag.String("out", "", "output directory for per-report PDFs (defaults to data/reports relative to executable)")
	listOnly := flag.Bool("list", false, "only list specimen identifiers per PDF, do not split")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inDir == "" {
		*inDir = paths.InboxDir
	}
	if *outDir == "" {
		*outDir = paths.ReportsDir
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
		cfg.Logging.FilePath = paths.GetLogPath("reportsplit.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	splitter, err := reportsplit.NewSplitter(cfg.Split)
	if err != nil {
		logger.Error("Invalid split configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger.Info("Starting report splitting",
		slog.String("input_dir", *inDir),
		slog.String("output_dir", *outDir),
		slog.Bool("list_only", *listOnly))

	discovery := files.NewDiscovery(*inDir)
	pdfs, err := discovery.FindPDFFiles(".")
	if err != nil {
		logger.Error("Failed to scan input directory", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(pdfs) == 0 {
		logger.Warn("No PDFs found", slog.String("input_dir", *inDir))
		return
	}

	writer := exporter.NewCSVWriter()
	total := 0
	for _, pdf := range pdfs {
		if *listOnly {
			matches, err := splitter.FindSpecimens(ctx, pdf.Path)
			if err != nil {
				logger.Warn("Skipping unreadable PDF",
					slog.String("file", pdf.Name),
					slog.String("error", err.Error()))
				continue
			}

			unique := make(map[string]bool)
			records := make([][]string, 0, len(matches))
			for _, m := range matches {
				unique[m.Text] = true
				records = append(records, []string{m.Text, strconv.Itoa(m.Page)})
			}

			stem := strings.TrimSuffix(pdf.Name, filepath.Ext(pdf.Name))
			auditPath := filepath.Join(*outDir, stem+"_specimens.csv")
			if err := writer.WriteCSV(auditPath, exporter.WriteOptions{
				Headers: []string{"Specimen", "Page"},
				Records: records,
			}); err != nil {
				logger.Error("Failed to write specimen table",
					slog.String("output_path", auditPath),
					slog.String("error", err.Error()))
				continue
			}
			logger.Info("Wrote specimen table",
				slog.String("file", pdf.Name),
				slog.String("output_path", auditPath),
				slog.Int("match_count", len(matches)),
				slog.Int("unique_count", len(unique)))
			continue
		}

		written, err := splitter.SplitReports(ctx, pdf.Path, *outDir)
		if err != nil {
			logger.Warn("Skipping unreadable PDF",
				slog.String("file", pdf.Name),
				slog.String("error", err.Error()))
			continue
		}
		total += len(written)
	}

	if !*listOnly {
		logger.Info("Report splitting complete",
			slog.Int("pdf_count", len(pdfs)),
			slog.Int("report_count", total))
	}
}
