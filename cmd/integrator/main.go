// Command integrator merges extracted report tables into one combined CSV
// per assay type.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"oncoreports/internal/config"
	"oncoreports/internal/dataprocessing"
	"oncoreports/internal/infrastructure"
	"oncoreports/pkg/contracts/domain"
)

type mergeRun struct {
	assay      string
	outputFile string
	merge      func(context.Context, domain.IntegrationRequest) (domain.MergeResult, error)
}

func selectRuns(integrator *dataprocessing.Integrator, assay string) ([]mergeRun, error) {
	all := []mergeRun{
		{string(domain.AssayDNA), config.DNACombinedFile, integrator.MergeDNA},
		{string(domain.AssayRNA), config.RNACombinedFile, integrator.MergeRNA},
		{string(domain.AssayCMA), config.CMACombinedFile, integrator.MergeCMA},
		{string(domain.AssayCMAFixed), config.CMAFixedCombinedFile, integrator.MergeCMAFixed},
	}
	if assay == "all" {
		return all, nil
	}
	for _, run := range all {
		if run.assay == assay {
			return []mergeRun{run}, nil
		}
	}
	return nil, fmt.Errorf("unknown assay %q (want dna, rna, cma, cma-fixed or all)", assay)
}

func main() {
	inDir := flag.String("in", "", "input directory with extracted table CSVs (defaults to data/tables relative to executable)")
	outDir := flag.String("out", "", "output directory for combined CSVs (defaults to data/combined relative to executable)")
	assay := flag.String("assay", "all", "assay to merge: dna, rna, cma, cma-fixed or all")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inDir == "" {
		*inDir = paths.TablesDir
	}
	if *outDir == "" {
		*outDir = paths.CombinedDir
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
		cfg.Logging.FilePath = paths.GetLogPath("integrator.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger.Info("Starting report integration",
		slog.String("input_dir", *inDir),
		slog.String("output_dir", *outDir),
		slog.String("assay", *assay))

	integrator := dataprocessing.NewIntegrator(cfg.Integration)
	runs, err := selectRuns(integrator, *assay)
	if err != nil {
		logger.Error("Invalid assay selection", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, run := range runs {
		result, err := run.merge(ctx, domain.IntegrationRequest{
			InputDir:   *inDir,
			OutputDir:  *outDir,
			OutputFile: run.outputFile,
			TableType:  run.assay,
		})
		if err != nil {
			logger.Error("Merge run failed",
				slog.String("assay", run.assay),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		if result.Empty() {
			logger.Warn("Merge produced no data", slog.String("assay", run.assay))
			continue
		}
		logger.Info("Merge complete",
			slog.String("assay", run.assay),
			slog.Int("source_count", result.SourceCount),
			slog.Int("row_count", len(result.Rows)),
			slog.String("output_path", result.OutputPath))
	}
}
