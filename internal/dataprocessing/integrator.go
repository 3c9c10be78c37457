// Package dataprocessing implements the report integration pipeline:
// header detection, column classification, assay gatekeeping and merging
// of per-report tables into combined datasets.
package dataprocessing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"oncoreports/internal/config"
	"oncoreports/internal/errors"
	"oncoreports/internal/exporter"
	"oncoreports/internal/files"
	"oncoreports/internal/infrastructure"
	"oncoreports/pkg/contracts/domain"
)

// assayProcessor turns one raw file grid into a normalized table, or
// reports why the file does not belong to the assay. A non-empty skip
// reason is not an error; the file is simply excluded from the merge.
type assayProcessor func(grid [][]string, firstLine string) (Table, string)

// Integrator runs merge invocations: it scans a directory of tabular
// report exports, accepts the files belonging to one assay type, and
// persists the combined table. Gate rejections and per-file parse errors
// are logged and skipped; only an invalid request or input directory
// aborts a run.
type Integrator struct {
	validate         *validator.Validate
	writer           *exporter.CSVWriter
	manager          *files.Manager
	includeWorkbooks bool
}

// NewIntegrator creates an integrator configured for merge runs.
func NewIntegrator(cfg config.IntegrationConfig) *Integrator {
	return &Integrator{
		validate:         validator.New(),
		writer:           exporter.NewCSVWriter(),
		manager:          files.NewManager(),
		includeWorkbooks: cfg.IncludeWorkbooks,
	}
}

// MergeDNA combines DNA variant-call exports: files with 7 or 8 columns
// whose content classification yields a Classification column.
func (in *Integrator) MergeDNA(ctx context.Context, req domain.IntegrationRequest) (domain.MergeResult, error) {
	return in.run(ctx, req, func(grid [][]string, firstLine string) (Table, string) {
		t := scrubTable(TableFromGrid(grid, DetectHeader(firstLine)))
		return gateDNA(t)
	})
}

// MergeRNA combines RNA fusion-call exports: two-column files renamed
// positionally to Classification and Fusion.
func (in *Integrator) MergeRNA(ctx context.Context, req domain.IntegrationRequest) (domain.MergeResult, error) {
	return in.run(ctx, req, func(grid [][]string, firstLine string) (Table, string) {
		t := scrubTable(TableFromGrid(grid, DetectHeader(firstLine)))
		return gateRNA(t)
	})
}

// MergeCMA combines chromosomal microarray exports identified by
// vocabulary scanning. Columns keep their original names.
func (in *Integrator) MergeCMA(ctx context.Context, req domain.IntegrationRequest) (domain.MergeResult, error) {
	return in.run(ctx, req, func(grid [][]string, firstLine string) (Table, string) {
		t := scrubTable(TableFromGrid(grid, DetectHeader(firstLine)))
		return gateCMAKeyword(t)
	})
}

// MergeCMAFixed combines fixed-schema microarray exports identified by a
// genomic-position integer at a fixed column index. Header presence is
// decided by the positional rule, not by content markers, and cell
// scrubbing only removes line breaks.
func (in *Integrator) MergeCMAFixed(ctx context.Context, req domain.IntegrationRequest) (domain.MergeResult, error) {
	return in.run(ctx, req, func(grid [][]string, _ string) (Table, string) {
		t, reason := gateCMAFixed(grid)
		if reason != "" {
			return Table{}, reason
		}
		return stripNewlines(t), ""
	})
}

func (in *Integrator) run(ctx context.Context, req domain.IntegrationRequest, process assayProcessor) (domain.MergeResult, error) {
	logger := infrastructure.LoggerWithContext(ctx)

	if err := in.validate.Struct(req); err != nil {
		return domain.MergeResult{}, errors.Config("validate request", err)
	}

	info, err := os.Stat(req.InputDir)
	if err != nil {
		return domain.MergeResult{}, errors.Config("stat input directory", err)
	}
	if !info.IsDir() {
		return domain.MergeResult{}, errors.Config("stat input directory",
			fmt.Errorf("%s is not a directory", req.InputDir))
	}

	outputName := files.EnsureCSVName(req.OutputFile)
	outputPath := filepath.Join(req.OutputDir, outputName)

	discovery := files.NewDiscovery(req.InputDir)
	candidates, err := discovery.FindTableFiles(".", in.includeWorkbooks)
	if err != nil {
		return domain.MergeResult{}, errors.Config("scan input directory", err)
	}

	logger.Info("Starting merge run",
		"table_type", req.TableType,
		"input_dir", req.InputDir,
		"output_path", outputPath,
		"candidate_count", len(candidates))

	batch := NewBatch()
	for _, file := range candidates {
		grid, firstLine, err := ReadGrid(file.Path)
		if err != nil {
			logger.Warn("Skipping unreadable file",
				"file", file.Name,
				"error", errors.Parse("read table file", err).Error())
			continue
		}

		table, reason := process(grid, firstLine)
		if reason != "" {
			logger.Info("Skipping file",
				"file", file.Name,
				"code", string(errors.CodeGate),
				"reason", reason)
			continue
		}

		// duplicate labels can survive gates that never rename (the
		// keyword microarray path); keep-first holds on every path
		table = dedupeColumns(table)
		batch.Add(withProvenance(table, req.TableType, file.Name))
		logger.Debug("Accepted file",
			"file", file.Name,
			"row_count", len(table.Rows))
	}

	if batch.SourceCount() == 0 {
		logger.Warn("No matching files found",
			"table_type", req.TableType,
			"input_dir", req.InputDir)
		return domain.MergeResult{}, nil
	}

	result := batch.Result()
	if err := in.writer.WriteCSV(outputPath, exporter.WriteOptions{
		Headers: result.Columns,
		Records: result.Rows,
	}); err != nil {
		logger.Error("Failed to persist merge result",
			"output_path", outputPath,
			"error", errors.Persist("write merge result", err).Error())
		return domain.MergeResult{}, nil
	}
	result.OutputPath = outputPath

	logger.Info("Merge run complete",
		"table_type", req.TableType,
		"source_count", result.SourceCount,
		"row_count", len(result.Rows),
		"output_path", outputPath)
	return result, nil
}
