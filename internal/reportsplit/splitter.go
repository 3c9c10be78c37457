// Package reportsplit cuts bulk scan PDFs into one file per laboratory
// report, delimited by the report cover and end-of-report markers, and
// names each file after the specimen identifier found inside it.
package reportsplit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"oncoreports/internal/config"
	"oncoreports/internal/errors"
	"oncoreports/internal/files"
	"oncoreports/internal/infrastructure"
	"oncoreports/internal/pdfutil"
	"oncoreports/pkg/contracts/domain"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Splitter locates report boundaries in a bulk PDF and writes each report
// as its own document.
type Splitter struct {
	cfg      config.SplitConfig
	specimen *regexp.Regexp
	start    *regexp.Regexp
	end      *regexp.Regexp
	manager  *files.Manager

	pageTexts    func(path string) ([]string, error)
	extractRange func(path string, start, end int) ([]byte, error)
}

// NewSplitter compiles the configured patterns. An invalid pattern is a
// configuration error.
func NewSplitter(cfg config.SplitConfig) (*Splitter, error) {
	specimen, err := regexp.Compile(cfg.SpecimenPattern)
	if err != nil {
		return nil, errors.Config("compile specimen pattern", err)
	}
	start, err := regexp.Compile(cfg.StartPattern)
	if err != nil {
		return nil, errors.Config("compile start pattern", err)
	}
	end, err := regexp.Compile(cfg.EndPattern)
	if err != nil {
		return nil, errors.Config("compile end pattern", err)
	}

	return &Splitter{
		cfg:          cfg,
		specimen:     specimen,
		start:        start,
		end:          end,
		manager:      files.NewManager(),
		pageTexts:    pdfutil.PageTexts,
		extractRange: pdfutil.ExtractPageRange,
	}, nil
}

// FindSpecimens lists every specimen identifier in the PDF with the page
// it appears on.
func (s *Splitter) FindSpecimens(ctx context.Context, pdfPath string) ([]domain.PatternMatch, error) {
	pages, err := s.pageTexts(pdfPath)
	if err != nil {
		return nil, err
	}

	var matches []domain.PatternMatch
	for i, text := range pages {
		for _, hit := range s.specimen.FindAllString(text, -1) {
			matches = append(matches, domain.PatternMatch{Text: hit, Page: i + 1})
		}
	}

	infrastructure.LoggerWithContext(ctx).Info("Specimen search complete",
		"pdf", filepath.Base(pdfPath),
		"match_count", len(matches))
	return matches, nil
}

// SplitReports writes one PDF per detected report range into outputDir and
// returns the written paths. Ranges that fail to extract are logged and
// skipped; a bulk file without any complete range produces no output and
// no error.
func (s *Splitter) SplitReports(ctx context.Context, pdfPath, outputDir string) ([]string, error) {
	logger := infrastructure.LoggerWithContext(ctx)

	pages, err := s.pageTexts(pdfPath)
	if err != nil {
		return nil, err
	}

	ranges := pdfutil.RangesInPages(pages, s.start, s.end, s.cfg.MaxPageDistance)
	if len(ranges) == 0 {
		logger.Warn("No report ranges found", "pdf", filepath.Base(pdfPath))
		return nil, nil
	}

	if err := s.manager.EnsureDirectory(outputDir); err != nil {
		return nil, errors.Config("create output directory", err)
	}

	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	used := make(map[string]int)

	var written []string
	for i, rg := range ranges {
		data, err := s.extractRange(pdfPath, rg.Start, rg.End)
		if err != nil {
			logger.Warn("Skipping unextractable range",
				"pdf", filepath.Base(pdfPath),
				"start_page", rg.Start,
				"end_page", rg.End,
				"error", err.Error())
			continue
		}

		name := s.reportName(pages, rg, stem, i, used)
		outPath := filepath.Join(outputDir, name)
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			logger.Error("Failed to write report",
				"output_path", outPath,
				"error", errors.Persist("write report", err).Error())
			continue
		}

		written = append(written, outPath)
		logger.Info("Wrote report",
			"output_path", outPath,
			"start_page", rg.Start,
			"end_page", rg.End)
	}
	return written, nil
}

// reportName derives the output file name for one range: the first
// specimen identifier inside the range when there is one, otherwise the
// bulk file stem with the 1-based range index. Repeated names get a
// numeric suffix.
func (s *Splitter) reportName(pages []string, rg domain.PageRange, stem string, index int, used map[string]int) string {
	base := ""
	for p := rg.Start; p <= rg.End && p <= len(pages); p++ {
		if hit := s.specimen.FindString(pages[p-1]); hit != "" {
			base = unsafeNameChars.ReplaceAllString(hit, "_")
			break
		}
	}
	if base == "" {
		base = fmt.Sprintf("%s_report_%d", stem, index+1)
	}

	used[base]++
	if used[base] > 1 {
		base = fmt.Sprintf("%s_%d", base, used[base])
	}
	return base + ".pdf"
}
