// Package pdfutil reads report PDFs: per-page text extraction, pattern
// search, keyword-delimited page ranges and sub-document extraction.
package pdfutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	apperrors "oncoreports/internal/errors"
	"oncoreports/pkg/contracts/domain"
)

// PageTexts extracts text from every page of the PDF at path. The returned
// slice has one entry per page, in page order; pages without text content
// yield empty strings.
func PageTexts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.PDF("open document", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, apperrors.PDF("read document", fmt.Errorf("%s: %w", path, err))
	}

	pages := make([]string, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pages[pageNr-1] = extractPageText(ctx, pageNr)
	}
	return pages, nil
}

func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromStream(data)
}

// FindPatternMatches scans every page for the pattern and returns each hit
// with its 1-based page number. A page with several hits contributes one
// match per hit, in reading order.
func FindPatternMatches(path string, pattern *regexp.Regexp) ([]domain.PatternMatch, error) {
	pages, err := PageTexts(path)
	if err != nil {
		return nil, err
	}

	var matches []domain.PatternMatch
	for i, text := range pages {
		for _, hit := range pattern.FindAllString(text, -1) {
			matches = append(matches, domain.PatternMatch{Text: hit, Page: i + 1})
		}
	}
	return matches, nil
}

// FindPageRangesBetween locates page intervals delimited by a start and an
// end pattern. The scan moves forward through the pages; when a page
// matches start, the next maxPageDistance pages after it are searched for
// end. The start page itself is never a candidate for end, so a page
// mentioning both markers still scans forward. A range is emitted only
// when both bounds are found, and the scan resumes after the end page;
// otherwise it advances a single page and retries.
func FindPageRangesBetween(path string, start, end *regexp.Regexp, maxPageDistance int) ([]domain.PageRange, error) {
	pages, err := PageTexts(path)
	if err != nil {
		return nil, err
	}
	return findRanges(pages, start, end, maxPageDistance), nil
}

// RangesInPages applies the same window scan to already-extracted page
// texts, sparing a re-read when the caller holds them.
func RangesInPages(pages []string, start, end *regexp.Regexp, maxPageDistance int) []domain.PageRange {
	return findRanges(pages, start, end, maxPageDistance)
}

func findRanges(pages []string, start, end *regexp.Regexp, maxPageDistance int) []domain.PageRange {
	var ranges []domain.PageRange

	i := 0
	for i < len(pages) {
		if !start.MatchString(pages[i]) {
			i++
			continue
		}

		limit := i + maxPageDistance
		if limit > len(pages)-1 {
			limit = len(pages) - 1
		}

		found := false
		for j := i + 1; j <= limit; j++ {
			if end.MatchString(pages[j]) {
				ranges = append(ranges, domain.PageRange{Start: i + 1, End: j + 1})
				i = j + 1
				found = true
				break
			}
		}
		if !found {
			i++
		}
	}
	return ranges
}

// ExtractPageRange returns a new PDF document holding only the pages from
// start to end, 1-based inclusive.
func ExtractPageRange(path string, start, end int) ([]byte, error) {
	if start < 1 || end < start {
		return nil, apperrors.PDF("extract pages",
			fmt.Errorf("invalid page range %d-%d", start, end))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.PDF("open document", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	conf := model.NewDefaultConfiguration()
	selection := []string{fmt.Sprintf("%d-%d", start, end)}
	if err := api.Trim(f, &buf, selection, conf); err != nil {
		return nil, apperrors.PDF("extract pages",
			fmt.Errorf("%s pages %d-%d: %w", path, start, end, err))
	}
	return buf.Bytes(), nil
}
