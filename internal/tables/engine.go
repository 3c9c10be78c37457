// Package tables recovers tabular data from report PDFs and persists each
// recovered table as its own CSV file.
package tables

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"oncoreports/internal/pdfutil"
	"oncoreports/pkg/contracts/domain"
)

// Engine recognizes tables inside a PDF. Implementations are named so
// output files record which engine produced them.
type Engine interface {
	Name() string
	ExtractTables(pdfPath, pageSpec string) ([]domain.ExtractedTable, error)
}

// StreamEngine detects tables from the text layout of a page: lines whose
// content splits into multiple cells on wide whitespace gaps. Sensitivity
// is the minimum run of spaces treated as a cell boundary.
type StreamEngine struct {
	Sensitivity int

	sep       *regexp.Regexp
	pageTexts func(path string) ([]string, error)
}

// NewStreamEngine creates a layout-based table engine.
func NewStreamEngine(sensitivity int) *StreamEngine {
	if sensitivity < 1 {
		sensitivity = 1
	}
	return &StreamEngine{
		Sensitivity: sensitivity,
		sep:         regexp.MustCompile(fmt.Sprintf(`\t| {%d,}`, sensitivity)),
		pageTexts:   pdfutil.PageTexts,
	}
}

// Name identifies the engine in output file names.
func (e *StreamEngine) Name() string {
	return "stream"
}

// ExtractTables scans the pages selected by pageSpec ("all", "N" or "N-M")
// and returns every detected table in page order.
func (e *StreamEngine) ExtractTables(pdfPath, pageSpec string) ([]domain.ExtractedTable, error) {
	pages, err := e.pageTexts(pdfPath)
	if err != nil {
		return nil, err
	}

	first, last, err := parsePageSpec(pageSpec, len(pages))
	if err != nil {
		return nil, err
	}

	var results []domain.ExtractedTable
	for pageNr := first; pageNr <= last; pageNr++ {
		for _, rows := range e.tablesInPage(pages[pageNr-1]) {
			results = append(results, domain.ExtractedTable{Page: pageNr, Rows: rows})
		}
	}
	return results, nil
}

// tablesInPage groups consecutive multi-cell lines into tables. A group
// needs at least two rows to count; isolated multi-cell lines are layout
// noise, not tables.
func (e *StreamEngine) tablesInPage(text string) [][][]string {
	var tables [][][]string
	var current [][]string

	flush := func() {
		if len(current) >= 2 {
			tables = append(tables, padRows(current))
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		cells := e.SplitLineCells(line)
		if len(cells) >= 2 {
			current = append(current, cells)
		} else {
			flush()
		}
	}
	flush()
	return tables
}

// SplitLineCells cuts one text line into cells on tabs or runs of at least
// Sensitivity spaces. Returns nil for blank lines.
func (e *StreamEngine) SplitLineCells(line string) []string {
	var cells []string
	for _, part := range e.sep.Split(strings.TrimSpace(line), -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			cells = append(cells, part)
		}
	}
	return cells
}

func padRows(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}

// parsePageSpec resolves "all", "N" or "N-M" into a 1-based inclusive page
// interval clamped to the document length.
func parsePageSpec(spec string, pageCount int) (int, int, error) {
	if pageCount == 0 {
		return 1, 0, nil
	}
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "all") {
		return 1, pageCount, nil
	}

	first, last := 0, 0
	if start, end, found := strings.Cut(spec, "-"); found {
		var err error
		if first, err = strconv.Atoi(start); err != nil {
			return 0, 0, fmt.Errorf("invalid page spec %q", spec)
		}
		if last, err = strconv.Atoi(end); err != nil {
			return 0, 0, fmt.Errorf("invalid page spec %q", spec)
		}
	} else {
		n, err := strconv.Atoi(spec)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid page spec %q", spec)
		}
		first, last = n, n
	}

	if first < 1 || last < first {
		return 0, 0, fmt.Errorf("invalid page spec %q", spec)
	}
	if last > pageCount {
		last = pageCount
	}
	if first > pageCount {
		return 1, 0, nil
	}
	return first, last, nil
}
