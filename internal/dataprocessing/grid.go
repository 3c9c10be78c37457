package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a parsed tabular file: column labels plus data rows. Rows are
// padded so every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// headerDataMarkers are substrings that only appear in data rows of these
// reports (clinical notation, percentages, chromosome references), never in
// column headers. Their presence in the first line means the file has no
// header row.
var headerDataMarkers = []string{"signif", "p.", "c.", "nm_", "%", "chr"}

// DetectHeader reports whether the first line of a file looks like a header
// row. It returns false when the lowercased line contains clinical data
// notation.
func DetectHeader(firstLine string) bool {
	lower := strings.ToLower(firstLine)
	for _, marker := range headerDataMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// ReadGrid parses a tabular file into a raw grid of strings, making no
// header assumption, and returns the literal first line for header
// detection. CSV and XLSX files are supported, dispatched by extension.
func ReadGrid(path string) ([][]string, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSVGrid(path)
	case ".xlsx":
		return readXLSXGrid(path)
	default:
		return nil, "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func readCSVGrid(path string) ([][]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	firstLine := rawFirstLine(data)

	reader := csv.NewReader(bytes.NewReader(data))
	grid, err := reader.ReadAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse CSV: %w", err)
	}
	return grid, firstLine, nil
}

func rawFirstLine(data []byte) string {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}
	return strings.TrimRight(string(line), "\r")
}

func readXLSXGrid(path string) ([][]string, string, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", fmt.Errorf("workbook has no sheets")
	}

	grid, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	// excelize trims trailing empty cells per row; pad to a rectangle so
	// positional rules see a consistent width.
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range grid {
		for len(row) < width {
			row = append(row, "")
		}
		grid[i] = row
	}

	firstLine := ""
	if len(grid) > 0 {
		firstLine = strings.Join(grid[0], ",")
	}
	return grid, firstLine, nil
}

// TableFromGrid builds a Table from a raw grid. When hasHeader is true,
// row 0 is promoted to column labels; otherwise every row is data and
// columns are named by their zero-based position.
func TableFromGrid(grid [][]string, hasHeader bool) Table {
	if len(grid) == 0 {
		return Table{}
	}

	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}

	var t Table
	if hasHeader {
		t.Columns = padRow(grid[0], width)
		for _, row := range grid[1:] {
			t.Rows = append(t.Rows, padRow(row, width))
		}
	} else {
		t.Columns = make([]string, width)
		for i := range t.Columns {
			t.Columns[i] = strconv.Itoa(i)
		}
		for _, row := range grid {
			t.Rows = append(t.Rows, padRow(row, width))
		}
	}
	return t
}

func padRow(row []string, width int) []string {
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
