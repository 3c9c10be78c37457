package dataprocessing

import (
	"strings"

	"oncoreports/pkg/contracts/domain"
)

// scrubCell collapses all internal whitespace, including line breaks from
// multi-line PDF cells, to single spaces.
func scrubCell(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// scrubTable applies scrubCell to every data cell. Column labels are left
// untouched.
func scrubTable(t Table) Table {
	for _, row := range t.Rows {
		for i, cell := range row {
			row[i] = scrubCell(cell)
		}
	}
	return t
}

// stripNewlines replaces line breaks in data cells with spaces but preserves
// other internal whitespace. Used by the fixed-schema microarray path, where
// cells like gene comment lists keep their original spacing.
func stripNewlines(t Table) Table {
	replacer := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	for _, row := range t.Rows {
		for i, cell := range row {
			row[i] = replacer.Replace(cell)
		}
	}
	return t
}

// renameColumns applies a role mapping to column labels by position.
// Unmapped columns keep their original names.
func renameColumns(t Table, roles map[int]domain.ColumnRole) Table {
	columns := make([]string, len(t.Columns))
	for i, name := range t.Columns {
		if role, ok := roles[i]; ok {
			columns[i] = string(role)
		} else {
			columns[i] = name
		}
	}
	t.Columns = columns
	return t
}

// dedupeColumns drops columns whose name already appeared further left,
// keeping the first occurrence positionally.
func dedupeColumns(t Table) Table {
	seen := make(map[string]bool, len(t.Columns))
	keep := make([]int, 0, len(t.Columns))
	for i, name := range t.Columns {
		if seen[name] {
			continue
		}
		seen[name] = true
		keep = append(keep, i)
	}
	if len(keep) == len(t.Columns) {
		return t
	}

	columns := make([]string, len(keep))
	for j, i := range keep {
		columns[j] = t.Columns[i]
	}
	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		kept := make([]string, len(keep))
		for j, i := range keep {
			kept[j] = row[i]
		}
		rows[r] = kept
	}
	return Table{Columns: columns, Rows: rows}
}

// withProvenance appends the table_type and report_name columns with
// per-file constant values.
func withProvenance(t Table, tableType, reportName string) Table {
	t.Columns = append(t.Columns, domain.ProvenanceTableType, domain.ProvenanceReportName)
	for i, row := range t.Rows {
		t.Rows[i] = append(row, tableType, reportName)
	}
	return t
}
