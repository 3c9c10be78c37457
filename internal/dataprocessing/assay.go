package dataprocessing

import (
	"fmt"
	"regexp"
	"strings"

	"oncoreports/pkg/contracts/domain"
)

// genomicIntPattern matches a plain or thousands-grouped integer, the shape
// of genomic position values in fixed-schema microarray exports.
var genomicIntPattern = regexp.MustCompile(`^\d+(,\d{3})*$`)

// cmaKeywords identify microarray content in free-form columns.
var cmaKeywords = []string{"array", "cma", "chromosome", "gain", "loss", "copy", "genomic"}

// gateDNA accepts variant-call tables with 7 or 8 columns where content
// classification found a Classification column. Accepted tables are renamed
// to role names with duplicates dropped; unclassified columns keep their
// original names.
func gateDNA(t Table) (Table, string) {
	n := len(t.Columns)
	if n <= 6 || n >= 9 {
		return Table{}, fmt.Sprintf("column count %d outside DNA range (7-8)", n)
	}

	roles := classifyTable(t)
	hasClassification := false
	for _, role := range roles {
		if role == domain.RoleClassification {
			hasClassification = true
			break
		}
	}
	if !hasClassification {
		return Table{}, "no column classified as Classification"
	}

	return dedupeColumns(renameColumns(t, roles)), ""
}

// gateRNA accepts fusion-call tables with exactly two columns. Columns are
// assigned Classification and Fusion positionally, without content
// classification.
func gateRNA(t Table) (Table, string) {
	if len(t.Columns) != 2 {
		return Table{}, fmt.Sprintf("column count %d, RNA tables have exactly 2", len(t.Columns))
	}

	t.Columns = []string{
		string(domain.RoleClassification),
		string(domain.RoleFusion),
	}
	return t, ""
}

// gateCMAKeyword accepts microarray tables with 2 to 5 columns where at
// least one column's values mention microarray vocabulary. No renaming is
// performed; columns keep their original names.
func gateCMAKeyword(t Table) (Table, string) {
	n := len(t.Columns)
	if n < 2 || n > 5 {
		return Table{}, fmt.Sprintf("column count %d outside CMA range (2-5)", n)
	}

	for i := range t.Columns {
		for _, row := range t.Rows {
			lower := strings.ToLower(row[i])
			for _, keyword := range cmaKeywords {
				if strings.Contains(lower, keyword) {
					return t, ""
				}
			}
		}
	}
	return Table{}, "no microarray keyword found in any column"
}

// gateCMAFixed is the stricter positional path for fixed-schema microarray
// exports. It works on the raw grid because header presence is decided by
// its own rule: when row 0 at the genomic-position index holds an integer,
// the file is headerless and every row is data. Accepted tables must have
// exactly ten columns and get the fixed schema assigned positionally.
func gateCMAFixed(grid [][]string) (Table, string) {
	if len(grid) == 0 {
		return Table{}, "file is empty"
	}
	if len(grid[0]) <= domain.GenomicPositionIndex {
		return Table{}, fmt.Sprintf("row width %d too narrow for positional check", len(grid[0]))
	}

	probe := grid[0][domain.GenomicPositionIndex]
	if !genomicIntPattern.MatchString(probe) {
		return Table{}, fmt.Sprintf("cell %q at row 0 column %d is not a genomic position",
			probe, domain.GenomicPositionIndex)
	}

	t := TableFromGrid(grid, false)
	if len(t.Columns) != len(domain.CMAFixedColumns) {
		return Table{}, fmt.Sprintf("column count %d, fixed schema has %d",
			len(t.Columns), len(domain.CMAFixedColumns))
	}
	t.Columns = append([]string(nil), domain.CMAFixedColumns...)

	for _, row := range t.Rows {
		if genomicIntPattern.MatchString(row[domain.GenomicPositionIndex]) {
			return t, ""
		}
	}
	return Table{}, "genomic position column holds no integer values"
}
