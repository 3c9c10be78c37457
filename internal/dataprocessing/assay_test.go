package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dnaFixture() Table {
	// 8 columns: gene, protein, VAF, DNA change, transcript, position,
	// exon, significance
	return Table{
		Columns: []string{"0", "1", "2", "3", "4", "5", "6", "7"},
		Rows: [][]string{
			{"KRAS", "p.G12D", "85%", "c.35G>A", "NM_004985.5", "chr12:25398284", "2", "Clinically Significant"},
			{"TP53", "p.R175H", "42%", "c.524G>A", "NM_000546.6", "chr17:7578406", "5", "Clinically Significant"},
		},
	}
}

func TestGateDNAAccepts(t *testing.T) {
	table, reason := gateDNA(dnaFixture())
	require.Empty(t, reason)

	assert.Equal(t, []string{
		"Gene Name",
		"Protein Change",
		"Variant Allele Frequency",
		"DNA Change",
		"DNA Change NM",
		"Genomic Position (hg19)",
		"Exon",
		"Classification",
	}, table.Columns)
	assert.Len(t, table.Rows, 2)
}

func TestGateDNAColumnCount(t *testing.T) {
	for _, n := range []int{2, 5, 6, 9, 12} {
		cols := make([]string, n)
		row := make([]string, n)
		for i := range cols {
			cols[i] = "x"
			row[i] = "Significant"
		}
		_, reason := gateDNA(Table{Columns: cols, Rows: [][]string{row}})
		assert.NotEmpty(t, reason, "column count %d must be rejected", n)
	}
}

func TestGateDNARequiresClassification(t *testing.T) {
	table := dnaFixture()
	// overwrite the significance column so nothing classifies as
	// Classification
	for _, row := range table.Rows {
		row[7] = "unknown meaning"
	}

	_, reason := gateDNA(table)
	assert.Contains(t, reason, "Classification")
}

func TestGateDNAKeepsUnclassifiedColumns(t *testing.T) {
	table := Table{
		Columns: []string{"0", "1", "2", "3", "4", "5", "6"},
		Rows: [][]string{
			{"Significant", "free text", "more text", "other", "misc", "notes", "tail"},
		},
	}

	accepted, reason := gateDNA(table)
	require.Empty(t, reason)
	assert.Equal(t, "Classification", accepted.Columns[0])
	assert.Equal(t, "1", accepted.Columns[1])
}

func TestGateDNADropsDuplicateRoles(t *testing.T) {
	table := Table{
		Columns: []string{"0", "1", "2", "3", "4", "5", "6"},
		Rows: [][]string{
			{"Significant", "p.G12D", "p.R175H", "note a", "note b", "note c", "note d"},
		},
	}

	accepted, reason := gateDNA(table)
	require.Empty(t, reason)
	// both protein columns classify identically; only the first survives
	assert.Equal(t, []string{"Classification", "Protein Change", "3", "4", "5", "6"}, accepted.Columns)
}

func TestGateRNA(t *testing.T) {
	table, reason := gateRNA(Table{
		Columns: []string{"0", "1"},
		Rows:    [][]string{{"Significant", "EWSR1-FLI1"}},
	})
	require.Empty(t, reason)
	assert.Equal(t, []string{"Classification", "Fusion"}, table.Columns)

	_, reason = gateRNA(Table{Columns: []string{"0", "1", "2"}})
	assert.NotEmpty(t, reason)

	_, reason = gateRNA(Table{Columns: []string{"0"}})
	assert.NotEmpty(t, reason)
}

func TestGateCMAKeyword(t *testing.T) {
	table := Table{
		Columns: []string{"Finding", "Detail"},
		Rows: [][]string{
			{"Chromosome 7 gain", "mosaic"},
		},
	}

	accepted, reason := gateCMAKeyword(table)
	require.Empty(t, reason)
	// keyword path never renames
	assert.Equal(t, []string{"Finding", "Detail"}, accepted.Columns)
}

func TestGateCMAKeywordRejections(t *testing.T) {
	_, reason := gateCMAKeyword(Table{
		Columns: []string{"a", "b"},
		Rows:    [][]string{{"nothing relevant", "here"}},
	})
	assert.NotEmpty(t, reason)

	_, reason = gateCMAKeyword(Table{Columns: []string{"only"}})
	assert.NotEmpty(t, reason)

	wide := Table{Columns: []string{"1", "2", "3", "4", "5", "6"}}
	_, reason = gateCMAKeyword(wide)
	assert.NotEmpty(t, reason)
}

func TestGateCMAKeywordCaseInsensitive(t *testing.T) {
	_, reason := gateCMAKeyword(Table{
		Columns: []string{"a", "b", "c"},
		Rows:    [][]string{{"", "", "Copy Number LOSS"}},
	})
	assert.Empty(t, reason)
}

func cmaFixedGrid() [][]string {
	return [][]string{
		{"3", "Gain", "7", "p22.3", "q36.3", "12,345", "159,335,973", "159,336", "980", "EGFR, MET, BRAF"},
		{"1", "Loss", "10", "q23.2", "q23.31", "89,623,195", "90,034,038", "411", "12", "PTEN"},
	}
}

func TestGateCMAFixedHeaderless(t *testing.T) {
	table, reason := gateCMAFixed(cmaFixedGrid())
	require.Empty(t, reason)

	assert.Equal(t, []string{
		"Copy State", "CNV Type", "Chromosome", "Start Band", "End Band",
		"Genomic position-Start", "Genomic position-End", "Size (kbp)",
		"Gene Count", "Relevant Cancer Genes/Comments",
	}, table.Columns)
	// no header row: both grid rows are data
	assert.Len(t, table.Rows, 2)
}

func TestGateCMAFixedRejectsNonIntegerProbe(t *testing.T) {
	grid := cmaFixedGrid()
	grid[0][5] = "Genomic position-Start"

	_, reason := gateCMAFixed(grid)
	assert.NotEmpty(t, reason)
}

func TestGateCMAFixedRequiresTenColumns(t *testing.T) {
	grid := [][]string{
		{"3", "Gain", "7", "p22.3", "q36.3", "12,345", "980"},
	}

	_, reason := gateCMAFixed(grid)
	assert.Contains(t, reason, "fixed schema")
}

func TestGateCMAFixedNarrowGrid(t *testing.T) {
	_, reason := gateCMAFixed([][]string{{"a", "b", "c"}})
	assert.NotEmpty(t, reason)

	_, reason = gateCMAFixed(nil)
	assert.NotEmpty(t, reason)
}
