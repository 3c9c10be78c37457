package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oncoreports/pkg/contracts/domain"
)

func TestClassifyColumnRoles(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   domain.ColumnRole
	}{
		{"classification", []string{"Clinically Significant", "Benign"}, domain.RoleClassification},
		{"classification uppercase", []string{"SIGNIFICANT"}, domain.RoleClassification},
		{"protein change", []string{"p.G12D", "p.R175H"}, domain.RoleProteinChange},
		{"allele frequency", []string{"85%", "12%"}, domain.RoleAlleleFrequency},
		{"allele frequency embedded", []string{"VAF 45% approx"}, domain.RoleAlleleFrequency},
		{"dna change", []string{"c.35G>A"}, domain.RoleDNAChange},
		{"transcript", []string{"NM_004985.5"}, domain.RoleTranscript},
		{"gene name", []string{"KRAS", "TP53"}, domain.RoleGeneName},
		{"gene name hyphen", []string{"NKX2-1"}, domain.RoleGeneName},
		{"genomic position chr", []string{"chr12:25398284"}, domain.RoleGenomicPosition},
		{"genomic position grouped", []string{"25,398,284"}, domain.RoleGenomicPosition},
		{"exon number", []string{"2", "14"}, domain.RoleExon},
		{"exon intron", []string{"Intron 4"}, domain.RoleExon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := ClassifyColumn(tt.values)
			require.True(t, ok)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestClassifyColumnUnclassified(t *testing.T) {
	tests := []struct {
		name   string
		values []string
	}{
		{"free text", []string{"see attached report for details"}},
		{"empty values", []string{"", ""}},
		{"no values", nil},
		{"lowercase gene", []string{"kras"}},
		{"long identifier", []string{"ABCDEFGH"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ClassifyColumn(tt.values)
			assert.False(t, ok)
		})
	}
}

// Rule order is total: a column of protein changes also satisfies the
// lower-priority exon rule via no value, but must win as Protein Change
// even when other rules could fire for other columns' shapes.
func TestClassifyColumnPriority(t *testing.T) {
	// "p.G12D" only matches the protein rule, so mix in a value that also
	// matches later rules to prove order matters.
	role, ok := ClassifyColumn([]string{"p.G12D", "KRAS", "14"})
	require.True(t, ok)
	assert.Equal(t, domain.RoleProteinChange, role)

	// significance beats everything, even a clean gene-name column
	role, ok = ClassifyColumn([]string{"KRAS", "significant"})
	require.True(t, ok)
	assert.Equal(t, domain.RoleClassification, role)

	// gene name beats exon for short uppercase tokens that match both
	role, ok = ClassifyColumn([]string{"A1"})
	require.True(t, ok)
	assert.Equal(t, domain.RoleGeneName, role)
}

// Match-if-any: a single matching value classifies the column regardless
// of how many values do not match.
func TestClassifyColumnMatchIfAny(t *testing.T) {
	role, ok := ClassifyColumn([]string{"not a change", "still nothing", "c.35G>A"})
	require.True(t, ok)
	assert.Equal(t, domain.RoleDNAChange, role)
}

func TestClassifyTable(t *testing.T) {
	table := Table{
		Columns: []string{"0", "1", "2"},
		Rows: [][]string{
			{"KRAS", "p.G12D", "free text note"},
			{"TP53", "p.R175H", "another note"},
		},
	}

	roles := classifyTable(table)
	assert.Equal(t, map[int]domain.ColumnRole{
		0: domain.RoleGeneName,
		1: domain.RoleProteinChange,
	}, roles)
}
