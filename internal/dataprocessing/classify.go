package dataprocessing

import (
	"regexp"
	"strings"

	"oncoreports/pkg/contracts/domain"
)

var (
	proteinChangePattern   = regexp.MustCompile(`^p\.`)
	alleleFrequencyPattern = regexp.MustCompile(`\d+%`)
	dnaChangePattern       = regexp.MustCompile(`^c\.`)
	transcriptPattern      = regexp.MustCompile(`^NM_`)
	geneNamePattern        = regexp.MustCompile(`^[A-Z][A-Z0-9-]{0,5}$`)
	thousandsIntPattern    = regexp.MustCompile(`^\d{1,3}(,\d{3})+$`)
	exonPattern            = regexp.MustCompile(`(?i)^(\d{1,3}|intron.*)$`)
)

// classificationRule pairs a semantic role with a value predicate. A column
// is assigned a role when any of its values satisfies the predicate.
type classificationRule struct {
	role  domain.ColumnRole
	match func(value string) bool
}

// classificationRules is evaluated in strict priority order; the first rule
// with a matching value wins for the whole column.
var classificationRules = []classificationRule{
	{domain.RoleClassification, func(v string) bool {
		return strings.Contains(strings.ToLower(v), "signif")
	}},
	{domain.RoleProteinChange, proteinChangePattern.MatchString},
	{domain.RoleAlleleFrequency, alleleFrequencyPattern.MatchString},
	{domain.RoleDNAChange, dnaChangePattern.MatchString},
	{domain.RoleTranscript, transcriptPattern.MatchString},
	{domain.RoleGeneName, geneNamePattern.MatchString},
	{domain.RoleGenomicPosition, func(v string) bool {
		return strings.Contains(v, "chr") || thousandsIntPattern.MatchString(v)
	}},
	{domain.RoleExon, exonPattern.MatchString},
}

// ClassifyColumn infers the semantic role of a column from its values.
// Rules are tested in priority order and the column matches a rule when any
// single value does. Returns false when no rule matches; such columns keep
// their original names.
func ClassifyColumn(values []string) (domain.ColumnRole, bool) {
	for _, rule := range classificationRules {
		for _, value := range values {
			if rule.match(value) {
				return rule.role, true
			}
		}
	}
	return "", false
}

// classifyTable runs ClassifyColumn over every column of t and returns a
// rename mapping from column index to assigned role.
func classifyTable(t Table) map[int]domain.ColumnRole {
	roles := make(map[int]domain.ColumnRole)
	for i := range t.Columns {
		values := make([]string, 0, len(t.Rows))
		for _, row := range t.Rows {
			values = append(values, row[i])
		}
		if role, ok := ClassifyColumn(values); ok {
			roles[i] = role
		}
	}
	return roles
}
