package domain

// AssayType identifies which report family a merge run targets.
type AssayType string

const (
	AssayDNA      AssayType = "dna"       // DNA variant call tables
	AssayRNA      AssayType = "rna"       // RNA fusion tables
	AssayCMA      AssayType = "cma"       // chromosomal microarray, keyword gate
	AssayCMAFixed AssayType = "cma-fixed" // chromosomal microarray, positional gate
)

// Valid reports whether a is one of the known assay types.
func (a AssayType) Valid() bool {
	switch a {
	case AssayDNA, AssayRNA, AssayCMA, AssayCMAFixed:
		return true
	}
	return false
}

// ColumnRole is the canonical name assigned to a physical column once its
// content has been recognized. Unrecognized columns keep their original
// labels and never carry a role.
type ColumnRole string

const (
	RoleClassification  ColumnRole = "Classification"
	RoleProteinChange   ColumnRole = "Protein Change"
	RoleAlleleFrequency ColumnRole = "Variant Allele Frequency"
	RoleDNAChange       ColumnRole = "DNA Change"
	RoleTranscript      ColumnRole = "DNA Change NM"
	RoleGeneName        ColumnRole = "Gene Name"
	RoleGenomicPosition ColumnRole = "Genomic Position (hg19)"
	RoleExon            ColumnRole = "Exon"
	RoleFusion          ColumnRole = "Fusion"
)

// Provenance column labels appended to every accepted table.
const (
	ProvenanceTableType  = "table_type"
	ProvenanceReportName = "report_name"
)

// CMAFixedColumns is the positional schema assigned by the cma-fixed path.
// Order matters; files whose column count differs are rejected.
var CMAFixedColumns = []string{
	"Copy State",
	"CNV Type",
	"Chromosome",
	"Start Band",
	"End Band",
	"Genomic position-Start",
	"Genomic position-End",
	"Size (kbp)",
	"Gene Count",
	"Relevant Cancer Genes/Comments",
}

// GenomicPositionIndex is the zero-based column the cma-fixed gate probes
// for thousands-grouped position values.
const GenomicPositionIndex = 5
