package domain

// IntegrationRequest describes one merge run: scan InputDir, accept files
// belonging to the assay, and persist the combined table under OutputDir.
type IntegrationRequest struct {
	InputDir   string `json:"input_dir" validate:"required"`
	OutputDir  string `json:"output_dir" validate:"required"`
	OutputFile string `json:"output_file" validate:"required"`
	TableType  string `json:"table_type" validate:"required"`
}

// MergeResult is the row-wise union of every table accepted during one
// merge run. Columns are in order of first appearance across the
// contributing tables; cells absent from a contributor are empty strings.
type MergeResult struct {
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`
	SourceCount int        `json:"source_count"`
	OutputPath  string     `json:"output_path,omitempty"`
}

// Empty reports whether the run produced no data. Callers must check this
// after a merge: persist failures are reported through logs and surface
// here rather than as errors.
func (r *MergeResult) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

// PatternMatch is one regex hit inside a PDF, tagged with its 1-based page.
type PatternMatch struct {
	Text string `json:"text"`
	Page int    `json:"page"`
}

// PageRange is a 1-based inclusive page interval inside a PDF.
type PageRange struct {
	Start int `json:"start_page"`
	End   int `json:"end_page"`
}

// ExtractedTable is one table recovered from a report PDF page.
type ExtractedTable struct {
	Page int        `json:"page"`
	Rows [][]string `json:"rows"`
}
