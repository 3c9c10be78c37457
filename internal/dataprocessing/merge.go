package dataprocessing

import (
	"oncoreports/pkg/contracts/domain"
)

// Batch accumulates normalized tables during a directory scan and merges
// them into one result. Columns keep first-appearance order across tables;
// cells absent from a contributing table stay empty.
type Batch struct {
	columns []string
	index   map[string]int
	rows    []map[string]string
	sources int
}

// NewBatch creates an empty accumulation batch for one merge run.
func NewBatch() *Batch {
	return &Batch{index: make(map[string]int)}
}

// Add appends every row of t to the batch, extending the column union with
// any columns not seen before.
func (b *Batch) Add(t Table) {
	for _, name := range t.Columns {
		if _, ok := b.index[name]; !ok {
			b.index[name] = len(b.columns)
			b.columns = append(b.columns, name)
		}
	}
	for _, row := range t.Rows {
		cells := make(map[string]string, len(t.Columns))
		for i, name := range t.Columns {
			cells[name] = row[i]
		}
		b.rows = append(b.rows, cells)
	}
	b.sources++
}

// SourceCount returns how many tables have been added.
func (b *Batch) SourceCount() int {
	return b.sources
}

// Result materializes the merged table in column-union order.
func (b *Batch) Result() domain.MergeResult {
	if b.sources == 0 {
		return domain.MergeResult{}
	}

	rows := make([][]string, len(b.rows))
	for r, cells := range b.rows {
		row := make([]string, len(b.columns))
		for i, name := range b.columns {
			row[i] = cells[name]
		}
		rows[r] = row
	}
	return domain.MergeResult{
		Columns:     append([]string(nil), b.columns...),
		Rows:        rows,
		SourceCount: b.sources,
	}
}
