package tables

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oncoreports/pkg/contracts/domain"
)

// fakeEngine maps PDF base names to canned extraction results.
type fakeEngine struct {
	results map[string][]domain.ExtractedTable
	errs    map[string]error
}

func (f *fakeEngine) Name() string { return "stream" }

func (f *fakeEngine) ExtractTables(pdfPath, pageSpec string) ([]domain.ExtractedTable, error) {
	name := filepath.Base(pdfPath)
	if err := f.errs[name]; err != nil {
		return nil, err
	}
	return f.results[name], nil
}

func touchPDF(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0644))
}

func readManifest(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestProcessDirectory(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	manifest := filepath.Join(outputDir, "pdfs_with_no_tables.csv")

	touchPDF(t, inputDir, "S23-1044.pdf")
	touchPDF(t, inputDir, "S23-1099.pdf")

	engine := &fakeEngine{
		results: map[string][]domain.ExtractedTable{
			"S23-1044.pdf": {
				{Page: 2, Rows: [][]string{{"Gene", "Variant"}, {"KRAS", "p.G12D"}}},
				{Page: 3, Rows: [][]string{{"Fusion", "Status"}, {"EWSR1-FLI1", "Detected"}}},
			},
		},
	}

	err := NewRunnerWithEngine(engine).ProcessDirectory(context.Background(), inputDir, outputDir, manifest)
	require.NoError(t, err)

	// one CSV per table, named by stem, engine and 1-based index
	first := readManifest(t, filepath.Join(outputDir, "S23-1044_table_stream_1.csv"))
	assert.Equal(t, [][]string{{"Gene", "Variant"}, {"KRAS", "p.G12D"}}, first)

	_, err = os.Stat(filepath.Join(outputDir, "S23-1044_table_stream_2.csv"))
	assert.NoError(t, err)

	// the report without tables lands in the manifest
	records := readManifest(t, manifest)
	assert.Equal(t, [][]string{{"PDF_Filename"}, {"S23-1099.pdf"}}, records)
}

func TestProcessDirectorySkipsFailingPDF(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	manifest := filepath.Join(outputDir, "pdfs_with_no_tables.csv")

	touchPDF(t, inputDir, "broken.pdf")
	touchPDF(t, inputDir, "good.pdf")

	engine := &fakeEngine{
		results: map[string][]domain.ExtractedTable{
			"good.pdf": {{Page: 1, Rows: [][]string{{"a", "b"}, {"1", "2"}}}},
		},
		errs: map[string]error{"broken.pdf": os.ErrInvalid},
	}

	err := NewRunnerWithEngine(engine).ProcessDirectory(context.Background(), inputDir, outputDir, manifest)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outputDir, "good_table_stream_1.csv"))
	assert.NoError(t, err)

	// unreadable PDFs are skipped, not listed as table-free
	records := readManifest(t, manifest)
	assert.Equal(t, [][]string{{"PDF_Filename"}}, records)
}

func TestProcessDirectoryEmptyInput(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	manifest := filepath.Join(outputDir, "pdfs_with_no_tables.csv")

	err := NewRunnerWithEngine(&fakeEngine{}).ProcessDirectory(context.Background(), inputDir, outputDir, manifest)
	require.NoError(t, err)

	// manifest is still written, header only
	records := readManifest(t, manifest)
	assert.Equal(t, [][]string{{"PDF_Filename"}}, records)
}

func TestProcessDirectoryMissingInput(t *testing.T) {
	outputDir := t.TempDir()
	err := NewRunnerWithEngine(&fakeEngine{}).ProcessDirectory(context.Background(),
		filepath.Join(outputDir, "missing"), outputDir,
		filepath.Join(outputDir, "manifest.csv"))
	assert.Error(t, err)
}
