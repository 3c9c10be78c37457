// Package files provides file discovery and directory management for the
// report pipelines.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered file.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations rooted at a base path.
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

func (d *Discovery) resolveDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}

// findByExtensions lists regular files in dir whose lowercased name ends
// with one of the given extensions, sorted by name so repeated runs visit
// files in the same order.
func (d *Discovery) findByExtensions(dir string, exts ...string) ([]FileInfo, error) {
	fullPath := d.resolveDir(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		lower := strings.ToLower(name)
		matched := false
		for _, ext := range exts {
			if strings.HasSuffix(lower, ext) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// FindCSVFiles finds all CSV files in the specified directory.
func (d *Discovery) FindCSVFiles(dir string) ([]FileInfo, error) {
	return d.findByExtensions(dir, ".csv")
}

// FindTableFiles finds tabular exports: CSV always, XLSX when
// includeWorkbooks is set.
func (d *Discovery) FindTableFiles(dir string, includeWorkbooks bool) ([]FileInfo, error) {
	if includeWorkbooks {
		return d.findByExtensions(dir, ".csv", ".xlsx")
	}
	return d.findByExtensions(dir, ".csv")
}

// FindPDFFiles finds all PDF files in the specified directory.
func (d *Discovery) FindPDFFiles(dir string) ([]FileInfo, error) {
	return d.findByExtensions(dir, ".pdf")
}

// FindFilesByPattern finds files matching a glob pattern.
func (d *Discovery) FindFilesByPattern(dir string, pattern string) ([]FileInfo, error) {
	searchPattern := filepath.Join(d.resolveDir(dir), pattern)

	matches, err := filepath.Glob(searchPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}
	sort.Strings(matches)

	var files []FileInfo
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}

		files = append(files, FileInfo{
			Path:    match,
			Name:    filepath.Base(match),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}
