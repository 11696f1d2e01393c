// Package output handles file naming and writing for pagesnap outputs.
// Documents land in the output directory root, screenshots in assets/,
// and optional structured exports in data/.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/pagesnap/core"
)

const (
	// AssetsDir holds screenshots.
	AssetsDir = "assets"
	// DataDir holds structured exports.
	DataDir = "data"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory and makes
// sure the directory and its assets/ and data/ subdirectories exist.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		outputDir = "out"
	}
	for _, dir := range []string{AssetsDir, DataDir} {
		if err := os.MkdirAll(filepath.Join(outputDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir}, nil
}

// ScreenshotPath reserves a unique PNG path under assets/ for base.
// It returns the full path and the path relative to the output directory.
func (w *Writer) ScreenshotPath(base string) (full, rel string) {
	full = UniquePath(filepath.Join(w.OutputDir, AssetsDir), base, ".png")
	return full, AssetsDir + "/" + filepath.Base(full)
}

// WriteDocument writes data to a unique base+ext path in the output directory
// and returns that path. Existing files are never overwritten.
func (w *Writer) WriteDocument(base string, data []byte, ext string) (string, error) {
	path := UniquePath(w.OutputDir, base, ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// PageRecord is the structured export of one page written to data/.
type PageRecord struct {
	URL         string         `yaml:"url"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description,omitempty"`
	Headings    []core.Heading `yaml:"headings,omitempty"`
	Tables      []core.Table   `yaml:"tables,omitempty"`
	Screenshot  string         `yaml:"screenshot,omitempty"`
	Document    string         `yaml:"document"`
	FetchedAt   string         `yaml:"fetched_at"` // RFC 3339, UTC
}

// NewPageRecord builds the export record for an extraction and the
// document it was written to.
func NewPageRecord(pageURL string, ex *core.Extraction, documentPath string) PageRecord {
	return PageRecord{
		URL:         pageURL,
		Title:       ex.Title,
		Description: ex.Description,
		Headings:    ex.Headings,
		Tables:      ex.Tables,
		Screenshot:  ex.ScreenshotPath,
		Document:    filepath.Base(documentPath),
		FetchedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}

// WriteData writes rec as YAML to a unique data/<base>.yaml path.
func (w *Writer) WriteData(base string, rec PageRecord) (string, error) {
	out, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshaling page record: %w", err)
	}
	path := UniquePath(filepath.Join(w.OutputDir, DataDir), base, ".yaml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
