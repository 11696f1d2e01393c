// Package core defines the pipeline interfaces for pagesnap.
// Each stage of the pipeline is a small interface so it can be swapped
// for a fake in tests.
package core

import (
	"context"
	"time"
)

// FetchOptions controls how a page is loaded before capture.
type FetchOptions struct {
	// Wait is an extra pause after network-idle, before capture.
	Wait time.Duration
	// Scroll enables the fixed-step auto-scroll to trigger lazy content.
	Scroll bool
	// Screenshot enables full-page screenshot capture.
	Screenshot bool
	// ScreenshotTarget maps the browser title and rendered HTML to the file
	// the PNG is written to. It is called inside the browser session, after
	// both are captured.
	ScreenshotTarget func(title, html string) string
}

// FetchResult holds the rendered HTML and browser-reported metadata of a page.
type FetchResult struct {
	URL        string
	HTML       string
	Title      string
	Screenshot []byte // PNG, nil when no screenshot was requested
}

// Heading represents a single heading found in the page.
type Heading struct {
	Level int    `yaml:"level"`
	Text  string `yaml:"text"`
}

// Table is an HTML table parsed into a header row and data rows.
type Table struct {
	Headers []string   `yaml:"headers"`
	Rows    [][]string `yaml:"rows"`
}

// Extraction is everything pulled out of one rendered page.
// It lives for the duration of a single URL's pipeline run.
type Extraction struct {
	Title       string
	Description string // empty when the page has none
	Headings    []Heading
	ContentHTML string
	Tables      []Table
	// ScreenshotPath is relative to the output directory; empty when absent.
	ScreenshotPath string
}

// Fetcher loads a URL in a browser and returns the rendered page.
type Fetcher interface {
	Fetch(ctx context.Context, url string, opts FetchOptions) (*FetchResult, error)
}

// Extractor pulls title, metadata, outline, main content and tables
// from rendered HTML. It never fails; missing pieces degrade to fallbacks.
type Extractor interface {
	Extract(html, fetchedTitle, pageURL string) *Extraction
}

// Readability isolates the main article region of a page.
type Readability interface {
	// Readable returns the article HTML fragment and the article title.
	Readable(html, pageURL string) (content, title string, err error)
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html, pageURL string) (string, error)
}

// Renderer converts an extraction and its Markdown body into a final document.
type Renderer interface {
	Render(ex *Extraction, body, pageURL string) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
