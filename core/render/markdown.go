// Package render provides output renderers for the pagesnap pipeline.
// This file assembles the Markdown document. Section order is fixed:
// title, source, description, table of contents, body, tables, screenshot.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pagesnap/core"
	"github.com/gaurav-prasanna/pagesnap/core/slug"
)

const rule = "\n---\n"

// MarkdownRenderer builds the final Markdown document for a page.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render joins the document sections with newlines. body is the page's
// main content already converted to Markdown.
func (r *MarkdownRenderer) Render(ex *core.Extraction, body, pageURL string) ([]byte, error) {
	return []byte(Document(ex, body, pageURL)), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// Document returns the Markdown text for an extraction.
func Document(ex *core.Extraction, body, pageURL string) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("# %s\n", ex.Title))
	lines = append(lines, fmt.Sprintf("> Source: %s\n", pageURL))
	if ex.Description != "" {
		lines = append(lines, fmt.Sprintf("> Meta description: %s\n", ex.Description))
	}

	if len(ex.Headings) > 0 {
		lines = append(lines, "\n## Table of contents")
		for _, h := range ex.Headings {
			indent := strings.Repeat("  ", h.Level-1)
			lines = append(lines, fmt.Sprintf("%s- [%s](#%s)", indent, h.Text, slug.Make(h.Text)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, rule)
	lines = append(lines, strings.TrimSpace(body))

	for i, t := range ex.Tables {
		lines = append(lines, fmt.Sprintf("%s\n### Table %d\n", rule, i+1))
		lines = append(lines, Table(t))
	}

	if ex.ScreenshotPath != "" {
		lines = append(lines, fmt.Sprintf("%s\n![Screenshot](%s)", rule, ex.ScreenshotPath))
	}

	return strings.Join(lines, "\n")
}
