// Package render — PDF renderer.
// Renders the assembled Markdown document into a PDF using gofpdf.
// Handles headings (variable font sizes), blockquotes, lists, code blocks,
// rules and pipe tables. Images are referenced by path, not embedded.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/pagesnap/core"
)

var (
	numberedItem = regexp.MustCompile(`^\d+\.\s`)
	imageLine    = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)
	tableSepRow  = regexp.MustCompile(`^\|[-:| ]+\|$`)
	boldMarks    = regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)
	italicMarks  = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCode   = regexp.MustCompile("`([^`]+)`")
	linkSyntax   = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// PDFRenderer renders a page's Markdown document as a PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render assembles the Markdown document and lays it out as PDF bytes.
func (r *PDFRenderer) Render(ex *core.Extraction, body, pageURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(ex.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate UTF-8 text before writing it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	lines := strings.Split(Document(ex, body, pageURL), "\n")
	inCodeBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		switch {
		case trimmed == "":
			pdf.Ln(3)

		case trimmed == "---":
			y := pdf.GetY() + 2
			pdf.SetDrawColor(180, 180, 180)
			pdf.Line(15, y, 195, y)
			pdf.Ln(4)

		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			renderHeading(pdf, tr(cleanInlineMarkdown(strings.TrimLeft(trimmed, "# "))), level)

		case strings.HasPrefix(trimmed, ">"):
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(strings.TrimSpace(trimmed[1:]))), "", "L", false)
			pdf.SetTextColor(0, 0, 0)

		case tableSepRow.MatchString(trimmed):
			// Header separator carries no content.

		case strings.HasPrefix(trimmed, "|"):
			renderTableRow(pdf, tr, trimmed)

		case imageLine.MatchString(trimmed):
			m := imageLine.FindStringSubmatch(trimmed)
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("[%s: %s]", m[1], m[2])), "", "L", false)

		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			indent := float64(len(line)-len(strings.TrimLeft(line, " "))) * 1.5
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetX(pdf.GetX() + indent)
			pdf.MultiCell(0, 5, tr("- "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)

		case numberedItem.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)

		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(line)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	size, ok := headingSizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// renderTableRow splits a pipe-table row into equal-width bordered cells.
func renderTableRow(pdf *gofpdf.Fpdf, tr func(string) string, row string) {
	inner := strings.TrimSuffix(strings.TrimPrefix(row, "|"), "|")
	cells := strings.Split(strings.ReplaceAll(inner, `\|`, "\x00"), "|")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	width := (pageW - left - right) / float64(len(cells))

	pdf.SetFont("Helvetica", "", 8)
	for _, c := range cells {
		text := strings.ReplaceAll(strings.TrimSpace(c), "\x00", "|")
		pdf.CellFormat(width, 6, tr(truncateCell(pdf, text, width)), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// truncateCell shortens text so it fits inside a cell of the given width.
func truncateCell(pdf *gofpdf.Fpdf, text string, width float64) string {
	const ellipsis = "..."
	if pdf.GetStringWidth(text) <= width-2 {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+ellipsis) > width-2 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = boldMarks.ReplaceAllString(text, "$1$2")
	text = italicMarks.ReplaceAllString(text, " $1 ")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = linkSyntax.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
