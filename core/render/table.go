// Package render — Markdown pipe tables.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/pagesnap/core"
)

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// Table renders t in Markdown pipe-table syntax with trimmed headers.
func Table(t core.Table) string {
	var b strings.Builder
	writeRow(&b, t.Headers, true)

	sep := make([]string, len(t.Headers))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(&b, sep, false)

	for _, row := range t.Rows {
		writeRow(&b, row, false)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeRow(b *strings.Builder, cells []string, trim bool) {
	b.WriteString("|")
	for _, c := range cells {
		if trim {
			c = strings.TrimSpace(c)
		}
		b.WriteString(" ")
		b.WriteString(cellEscaper.Replace(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
