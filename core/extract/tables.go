// Package extract — HTML table parsing.
package extract

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/pagesnap/core"
)

// maxColspan guards against absurd colspan values in broken markup.
const maxColspan = 100

// ParseTables parses every <table> in doc into a header row and data rows.
// Tables without any cells are skipped. Rows of nested tables belong to
// the nested table only.
func ParseTables(doc *goquery.Document) []core.Table {
	var tables []core.Table
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		if t, ok := parseTable(tbl); ok {
			tables = append(tables, t)
		}
	})
	return tables
}

func parseTable(tbl *goquery.Selection) (core.Table, bool) {
	var header []string
	var rows [][]string

	tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if !tr.Closest("table").IsSelection(tbl) {
			return
		}
		cells, allTH := rowCells(tr)
		if len(cells) == 0 {
			return
		}
		inHead := goquery.NodeName(tr.Parent()) == "thead"
		if header == nil && len(rows) == 0 && (inHead || allTH) {
			header = cells
			return
		}
		rows = append(rows, cells)
	})

	if header == nil && len(rows) == 0 {
		return core.Table{}, false
	}

	width := len(header)
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	if header == nil {
		header = make([]string, width)
		for i := range header {
			header[i] = strconv.Itoa(i)
		}
	}

	return core.Table{
		Headers: pad(trimAll(header), width),
		Rows:    padRows(rows, width),
	}, true
}

// rowCells returns the normalized cell texts of tr, expanding colspan, and
// whether every cell is a <th>.
func rowCells(tr *goquery.Selection) ([]string, bool) {
	var cells []string
	allTH := true
	tr.ChildrenFiltered("th, td").Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) != "th" {
			allTH = false
		}
		text := strings.Join(strings.Fields(c.Text()), " ")
		span, err := strconv.Atoi(strings.TrimSpace(c.AttrOr("colspan", "1")))
		if err != nil || span < 1 {
			span = 1
		}
		if span > maxColspan {
			span = maxColspan
		}
		for i := 0; i < span; i++ {
			cells = append(cells, text)
		}
	})
	return cells, allTH && len(cells) > 0
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

func pad(cells []string, width int) []string {
	for len(cells) < width {
		cells = append(cells, "")
	}
	return cells
}

func padRows(rows [][]string, width int) [][]string {
	for i := range rows {
		rows[i] = pad(rows[i], width)
	}
	return rows
}
