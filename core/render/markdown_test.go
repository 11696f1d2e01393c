package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagesnap/core"
)

func TestRender_MinimalOrdering(t *testing.T) {
	ex := &core.Extraction{
		Title:    "T",
		Headings: []core.Heading{{Level: 2, Text: "Sec"}},
	}

	out, err := NewMarkdownRenderer().Render(ex, "Body text.", "http://x")
	require.NoError(t, err)

	want := "# T\n\n" +
		"> Source: http://x\n\n" +
		"\n## Table of contents\n" +
		"  - [Sec](#sec)\n" +
		"\n" +
		"\n---\n\n" +
		"Body text."
	assert.Equal(t, want, string(out))
	assert.NotContains(t, string(out), "### Table")
	assert.NotContains(t, string(out), "![Screenshot]")
}

func TestRender_AllSections(t *testing.T) {
	ex := &core.Extraction{
		Title:       "Full",
		Description: "About it",
		Headings: []core.Heading{
			{Level: 1, Text: "Full"},
			{Level: 3, Text: "Deep Dive!"},
		},
		Tables: []core.Table{
			{Headers: []string{" A ", "B"}, Rows: [][]string{{"1", "2"}}},
			{Headers: []string{"X"}, Rows: [][]string{{"y"}}},
		},
		ScreenshotPath: "assets/full.png",
	}

	doc := Document(ex, "\n\nBody\n\n", "https://example.com")

	order := []string{
		"# Full\n",
		"> Source: https://example.com\n",
		"> Meta description: About it\n",
		"## Table of contents",
		"- [Full](#full)",
		"    - [Deep Dive!](#deep-dive)",
		"\n---\n\nBody",
		"### Table 1",
		"| A | B |",
		"### Table 2",
		"![Screenshot](assets/full.png)",
	}
	last := -1
	for _, part := range order {
		idx := strings.Index(doc, part)
		require.GreaterOrEqual(t, idx, 0, "missing %q in\n%s", part, doc)
		assert.Greater(t, idx, last, "%q out of order", part)
		last = idx
	}
	assert.True(t, strings.HasSuffix(doc, "\n---\n\n![Screenshot](assets/full.png)"))
}

func TestRender_NoHeadingsNoTOC(t *testing.T) {
	doc := Document(&core.Extraction{Title: "T"}, "b", "http://x")
	assert.Equal(t, "# T\n\n> Source: http://x\n\n\n---\n\nb", doc)
}

func TestTable(t *testing.T) {
	got := Table(core.Table{
		Headers: []string{" Name ", "Note"},
		Rows:    [][]string{{"a|b", "line\nbreak"}},
	})
	want := "| Name | Note |\n| --- | --- |\n| a\\|b | line break |"
	assert.Equal(t, want, got)
}

func TestMarkdownRenderer_Extension(t *testing.T) {
	assert.Equal(t, ".md", NewMarkdownRenderer().Extension())
}
