package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagesnap/core"
)

func TestPDFRenderer_Render(t *testing.T) {
	ex := &core.Extraction{
		Title:          "Café Report",
		Description:    "Numbers and notes",
		Headings:       []core.Heading{{Level: 1, Text: "Café Report"}, {Level: 2, Text: "Details"}},
		Tables:         []core.Table{{Headers: []string{"Item", "Cost"}, Rows: [][]string{{"Coffee", "3"}, {"a|b", ""}}}},
		ScreenshotPath: "assets/cafe-report.png",
	}
	body := "Some **bold** and `code`.\n\n- one\n  - nested\n1. first\n\n```\nfmt.Println()\n```"

	r := NewPDFRenderer()
	out, err := r.Render(ex, body, "https://example.com/cafe")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFRenderer_Extension(t *testing.T) {
	assert.Equal(t, ".pdf", NewPDFRenderer().Extension())
}

func TestCleanInlineMarkdown(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"**bold** text", "bold text"},
		{"use `go test`", "use go test"},
		{"see [docs](https://x.dev)", "see docs"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanInlineMarkdown(tt.in), tt.in)
	}
}
