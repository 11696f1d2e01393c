package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagesnap/core"
)

// fakeReadability returns canned content or an error.
type fakeReadability struct {
	content string
	title   string
	err     error
}

func (f fakeReadability) Readable(html, pageURL string) (string, string, error) {
	return f.content, f.title, f.err
}

const samplePage = `<!DOCTYPE html>
<html><head>
<title>Ignored</title>
<meta name="description" content="  A page about things.  ">
<meta property="og:description" content="OG text">
</head><body>
<h1>Main   Title</h1>
<p>Intro</p>
<h2>First <em>section</em></h2>
<h3>   </h3>
<h2>Second</h2>
<table>
  <thead><tr><th> Name </th><th>Score</th></tr></thead>
  <tbody><tr><td>Ada</td><td>10</td></tr><tr><td>Bob</td><td>7</td></tr></tbody>
</table>
</body></html>`

func TestExtract_FullPage(t *testing.T) {
	e := NewWithReadability(fakeReadability{content: "<article>Body</article>", title: "Readable"})

	ex := e.Extract(samplePage, " Browser Title ", "https://example.com/post")

	assert.Equal(t, "Browser Title", ex.Title)
	assert.Equal(t, "A page about things.", ex.Description)
	assert.Equal(t, "<article>Body</article>", ex.ContentHTML)
	assert.Equal(t, []core.Heading{
		{Level: 1, Text: "Main Title"},
		{Level: 2, Text: "First section"},
		{Level: 2, Text: "Second"},
	}, ex.Headings)

	require.Len(t, ex.Tables, 1)
	assert.Equal(t, []string{"Name", "Score"}, ex.Tables[0].Headers)
	assert.Equal(t, [][]string{{"Ada", "10"}, {"Bob", "7"}}, ex.Tables[0].Rows)
}

func TestExtract_TitleFallbacks(t *testing.T) {
	tests := []struct {
		name         string
		fetchedTitle string
		readability  fakeReadability
		pageURL      string
		want         string
	}{
		{
			name:         "browser title wins",
			fetchedTitle: "From Browser",
			readability:  fakeReadability{content: "<p>x</p>", title: "From Readability"},
			pageURL:      "https://example.com/a",
			want:         "From Browser",
		},
		{
			name:        "readability title next",
			readability: fakeReadability{content: "<p>x</p>", title: "  From Readability "},
			pageURL:     "https://example.com/a",
			want:        "From Readability",
		},
		{
			name:        "host and path when readability fails",
			readability: fakeReadability{err: errors.New("boom"), title: "unused"},
			pageURL:     "https://example.com/docs/intro",
			want:        "example.com /docs/intro",
		},
		{
			name:        "host only",
			readability: fakeReadability{content: "<p>x</p>"},
			pageURL:     "https://example.com",
			want:        "example.com",
		},
		{
			name:        "nothing usable",
			readability: fakeReadability{err: errors.New("boom")},
			pageURL:     "",
			want:        "page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := NewWithReadability(tt.readability).Extract("<html><body><p>hi</p></body></html>", tt.fetchedTitle, tt.pageURL)
			assert.Equal(t, tt.want, ex.Title)
		})
	}
}

func TestExtract_ReadabilityFailureFallsBackToBody(t *testing.T) {
	e := NewWithReadability(fakeReadability{err: errors.New("not an article")})

	ex := e.Extract(`<html><head><title>x</title></head><body><p>Only body</p></body></html>`, "T", "https://example.com")

	assert.True(t, strings.HasPrefix(ex.ContentHTML, "<body>"), ex.ContentHTML)
	assert.Contains(t, ex.ContentHTML, "<p>Only body</p>")
	assert.NotContains(t, ex.ContentHTML, "<title>")
}

func TestExtract_MalformedInputNeverPanics(t *testing.T) {
	inputs := []string{"", "<<<>>>", "<table><tr><td>unclosed", "\x00\x01 binary"}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			ex := New().Extract(in, "", "https://example.com/x")
			assert.NotEmpty(t, ex.Title)
			assert.NotEmpty(t, ex.ContentHTML)
		}, "input %q", in)
	}
}

func TestMetaDescription(t *testing.T) {
	tests := []struct {
		name string
		head string
		want string
	}{
		{"name wins", `<meta name="description" content="N"><meta property="og:description" content="O">`, "N"},
		{"og when name missing", `<meta property="og:description" content="O">`, "O"},
		{"og when name empty", `<meta name="description" content="  "><meta property="og:description" content="O">`, "O"},
		{"absent", `<meta name="keywords" content="k">`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := NewWithReadability(fakeReadability{content: "<p>x</p>"}).
				Extract("<html><head>"+tt.head+"</head><body></body></html>", "T", "https://example.com")
			assert.Equal(t, tt.want, ex.Description)
		})
	}
}

func TestExtract_NoHeadingsNoTables(t *testing.T) {
	ex := NewWithReadability(fakeReadability{content: "<p>x</p>"}).
		Extract("<html><body><p>plain</p></body></html>", "T", "https://example.com")
	assert.Empty(t, ex.Headings)
	assert.Empty(t, ex.Tables)
	assert.Empty(t, ex.Description)
}
