// Package extract implements the Extractor interface.
// It recovers the pieces of a rendered page that end up in the document:
//  1. Title, resolved from the browser, readability, then the URL
//  2. Meta description and the heading outline
//  3. The main readable content, falling back to <body>
//  4. Any HTML tables
//
// Nothing in here fails the pipeline; every problem degrades to a fallback.
package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/pagesnap/core"
	"github.com/gaurav-prasanna/pagesnap/core/slug"
)

// descriptionSelectors are checked in order for a meta description.
var descriptionSelectors = []string{
	`meta[name="description"]`,
	`meta[property="og:description"]`,
}

const headingSelector = "h1, h2, h3, h4, h5, h6"

// HTMLExtractor builds a core.Extraction from rendered HTML.
type HTMLExtractor struct {
	readability core.Readability
}

// New creates an HTMLExtractor backed by go-readability.
func New() *HTMLExtractor {
	return &HTMLExtractor{readability: ReadabilityExtractor{}}
}

// NewWithReadability creates an HTMLExtractor using r for main content.
func NewWithReadability(r core.Readability) *HTMLExtractor {
	return &HTMLExtractor{readability: r}
}

// Extract parses rawHTML and returns the extraction. It always returns a
// non-nil result with a non-empty title and some content HTML.
func (e *HTMLExtractor) Extract(rawHTML, fetchedTitle, pageURL string) *core.Extraction {
	ex := &core.Extraction{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err == nil {
		ex.Description = metaDescription(doc)
		ex.Headings = collectHeadings(doc)
		ex.Tables = ParseTables(doc)
	}

	title := strings.TrimSpace(fetchedTitle)

	content, articleTitle, err := e.readability.Readable(rawHTML, pageURL)
	if err != nil {
		content = fallbackContent(doc, rawHTML)
	} else if title == "" {
		title = strings.TrimSpace(articleTitle)
	}
	ex.ContentHTML = content

	if title == "" {
		title = urlTitle(pageURL)
	}
	ex.Title = title

	return ex
}

// metaDescription returns the first non-empty description meta content.
func metaDescription(doc *goquery.Document) string {
	for _, sel := range descriptionSelectors {
		var found string
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			found = strings.TrimSpace(s.AttrOr("content", ""))
			return found == ""
		})
		if found != "" {
			return found
		}
	}
	return ""
}

// collectHeadings returns h1–h6 in document order with normalized text.
func collectHeadings(doc *goquery.Document) []core.Heading {
	var headings []core.Heading
	doc.Find(headingSelector).Each(func(_ int, s *goquery.Selection) {
		text := joinedText(s)
		if text == "" {
			return
		}
		name := goquery.NodeName(s)
		headings = append(headings, core.Heading{
			Level: int(name[1] - '0'),
			Text:  text,
		})
	})
	return headings
}

// joinedText joins the trimmed text nodes under s with single spaces, so
// "<h2>Foo<b>bar</b></h2>" reads "Foo bar".
func joinedText(s *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// fallbackContent returns <body> as HTML, the whole document when there is
// no body, and the raw input if serialization fails.
func fallbackContent(doc *goquery.Document, rawHTML string) string {
	if doc == nil {
		return rawHTML
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		if out, err := goquery.OuterHtml(body); err == nil {
			return out
		}
		return rawHTML
	}
	out, err := doc.Html()
	if err != nil {
		return rawHTML
	}
	return out
}

// urlTitle builds a title from the host and path of pageURL.
func urlTitle(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return slug.Fallback
	}
	title := strings.TrimSpace(parsed.Host + " " + parsed.Path)
	if title == "" {
		return slug.Fallback
	}
	return title
}
