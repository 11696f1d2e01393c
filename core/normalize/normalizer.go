// Package normalize implements the Normalizer interface.
// It converts the extracted main content into Markdown, the format every
// renderer consumes.
package normalize

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
)

// strippedSelectors are removed before conversion; they carry no readable text.
var strippedSelectors = []string{"script", "style"}

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct {
	conv *converter.Converter
}

// New creates a MarkdownNormalizer with ATX headings and table support.
func New() *MarkdownNormalizer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
			),
			table.NewTablePlugin(),
		),
	)
	return &MarkdownNormalizer{conv: conv}
}

// Normalize strips scripts and styles from an HTML fragment and converts
// the rest into Markdown. Relative links are resolved against pageURL.
func (n *MarkdownNormalizer) Normalize(html, pageURL string) (string, error) {
	cleaned, err := stripElements(html)
	if err != nil {
		return "", err
	}

	var markdown string
	if domain := domainOf(pageURL); domain != "" {
		markdown, err = n.conv.ConvertString(cleaned, converter.WithDomain(domain))
	} else {
		markdown, err = n.conv.ConvertString(cleaned)
	}
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

func stripElements(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	for _, sel := range strippedSelectors {
		doc.Find(sel).Remove()
	}
	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("serializing HTML: %w", err)
	}
	return out, nil
}

// domainOf returns scheme://host for pageURL, or "" if it has no host.
func domainOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
