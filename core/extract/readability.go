// Package extract — readability adapter.
package extract

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	readability "codeberg.org/readeck/go-readability"
)

// ReadabilityExtractor implements core.Readability with go-readability.
type ReadabilityExtractor struct{}

// Readable runs go-readability on the HTML and returns the article HTML
// content and extracted title.
func (ReadabilityExtractor) Readable(html, pageURL string) (content, title string, err error) {
	defer func() {
		if r := recover(); r != nil {
			content, title = "", ""
			err = fmt.Errorf("readability panicked: %v", r)
		}
	}()

	u, perr := url.Parse(pageURL)
	if perr != nil {
		u = &url.URL{}
	}

	article, err := readability.FromReader(strings.NewReader(html), u)
	if err != nil {
		return "", "", fmt.Errorf("readability extraction failed: %w", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", "", errors.New("readability extracted no content")
	}
	return article.Content, article.Title, nil
}
