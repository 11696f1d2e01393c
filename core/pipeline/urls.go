package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
)

// ErrURLListNotFound is returned by LoadURLs when the list file is missing.
var ErrURLListNotFound = errors.New("URL list not found")

// LoadURLs reads a newline-delimited URL list. Lines are trimmed, blank
// lines are skipped and only the first MaxURLs entries are kept.
func LoadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrURLListNotFound, path)
		}
		return nil, fmt.Errorf("opening URL list: %w", err)
	}
	defer f.Close()

	var urls []string
	r := bufio.NewReader(f)
	for len(urls) < MaxURLs {
		line, err := r.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			urls = append(urls, trimmed)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading URL list: %w", err)
		}
	}
	return urls, nil
}

// ValidateURL reports whether rawURL can be handed to the browser: it must
// carry a scheme, and http(s) URLs must have a host. Other schemes such as
// file:// are left for the browser to judge.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || (isHTTP(parsed.Scheme) && parsed.Host == "") {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}
	return nil
}

func isHTTP(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
