// Package slug derives filesystem- and anchor-safe names from text.
package slug

import (
	"regexp"
	"strings"
)

// Fallback is returned when nothing usable survives slugification.
const Fallback = "page"

// maxFileBase caps slugs used as file names.
const maxFileBase = 80

var (
	whitespaceRun = regexp.MustCompile(`[\s\p{Z}]+`)
	disallowed    = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Make lowercases text, turns whitespace runs (Unicode spaces included)
// into hyphens, drops every character outside [a-z0-9-], collapses hyphen
// runs and trims hyphens from both ends. It returns Fallback if the result is empty.
//
//	Make("  Hello, World!! ") == "hello-world"
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = disallowed.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return Fallback
	}
	return s
}

// FileBase is Make truncated to a sane file name length.
func FileBase(text string) string {
	s := Make(text)
	if len(s) > maxFileBase {
		s = strings.TrimRight(s[:maxFileBase], "-")
	}
	if s == "" {
		return Fallback
	}
	return s
}
