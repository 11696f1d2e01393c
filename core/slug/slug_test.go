package slug

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation and padding", "  Hello, World!! ", "hello-world"},
		{"empty", "", "page"},
		{"non ascii only", "日本語", "page"},
		{"only hyphens", "---", "page"},
		{"mixed script", "Go 言語 Guide", "go-guide"},
		{"hyphen runs", "a -- b", "a-b"},
		{"tabs and newlines", "one\ttwo\nthree", "one-two-three"},
		{"digits kept", "Top 10 Tips (2024)", "top-10-tips-2024"},
		{"leading trailing hyphens", "-edge-", "edge"},
		{"underscores dropped", "snake_case_name", "snakecasename"},
		{"no-break space", "Hello\u00a0World", "hello-world"},
		{"ideographic space", "Tokyo\u3000Guide", "tokyo-guide"},
		{"em space", "A\u2003B", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, slugShape, got)
		})
	}
}

func TestMake_AlwaysWellFormed(t *testing.T) {
	inputs := []string{
		"", " ", "!!!", "ÀÉÎÕÜ", "x", "a  b", "--a--b--", "Ümlaut Über",
		"emoji 🚀 launch", "tab\tsep", "CAPS LOCK", "a/b\\c:d*e?f",
	}
	for _, in := range inputs {
		got := Make(in)
		assert.NotEmpty(t, got, "input %q", in)
		assert.Regexp(t, slugShape, got, "input %q", in)
	}
}

func TestFileBase(t *testing.T) {
	long := strings.Repeat("word ", 40)
	got := FileBase(long)
	assert.LessOrEqual(t, len(got), 80)
	assert.Regexp(t, slugShape, got)

	assert.Equal(t, "page", FileBase(""))
	assert.Equal(t, "short-title", FileBase("Short Title"))
}
