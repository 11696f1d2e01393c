package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/gaurav-prasanna/pagesnap/core/pipeline"
)

// maxSpinnerURL is the longest URL shown next to the spinner.
const maxSpinnerURL = 60

type spinnerProgress struct {
	s *spinner.Spinner
}

// newSpinnerProgress returns a spinner on w when w is a terminal, and a
// silent progress otherwise. Debug logging writes to the same stream while
// a URL is processed, so verbose runs get no spinner.
func newSpinnerProgress(w *os.File, verbose bool) pipeline.Progress {
	if verbose || (!isatty.IsTerminal(w.Fd()) && !isatty.IsCygwinTerminal(w.Fd())) {
		return silentProgress{}
	}
	return &spinnerProgress{s: spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w))}
}

func (p *spinnerProgress) Start(url string) {
	p.s.Suffix = fmt.Sprintf(" fetching %s", shortURL(url))
	p.s.Start()
}

func (p *spinnerProgress) Stop() {
	p.s.Stop()
}

type silentProgress struct{}

func (silentProgress) Start(string) {}
func (silentProgress) Stop()        {}

func shortURL(url string) string {
	r := []rune(url)
	if len(r) <= maxSpinnerURL {
		return url
	}
	return string(r[:maxSpinnerURL-3]) + "..."
}
