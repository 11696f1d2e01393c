// Package pipeline runs each URL through the stages in order:
// fetch → extract → normalize → render → write.
//
// URLs are processed one at a time. A failure is logged with its URL and
// the batch moves on to the next one.
package pipeline

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/gaurav-prasanna/pagesnap/core"
	"github.com/gaurav-prasanna/pagesnap/core/output"
	"github.com/gaurav-prasanna/pagesnap/core/slug"
)

// Progress reports the URL currently being processed.
type Progress interface {
	Start(url string)
	Stop()
}

type nopProgress struct{}

func (nopProgress) Start(string) {}
func (nopProgress) Stop()        {}

// Pipeline wires the stages together for a batch of URLs.
type Pipeline struct {
	Fetcher    core.Fetcher
	Extractor  core.Extractor
	Normalizer core.Normalizer
	Renderer   core.Renderer
	// PDF is optional; when set each page is also rendered through it.
	PDF      core.Renderer
	Writer   *output.Writer
	Logger   *log.Logger
	Progress Progress

	Options    core.FetchOptions
	ExportData bool
}

// BatchResult summarizes a Run.
type BatchResult struct {
	Processed int
	Written   int
	Failed    int
}

// Process runs one URL through every stage and returns the path of the
// Markdown document. Nothing but the screenshot is written until rendering
// has succeeded.
func (p *Pipeline) Process(ctx context.Context, pageURL string) (string, error) {
	if err := ValidateURL(pageURL); err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	// The screenshot is named after the resolved title, so with a
	// screenshot the extraction runs inside the browser session.
	opts := p.Options
	var ex *core.Extraction
	if opts.Screenshot {
		opts.ScreenshotTarget = func(title, html string) string {
			ex = p.Extractor.Extract(html, title, pageURL)
			full, rel := p.Writer.ScreenshotPath(slug.FileBase(ex.Title))
			ex.ScreenshotPath = rel
			return full
		}
	}

	result, err := p.Fetcher.Fetch(ctx, pageURL, opts)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	p.logger().Debug("fetched", "url", pageURL, "bytes", len(result.HTML), "title", result.Title)

	if ex == nil {
		ex = p.Extractor.Extract(result.HTML, result.Title, pageURL)
	}

	body, err := p.Normalizer.Normalize(ex.ContentHTML, pageURL)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}

	doc, err := p.Renderer.Render(ex, body, pageURL)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	base := slug.FileBase(ex.Title)
	path, err := p.Writer.WriteDocument(base, doc, p.Renderer.Extension())
	if err != nil {
		return "", fmt.Errorf("write: %w", err)
	}

	if p.PDF != nil {
		pdf, err := p.PDF.Render(ex, body, pageURL)
		if err != nil {
			return path, fmt.Errorf("render pdf: %w", err)
		}
		pdfPath, err := p.Writer.WriteDocument(base, pdf, p.PDF.Extension())
		if err != nil {
			return path, fmt.Errorf("write: %w", err)
		}
		p.logger().Debug("saved pdf", "path", pdfPath)
	}

	if p.ExportData {
		dataPath, err := p.Writer.WriteData(base, output.NewPageRecord(pageURL, ex, path))
		if err != nil {
			return path, fmt.Errorf("write: %w", err)
		}
		p.logger().Debug("saved data", "path", dataPath)
	}

	return path, nil
}

// Run processes urls sequentially. A failed URL is logged and counted;
// it never stops the batch. Cancelling ctx stops before the next URL.
func (p *Pipeline) Run(ctx context.Context, urls []string) BatchResult {
	var res BatchResult
	progress := p.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	for i, u := range urls {
		if ctx.Err() != nil {
			p.logger().Warn("interrupted", "remaining", len(urls)-i)
			break
		}
		res.Processed++
		p.logger().Info("processing", "url", u, "n", i+1, "of", len(urls))

		progress.Start(u)
		path, err := p.Process(ctx, u)
		progress.Stop()

		if path != "" {
			res.Written++
			p.logger().Info("saved", "path", path)
		}
		if err != nil {
			res.Failed++
			p.logger().Error("failed", "url", u, "err", err)
		}
	}
	return res
}

func (p *Pipeline) logger() *log.Logger {
	if p.Logger == nil {
		return log.Default()
	}
	return p.Logger
}
