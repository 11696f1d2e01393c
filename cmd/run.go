package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagesnap/core"
	"github.com/gaurav-prasanna/pagesnap/core/extract"
	"github.com/gaurav-prasanna/pagesnap/core/fetch"
	"github.com/gaurav-prasanna/pagesnap/core/normalize"
	"github.com/gaurav-prasanna/pagesnap/core/output"
	"github.com/gaurav-prasanna/pagesnap/core/pipeline"
	"github.com/gaurav-prasanna/pagesnap/core/render"
)

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := newLogger(cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return run(ctx, cfg, logger, fetch.New(cfg.UserAgent, cfg.ChromePath), newSpinnerProgress(os.Stderr, cfg.Verbose))
}

// run loads the URL list, prepares the output directory and processes the
// batch. The output directory is only created once the list has loaded.
func run(ctx context.Context, cfg pipeline.Config, logger *log.Logger, fetcher core.Fetcher, progress pipeline.Progress) error {
	urls, err := pipeline.LoadURLs(cfg.URLsFile)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		logger.Warn("no URLs to process", "file", cfg.URLsFile)
		return nil
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	p := &pipeline.Pipeline{
		Fetcher:    fetcher,
		Extractor:  extract.New(),
		Normalizer: normalize.New(),
		Renderer:   render.NewMarkdownRenderer(),
		Writer:     writer,
		Logger:     logger,
		Progress:   progress,
		Options: core.FetchOptions{
			Wait:       cfg.Wait(),
			Scroll:     cfg.Scroll,
			Screenshot: cfg.Screenshot,
		},
		ExportData: cfg.ExportData,
	}
	if cfg.PDF {
		p.PDF = render.NewPDFRenderer()
	}

	res := p.Run(ctx, urls)
	logger.Info("done", "processed", res.Processed, "written", res.Written, "failed", res.Failed)

	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Warn("run interrupted")
	}
	return nil
}
