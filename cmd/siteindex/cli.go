package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/sitechat/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root        string `arg:"" optional:"" default:"../../" help:"Directory holding the HTML pages"`
	Out         string `short:"o" default:"site_index.json" env:"SITECHAT_INDEX" help:"Index file to write"`
	Extractor   string `short:"e" default:"regexp" enum:"regexp,goquery,readability,trafilatura,markdown" help:"Text extractor (${enum})"`
	Concurrency int    `short:"c" default:"4" help:"Pages extracted in parallel"`
	DB          string `env:"SITECHAT_DB" help:"Also write the index to this SQLite database"`
	Verbose     bool   `short:"v" help:"Log every page"`
}

// Run builds the index.
func (c *CLI) Run(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			deps.Logger.Info("found pages", "root", c.Root, "count", event.Total)
		case crawl.ProgressCompleted:
			deps.Logger.Debug("indexed page",
				"path", crawl.TruncatePath(event.Path, 60),
				"completed", event.Completed,
				"total", event.Total,
			)
		case crawl.ProgressFailed:
			deps.Logger.Warn("skip page", "path", event.Path, "err", event.Error)
		case crawl.ProgressFinished:
			// Summary printed after crawl completes
		}
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, c.Root, progress)
	if err != nil {
		return err
	}

	deps.Logger.Info("crawl finished",
		"indexed", result.Indexed,
		"failed", result.Failed,
		"size", crawl.FormatBytes(result.Bytes),
	)
	fmt.Fprintf(deps.Stdout, "Indexed %d pages to %s\n", result.Indexed, c.Out)
	return nil
}
