// Package crawl provides indexing orchestration. It walks a directory of
// HTML pages, extracts each page's title and text, and writes the resulting
// documents to one or more indexes.
package crawl

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/fs"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages extracted in parallel when
// Crawler.Concurrency is not set.
const DefaultConcurrency = 4

// Crawler builds an index from a directory of HTML pages.
type Crawler struct {
	Extractor   sitechat.Extractor
	Indexes     []sitechat.IndexWriter
	Concurrency int
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Indexed int
	Failed  int
	Bytes   int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
// It may be called from multiple goroutines at once.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single page.
type crawlResult struct {
	doc   *sitechat.Document
	bytes int
	err   error
}

// Crawl indexes every HTML page under root and writes the documents to all
// configured indexes, replacing their previous contents. A page that cannot
// be read or extracted is reported through progress and left out; it never
// aborts the crawl. Documents keep the lexical order of their paths.
func (c *Crawler) Crawl(ctx context.Context, root string, progress ProgressFunc) (*Result, error) {
	paths, err := fs.FindHTMLFiles(root)
	if err != nil {
		return nil, fmt.Errorf("discover pages: %w", err)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(paths)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	// Each worker writes only its own slot, so output order matches walk
	// order whatever the concurrency.
	results := make([]crawlResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = c.processPage(root, p)

			if progress != nil {
				event := ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Add(1)),
					Total:     total,
					Path:      p,
					Error:     results[i].err,
				}
				if results[i].err != nil {
					event.Type = ProgressFailed
				}
				progress(event)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{}
	docs := make([]*sitechat.Document, 0, total)
	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}
		docs = append(docs, r.doc)
		result.Indexed++
		result.Bytes += r.bytes
	}

	for _, idx := range c.Indexes {
		if err := idx.WriteIndex(ctx, docs); err != nil {
			return nil, fmt.Errorf("write index: %w", err)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processPage reads and extracts the page at relPath under root.
func (c *Crawler) processPage(root, relPath string) crawlResult {
	html, err := fs.ReadText(filepath.Join(root, filepath.FromSlash(relPath)))
	if err != nil {
		return crawlResult{err: fmt.Errorf("read: %w", err)}
	}

	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		return crawlResult{err: fmt.Errorf("extract: %w", err)}
	}

	title := extracted.Title
	if title == "" {
		title = BaseTitle(relPath)
	}

	return crawlResult{
		doc: &sitechat.Document{
			Title:  title,
			Path:   relPath,
			Anchor: "",
			Text:   extracted.Text,
		},
		bytes: len(html),
	}
}

// BaseTitle returns the file name of p without its extension, the title
// used for pages that declare none.
func BaseTitle(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
