package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitechat"
)

var (
	_ sitechat.IndexReader = (*LoggingIndexReader)(nil)
	_ sitechat.IndexWriter = (*LoggingIndexWriter)(nil)
)

// LoggingIndexReader wraps an IndexReader with logging.
type LoggingIndexReader struct {
	next   sitechat.IndexReader
	logger *slog.Logger
}

// NewLoggingIndexReader creates a new LoggingIndexReader.
func NewLoggingIndexReader(next sitechat.IndexReader, logger *slog.Logger) *LoggingIndexReader {
	return &LoggingIndexReader{next: next, logger: logger}
}

// ReadIndex delegates to the wrapped reader and logs the operation. Reads
// happen on every chat message, so success is logged at debug level.
func (r *LoggingIndexReader) ReadIndex(ctx context.Context) (docs []*sitechat.Document, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		r.logger.Log(ctx, level, "read index",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadIndex(ctx)
}

// LoggingIndexWriter wraps an IndexWriter with logging.
type LoggingIndexWriter struct {
	next   sitechat.IndexWriter
	name   string
	logger *slog.Logger
}

// NewLoggingIndexWriter creates a new LoggingIndexWriter. name identifies
// the destination in log lines.
func NewLoggingIndexWriter(next sitechat.IndexWriter, name string, logger *slog.Logger) *LoggingIndexWriter {
	return &LoggingIndexWriter{next: next, name: name, logger: logger}
}

// WriteIndex delegates to the wrapped writer and logs the operation.
func (w *LoggingIndexWriter) WriteIndex(ctx context.Context, docs []*sitechat.Document) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write index",
			"dest", w.name,
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteIndex(ctx, docs)
}
