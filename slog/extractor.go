package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitechat"
)

// Ensure LoggingExtractor implements sitechat.Extractor.
var _ sitechat.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   sitechat.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sitechat.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *sitechat.ExtractResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if result != nil {
			attrs = append(attrs, "title", result.Title, "text_len", len(result.Text))
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
