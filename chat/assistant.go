// Package chat implements the website assistant: it validates attached
// images, searches the page index when a message asks for pages, and
// assembles the templated answer.
package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/sitechat"
)

// Answer templates.
const (
	Greeting = `Hi! Write me something - I can also search the website (e.g. "Where can I find the documentation?").`

	MatchesSuffix = "\n\nI found matching pages:"

	SearchHint = "\n\nTip: Ask e.g. \"Where can I find the documentation?\" or \"Login page?\" and I will search the website."

	ImageReceived   = " (image received)"
	ImageUnreadable = " (image could not be read)"
)

// Ensure Assistant implements sitechat.Assistant at compile time.
var _ sitechat.Assistant = (*Assistant)(nil)

// Assistant answers chat messages from a page index.
type Assistant struct {
	index  sitechat.IndexReader
	images sitechat.ImageValidator
	topK   int
	logger *slog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithTopK sets the maximum number of pages returned per message.
// Defaults to sitechat.DefaultTopK.
func WithTopK(k int) Option {
	return func(a *Assistant) {
		a.topK = k
	}
}

// WithLogger sets the logger used to report a degraded index.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) {
		a.logger = logger
	}
}

// NewAssistant creates an Assistant reading from index and validating
// attachments with images.
func NewAssistant(index sitechat.IndexReader, images sitechat.ImageValidator, opts ...Option) *Assistant {
	a := &Assistant{
		index:  index,
		images: images,
		topK:   sitechat.DefaultTopK,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Chat answers req. It never fails because of the index or the image: an
// unreadable index counts as empty and an unreadable image only changes
// the note in the answer.
func (a *Assistant) Chat(ctx context.Context, req *sitechat.ChatRequest) (*sitechat.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	note := ""
	if req.Image != nil {
		note = ImageReceived
		if err := a.images.Validate(req.Image.Data); err != nil {
			note = ImageUnreadable
		}
	}

	docs, err := a.index.ReadIndex(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.logger.Warn("index unavailable, answering without pages", "err", err)
		docs = nil
	}

	refs := []sitechat.DocRef{}
	if sitechat.HasTrigger(req.Text) {
		refs = sitechat.Search(req.Text, docs, a.topK)
	}

	return &sitechat.ChatResponse{
		Answer:  buildAnswer(req.Text, note, len(refs) > 0, len(docs) > 0),
		Issues:  []string{},
		DocRefs: refs,
	}, nil
}

// buildAnswer assembles the reply text.
func buildAnswer(text, note string, hasMatches, hasDocs bool) string {
	if text == "" {
		return Greeting
	}

	answer := fmt.Sprintf("You wrote: \u201c%s\u201d%s.", text, note)
	switch {
	case hasMatches:
		answer += MatchesSuffix
	case hasDocs:
		answer += SearchHint
	}
	return answer
}
