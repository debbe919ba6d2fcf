// Package trafilatura provides an Extractor that removes boilerplate with
// go-trafilatura and returns the main content as plain text.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content text.
func (e *Extractor) Extract(rawHTML string) (*sitechat.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &sitechat.ExtractResult{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &sitechat.ExtractResult{
		Title: strings.TrimSpace(result.Metadata.Title),
		Text:  sitechat.CollapseSpace(result.ContentText),
	}, nil
}
