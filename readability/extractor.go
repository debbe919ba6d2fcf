// Package readability provides an Extractor that keeps only the main
// article of a page, using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/sitechat"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article title and text.
func (e *Extractor) Extract(rawHTML string) (*sitechat.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &sitechat.ExtractResult{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &sitechat.ExtractResult{
		Title: strings.TrimSpace(article.Title),
		Text:  sitechat.CollapseSpace(article.TextContent),
	}, nil
}
