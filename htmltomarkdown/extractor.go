// Package htmltomarkdown provides an Extractor that indexes pages as
// Markdown, keeping heading markers, list bullets and link targets in the
// searchable text.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/regexp"
)

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*Extractor)(nil)

// Extractor wraps html-to-markdown to turn pages into Markdown text.
type Extractor struct {
	conv *converter.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Extractor{conv: conv}
}

// Extract returns the page title and its Markdown rendering on one line.
func (e *Extractor) Extract(html string) (*sitechat.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return &sitechat.ExtractResult{}, nil
	}

	md, err := e.conv.ConvertString(html)
	if err != nil {
		return nil, err
	}

	return &sitechat.ExtractResult{
		Title: regexp.ExtractTitle(html),
		Text:  sitechat.CollapseSpace(md),
	}, nil
}
