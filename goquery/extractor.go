// Package goquery provides a DOM-based Extractor built on goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitechat"
	"golang.org/x/net/html"
)

// invisibleSelector matches elements whose contents never render as text.
const invisibleSelector = "script, style, noscript, template"

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*Extractor)(nil)

// Extractor parses pages into a DOM and collects their text nodes.
// Unlike the regexp extractor, entities are decoded and malformed markup
// is repaired by the HTML5 parser before text is collected.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the document title and its visible text.
func (e *Extractor) Extract(rawHTML string) (*sitechat.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(invisibleSelector).Remove()

	// Text nodes are joined with spaces so adjacent block elements do not
	// run their words together.
	var b strings.Builder
	for _, n := range doc.Nodes {
		collectText(n, &b)
	}

	return &sitechat.ExtractResult{
		Title: title,
		Text:  sitechat.CollapseSpace(b.String()),
	}, nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
