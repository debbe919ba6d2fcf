// Package regexp provides a pattern-based Extractor that strips
// markup with regular expressions instead of parsing a DOM.
package regexp

import (
	"regexp"
	"strings"

	"github.com/fwojciec/sitechat"
)

var (
	titleRe  = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	scriptRe = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
)

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*Extractor)(nil)

// Extractor extracts the title and text of a page with regular expressions.
// Entities are left as written and malformed markup is never repaired.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the first <title> contents and the tag-free page text.
func (e *Extractor) Extract(html string) (*sitechat.ExtractResult, error) {
	return &sitechat.ExtractResult{
		Title: ExtractTitle(html),
		Text:  StripHTML(html),
	}, nil
}

// ExtractTitle returns the trimmed contents of the first <title> element,
// or an empty string when there is none.
func ExtractTitle(html string) string {
	m := titleRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// StripHTML removes script and style blocks and every remaining tag, then
// collapses whitespace.
func StripHTML(html string) string {
	text := scriptRe.ReplaceAllString(html, " ")
	text = styleRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")
	return sitechat.CollapseSpace(text)
}
