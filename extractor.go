package sitechat

import "strings"

// ExtractResult holds the title and plain text extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, or empty when the page declares none.
	Title string

	// Text is the visible text with whitespace runs collapsed to single
	// spaces and surrounding whitespace trimmed.
	Text string
}

// Extractor extracts a title and plain text from an HTML page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// CollapseSpace replaces every run of whitespace in s with a single space
// and trims the result.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
