package readability_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*readability.Extractor)(nil)

func TestExtractor_KeepsMainArticleText(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home</a></nav>
<article><p>This is the important article paragraph text that must be kept.</p></article>
<footer><p>Footer</p></footer>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.Text, "important article paragraph text")
	assert.NotContains(t, result.Text, "<p>")
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Getting Started</title></head>
<body>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Title)
}

func TestExtractor_EmptyInput(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract("  ")

	require.NoError(t, err)
	assert.Empty(t, result.Title)
	assert.Empty(t, result.Text)
}
