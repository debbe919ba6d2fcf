package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Docs</title>
<meta property="og:title" content="Getting Started Guide">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the documentation page.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content as text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Documentation</h1>
<p>This is important documentation content that should be extracted.</p>
<p>It continues with a second paragraph so the extractor has enough text to work with.</p>
</article>
<footer>Copyright 2024</footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "important documentation content")
		assert.NotContains(t, result.Text, "<p>")
		assert.NotContains(t, result.Text, "\n")
	})

	t.Run("returns empty result for empty input", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract("")

		require.NoError(t, err)
		assert.Empty(t, result.Text)
	})
}
