package goquery_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and body text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title> Home </title></head>
<body><p>Welcome to Docs</p></body>
</html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Home", result.Title)
		assert.Contains(t, result.Text, "Welcome to Docs")
	})

	t.Run("separates adjacent block elements", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract(`<p>first</p><p>second</p>`)

		require.NoError(t, err)
		assert.Equal(t, "first second", result.Text)
	})

	t.Run("drops script style and noscript", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><style>body{}</style><script>var a = 1;</script></head>
<body><noscript>Enable JS</noscript><p>Visible</p><script>track()</script></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Visible", result.Text)
	})

	t.Run("decodes entities", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract(`<p>Fish &amp; Chips</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Fish & Chips", result.Text)
	})

	t.Run("skips comments", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract(`<p>Shown</p><!-- hidden -->`)

		require.NoError(t, err)
		assert.Equal(t, "Shown", result.Text)
	})

	t.Run("returns empty title when missing", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract(`<p>No title</p>`)

		require.NoError(t, err)
		assert.Empty(t, result.Title)
	})
}
