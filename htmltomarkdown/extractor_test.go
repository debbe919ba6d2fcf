package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements sitechat.Extractor at compile time.
var _ sitechat.Extractor = (*htmltomarkdown.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><h2>Subtitle</h2>`

		result, err := htmltomarkdown.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "# Title")
		assert.Contains(t, result.Text, "## Subtitle")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`

		result, err := htmltomarkdown.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "[Example](https://example.com)")
	})

	t.Run("keeps text on a single line", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li></ul>`

		result, err := htmltomarkdown.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "- First - Second", result.Text)
	})

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Home</title></head><body><p>Welcome</p></body></html>`

		result, err := htmltomarkdown.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Home", result.Title)
		assert.Contains(t, result.Text, "Welcome")
	})

	t.Run("returns empty result for empty input", func(t *testing.T) {
		t.Parallel()

		result, err := htmltomarkdown.NewExtractor().Extract("   ")

		require.NoError(t, err)
		assert.Empty(t, result.Text)
	})
}
