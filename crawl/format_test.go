package crawl_test

import (
	"testing"

	"github.com/fwojciec/sitechat/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncatePath(t *testing.T) {
	t.Parallel()

	t.Run("returns path unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "index.html", crawl.TruncatePath("index.html", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		result := crawl.TruncatePath("docs/very/long/path/to/chapter.html", 20)
		assert.Equal(t, "...h/to/chapter.html", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns empty string when maxLen is not positive", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, crawl.TruncatePath("index.html", 0))
		assert.Empty(t, crawl.TruncatePath("index.html", -1))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ind", crawl.TruncatePath("index.html", 3))
		assert.Equal(t, "a", crawl.TruncatePath("a", 2))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes int
		want  string
	}{
		{bytes: 0, want: "0 B"},
		{bytes: 512, want: "512 B"},
		{bytes: 1024, want: "1.0 KB"},
		{bytes: 1536, want: "1.5 KB"},
		{bytes: 1024 * 1024, want: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.FormatBytes(tt.bytes))
		})
	}
}
