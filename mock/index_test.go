package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where IndexWriter is expected
	var _ sitechat.IndexWriter = &mock.IndexWriter{}
}

func TestIndexWriter_WriteIndex(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteIndexFn", func(t *testing.T) {
		t.Parallel()

		var calledWith []*sitechat.Document
		w := &mock.IndexWriter{
			WriteIndexFn: func(_ context.Context, docs []*sitechat.Document) error {
				calledWith = docs
				return nil
			},
		}

		docs := []*sitechat.Document{{Title: "Home", Path: "index.html", Text: "Welcome"}}

		err := w.WriteIndex(context.Background(), docs)

		require.NoError(t, err)
		assert.Equal(t, docs, calledWith)
	})
}
