package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var (
	_ sitechat.IndexReader = (*IndexReader)(nil)
	_ sitechat.IndexWriter = (*IndexWriter)(nil)
)

// IndexReader is a mock implementation of sitechat.IndexReader.
type IndexReader struct {
	ReadIndexFn func(ctx context.Context) ([]*sitechat.Document, error)
}

func (r *IndexReader) ReadIndex(ctx context.Context) ([]*sitechat.Document, error) {
	return r.ReadIndexFn(ctx)
}

// IndexWriter is a mock implementation of sitechat.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(ctx context.Context, docs []*sitechat.Document) error
}

func (w *IndexWriter) WriteIndex(ctx context.Context, docs []*sitechat.Document) error {
	return w.WriteIndexFn(ctx, docs)
}
