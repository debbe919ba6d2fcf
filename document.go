package sitechat

import "context"

// Document represents one indexed HTML page.
type Document struct {
	Title  string `json:"title"`
	Path   string `json:"path"`
	Anchor string `json:"anchor"`
	Text   string `json:"text"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	return nil
}

// DocRef is a document annotated with its relevance score for one query.
type DocRef struct {
	Title  string  `json:"title"`
	Path   string  `json:"path"`
	Anchor string  `json:"anchor"`
	Score  float64 `json:"score"`
}

// IndexReader loads the full set of indexed documents.
type IndexReader interface {
	// ReadIndex returns every document in index order. Implementations
	// return an empty slice, not an error, when no index has been built.
	ReadIndex(ctx context.Context) ([]*Document, error)
}

// IndexWriter replaces the full set of indexed documents.
type IndexWriter interface {
	// WriteIndex replaces the stored index with docs, keeping their order.
	WriteIndex(ctx context.Context, docs []*Document) error
}
