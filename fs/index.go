package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitechat"
)

// Ensure IndexFile implements the index interfaces at compile time.
var (
	_ sitechat.IndexReader = (*IndexFile)(nil)
	_ sitechat.IndexWriter = (*IndexFile)(nil)
)

// IndexFile stores the index as an indented JSON array in a single file.
// Writes go to a temporary sibling file that is renamed over the target,
// so readers never observe a partially written index.
type IndexFile struct {
	path string
}

// NewIndexFile creates an IndexFile backed by the file at path.
func NewIndexFile(path string) *IndexFile {
	return &IndexFile{path: path}
}

// Path returns the location of the index file.
func (f *IndexFile) Path() string {
	return f.path
}

func (f *IndexFile) tempPath() string {
	return f.path + ".tmp"
}

// ReadIndex loads every document from the index file.
// A missing file yields an empty index. A file that is not a JSON array of
// documents yields an EINVALID error.
func (f *IndexFile) ReadIndex(ctx context.Context) ([]*sitechat.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*sitechat.Document{}, nil
	} else if err != nil {
		return nil, err
	}

	var docs []*sitechat.Document
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, sitechat.Errorf(sitechat.EINVALID, "corrupt index %q: %v", f.path, err)
	}

	out := make([]*sitechat.Document, 0, len(docs))
	for _, doc := range docs {
		if doc != nil {
			out = append(out, doc)
		}
	}
	return out, nil
}

// WriteIndex replaces the index file with docs.
func (f *IndexFile) WriteIndex(ctx context.Context, docs []*sitechat.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := EncodeIndex(docs)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(f.tempPath(), b, 0644); err != nil {
		return err
	}
	if err := os.Rename(f.tempPath(), f.path); err != nil {
		_ = os.Remove(f.tempPath())
		return err
	}
	return nil
}

// EncodeIndex renders docs as an indented JSON array. Non-ASCII text and
// HTML characters are written literally.
func EncodeIndex(docs []*sitechat.Document) ([]byte, error) {
	if docs == nil {
		docs = []*sitechat.Document{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
