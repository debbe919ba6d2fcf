package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitechat"
)

// Compile-time interface verification.
var (
	_ sitechat.IndexReader = (*DocumentStore)(nil)
	_ sitechat.IndexWriter = (*DocumentStore)(nil)
)

// DocumentStore implements the index interfaces using SQLite.
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// WriteIndex replaces all stored documents with docs in one transaction.
// Readers see either the previous generation or the new one.
func (s *DocumentStore) WriteIndex(ctx context.Context, docs []*sitechat.Document) error {
	for i, doc := range docs {
		if doc == nil {
			return sitechat.Errorf(sitechat.EINVALID, "document %d is nil", i)
		}
		if err := doc.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (position, path, title, anchor, text, content_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	indexedAt := time.Now().UTC().Format(time.RFC3339)
	for i, doc := range docs {
		if _, err := stmt.ExecContext(ctx, i, doc.Path, doc.Title, doc.Anchor, doc.Text,
			hashContent(doc.Text), indexedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ReadIndex returns all stored documents in index order.
func (s *DocumentStore) ReadIndex(ctx context.Context) ([]*sitechat.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, path, anchor, text
		FROM documents
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	return scanDocuments(rows)
}

// ChangedPaths returns the paths of docs whose text differs from the stored
// generation, including pages that were not stored before. Pages removed
// since then are not reported. Nil entries are skipped.
func (s *DocumentStore) ChangedPaths(ctx context.Context, docs []*sitechat.Document) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, anchor, content_hash FROM documents
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type key struct{ path, anchor string }
	stored := make(map[key]string)
	for rows.Next() {
		var k key
		var hash string
		if err := rows.Scan(&k.path, &k.anchor, &hash); err != nil {
			return nil, err
		}
		stored[k] = hash
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	changed := []string{}
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		hash, ok := stored[key{doc.Path, doc.Anchor}]
		if !ok || hash != hashContent(doc.Text) {
			changed = append(changed, doc.Path)
		}
	}
	return changed, nil
}

// scanDocuments reads title, path, anchor and text columns from rows.
func scanDocuments(rows *sql.Rows) ([]*sitechat.Document, error) {
	defer rows.Close()

	docs := []*sitechat.Document{}
	for rows.Next() {
		var doc sitechat.Document
		if err := rows.Scan(&doc.Title, &doc.Path, &doc.Anchor, &doc.Text); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}
