package sitechat

import (
	"slices"
	"strings"
)

// DefaultTopK is the number of matches returned for a chat message.
const DefaultTopK = 5

// Search scores docs against query by vocabulary overlap and returns at most
// k matches ordered by descending score.
//
// The score of a document is |Q ∩ W| / (1 + |Q|), where Q is the set of
// query words and W the set of document words. Documents without text or
// with a zero score are left out. Equal scores keep the order of docs.
func Search(query string, docs []*Document, k int) []DocRef {
	if query == "" || len(docs) == 0 || k <= 0 {
		return []DocRef{}
	}

	q := wordSet(query)
	if len(q) == 0 {
		return []DocRef{}
	}

	refs := make([]DocRef, 0, len(docs))
	for _, doc := range docs {
		if doc == nil || doc.Text == "" {
			continue
		}

		w := wordSet(doc.Text)
		overlap := 0
		for word := range q {
			if _, ok := w[word]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}

		title := doc.Title
		if title == "" {
			title = doc.Path
		}
		refs = append(refs, DocRef{
			Title:  title,
			Path:   doc.Path,
			Anchor: doc.Anchor,
			Score:  float64(overlap) / float64(1+len(q)),
		})
	}

	// Stable so that equal scores keep index order.
	slices.SortStableFunc(refs, func(a, b DocRef) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(refs) > k {
		refs = refs[:k]
	}
	return refs
}

// wordSet lowercases s and splits it on whitespace. Punctuation stays part
// of the word it is attached to.
func wordSet(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
