package sitechat

import (
	"context"
	"strings"
)

// Image is an uploaded image attached to a chat message.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ChatRequest is a chat message after input resolution.
type ChatRequest struct {
	// Text is the user's message; empty when none was supplied.
	Text string

	// Image is nil when no image was attached.
	Image *Image
}

// ChatResponse is the reply to a chat message.
type ChatResponse struct {
	Answer string `json:"answer"`

	// Issues is always empty; reserved for diagnostics about the message.
	Issues []string `json:"issues"`

	DocRefs []DocRef `json:"doc_refs"`
}

// Assistant answers chat messages.
type Assistant interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// ImageValidator reports whether data is a well-formed image in a
// recognized format.
type ImageValidator interface {
	Validate(data []byte) error
}

// TriggerWords activate the page search when found in a chat message.
// Matching is a case-insensitive substring test.
var TriggerWords = []string{
	"documentation",
	"docs",
	"help",
	"page",
	"tutorial",
	"chapter",
	"login",
	"community",
	"where can i find",
	"doku",
	"dokumentation",
	"hilfe",
	"seite",
	"wo finde ich",
	"kapitel",
}

// HasTrigger reports whether text contains any of the trigger words.
func HasTrigger(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, w := range TriggerWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
