package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/fwojciec/sitechat"
)

// InputKind reports where the chat text of a request came from.
type InputKind int

const (
	InputNone InputKind = iota
	InputForm
	InputJSON
)

// String returns the kind as used in logs.
func (k InputKind) String() string {
	switch k {
	case InputForm:
		return "form"
	case InputJSON:
		return "json"
	default:
		return "none"
	}
}

// ChatInput is a chat request body resolved into a single shape.
type ChatInput struct {
	Kind  InputKind
	Text  string
	Image *sitechat.Image
}

// Request converts the input into the domain request.
func (in ChatInput) Request() *sitechat.ChatRequest {
	return &sitechat.ChatRequest{Text: in.Text, Image: in.Image}
}

// ResolveChatInput reads the body of r. A form with a text field wins, even
// if the field is empty; otherwise a body that is exactly one JSON object
// with a string text field, whatever the declared content type; otherwise
// there is no text. An image part is taken from multipart bodies whatever
// the outcome for the text. Malformed bodies are never an error.
func ResolveChatInput(r *http.Request) ChatInput {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return ChatInput{}
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		r.Body = io.NopCloser(bytes.NewReader(body))
		in := resolveMultipart(r)
		if in.Kind == InputForm {
			return in
		}
		out := resolveJSON(body)
		out.Image = in.Image
		return out
	case "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(string(body))
		if err == nil {
			if text, ok := values["text"]; ok {
				return ChatInput{Kind: InputForm, Text: first(text)}
			}
		}
	}
	return resolveJSON(body)
}

func resolveMultipart(r *http.Request) ChatInput {
	if err := r.ParseMultipartForm(MaxBodySize); err != nil {
		return ChatInput{}
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	var in ChatInput
	if values, ok := r.MultipartForm.Value["text"]; ok {
		in.Kind = InputForm
		in.Text = first(values)
	}
	in.Image = readImage(r)
	return in
}

func readImage(r *http.Request) *sitechat.Image {
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil
	}
	return &sitechat.Image{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
}

// resolveJSON accepts body only if it is a single JSON object.
func resolveJSON(body []byte) ChatInput {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ChatInput{}
	}
	raw, ok := payload["text"]
	// null would decode into an empty string.
	if !ok || !bytes.HasPrefix(raw, []byte(`"`)) {
		return ChatInput{}
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return ChatInput{}
	}
	return ChatInput{Kind: InputJSON, Text: text}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
