package mock

import (
	"context"

	"github.com/fwojciec/sitechat"
)

var (
	_ sitechat.Assistant      = (*Assistant)(nil)
	_ sitechat.ImageValidator = (*ImageValidator)(nil)
)

// Assistant is a mock implementation of sitechat.Assistant.
type Assistant struct {
	ChatFn func(ctx context.Context, req *sitechat.ChatRequest) (*sitechat.ChatResponse, error)
}

func (a *Assistant) Chat(ctx context.Context, req *sitechat.ChatRequest) (*sitechat.ChatResponse, error) {
	return a.ChatFn(ctx, req)
}

// ImageValidator is a mock implementation of sitechat.ImageValidator.
type ImageValidator struct {
	ValidateFn func(data []byte) error
}

func (v *ImageValidator) Validate(data []byte) error {
	return v.ValidateFn(data)
}
