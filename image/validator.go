// Package image validates uploaded images using the standard library
// decoders and the extra formats from golang.org/x/image.
package image

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fwojciec/sitechat"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Ensure Validator implements sitechat.ImageValidator at compile time.
var _ sitechat.ImageValidator = (*Validator)(nil)

// Validator checks that uploads decode as PNG, JPEG, GIF, BMP, TIFF or WebP.
// Only the header is decoded; pixel data is never materialized.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns an EINVALID error when data is not a recognized image.
func (v *Validator) Validate(data []byte) error {
	if len(data) == 0 {
		return sitechat.Errorf(sitechat.EINVALID, "empty image")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return sitechat.Errorf(sitechat.EINVALID, "unreadable image: %v", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return sitechat.Errorf(sitechat.EINVALID, "%s image has no pixels", format)
	}
	return nil
}
