package interfaces

import (
	"context"
	"errors"
)

// ErrUnsupportedImageType is returned by Save when the file content does not
// match any of the allowed image magic numbers (PNG, JPEG, WebP), regardless
// of the MIME type the client declared.
var ErrUnsupportedImageType = errors.New("unsupported image type")

// IImageStore abstracts product image storage.
//
// Save sniffs the real content type from the leading bytes before writing
// and returns the public path (/uploads/<timestamped-name>) of the stored
// file. Remove is best-effort cleanup keyed by that public path.
type IImageStore interface {
	Save(ctx context.Context, originalName string, data []byte) (string, error)
	Remove(ctx context.Context, publicPath string) error
}
