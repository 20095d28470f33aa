// Package storage keeps uploaded product images on the local filesystem,
// the side channel next to the document store.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"cercovibrados/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
)

// publicPrefix is the URL path the router serves the uploads directory under.
const publicPrefix = "/uploads/"

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp"}

// DetectImageType sniffs the real content type from the leading bytes and
// reports whether it is one of the allowed image formats. The declared MIME
// type of the upload plays no part here: a renamed executable stays rejected.
func DetectImageType(data []byte) (string, bool) {
	mtype := mimetype.Detect(data)
	for _, allowed := range allowedImageTypes {
		if mtype.Is(allowed) {
			return allowed, true
		}
	}
	return mtype.String(), false
}

// LocalImageStore writes images under a fixed directory using
// timestamp-prefixed filenames to avoid collisions.
type LocalImageStore struct {
	dir string
}

var _ interfaces.IImageStore = (*LocalImageStore)(nil)

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalImageStore{dir: dir}, nil
}

// Save sniffs data before anything touches the disk; content failing the
// magic-number check never produces a file that would need cleanup.
func (s *LocalImageStore) Save(_ context.Context, originalName string, data []byte) (string, error) {
	if _, ok := DetectImageType(data); !ok {
		return "", interfaces.ErrUnsupportedImageType
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(originalName))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return publicPrefix + name, nil
}

func (s *LocalImageStore) Remove(_ context.Context, publicPath string) error {
	name := path.Base(publicPath)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.dir, name))
}

// sanitizeFilename strips directory components and whitespace so the stored
// name is safe to join under the uploads dir and to embed in a URL.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "upload"
	}
	return name
}
