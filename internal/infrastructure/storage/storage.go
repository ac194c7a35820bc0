// Package storage provides object storage for product and banner images.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ImageStorage stores uploaded images and serves them by public URL.
type ImageStorage interface {
	// Upload stores data under key and returns the public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)
}

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".svg":  {},
}

// ImageKey builds a collision-free storage key for an uploaded image,
// namespaced by kind ("products", "banners").
func ImageKey(kind, filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", fmt.Errorf("storage: unsupported image extension %q", ext)
	}
	return kind + "/" + uuid.NewString() + ext, nil
}
