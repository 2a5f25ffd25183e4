package mediastore

import (
	"context"
	"errors"
	"io"
	"strings"
)

var ErrNotFound = errors.New("media not found")

// Store holds uploaded media files under caller-chosen keys.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
}

var contentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Allowed reports whether ext (with leading dot, any case) is an accepted image extension.
func Allowed(ext string) bool {
	_, ok := contentTypes[strings.ToLower(ext)]
	return ok
}

// ContentType returns the MIME type for an allowed extension, or application/octet-stream.
func ContentType(ext string) string {
	if ct, ok := contentTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}
