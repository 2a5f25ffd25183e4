package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vbonduro/homebase/internal/domain"
	"github.com/vbonduro/homebase/internal/mediastore"
)

type MediaService struct {
	store  mediastore.Store
	logger *slog.Logger
}

func NewMediaService(store mediastore.Store, logger *slog.Logger) *MediaService {
	return &MediaService{store: store, logger: logger}
}

// UploadImage saves r under a random name that keeps the lower-cased extension
// of filename and returns that name. Only the extension is checked; the bytes
// are stored as given.
func (s *MediaService) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !mediastore.Allowed(ext) {
		return "", fmt.Errorf("%q: %w", filename, domain.ErrUnsupportedMedia)
	}

	id := uuid.New()
	key := hex.EncodeToString(id[:]) + ext
	if err := s.store.Save(ctx, key, r); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	s.logger.Info("image uploaded", "key", key, "original_name", filename)
	return key, nil
}

// OpenMedia returns the stored file and its content type. The caller closes the reader.
func (s *MediaService) OpenMedia(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.store.Get(ctx, key)
}
