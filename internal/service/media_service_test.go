package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/homebase/internal/domain"
	"github.com/vbonduro/homebase/internal/mediastore"
)

// stubMediaStore is a minimal in-memory mediastore.Store for tests.
type stubMediaStore struct {
	saved   map[string][]byte
	saveErr error
}

func newStubMediaStore() *stubMediaStore {
	return &stubMediaStore{saved: make(map[string][]byte)}
}

func (s *stubMediaStore) Save(_ context.Context, key string, r io.Reader) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.saved[key] = data
	return nil
}

func (s *stubMediaStore) Get(_ context.Context, key string) (io.ReadCloser, string, error) {
	data, ok := s.saved[key]
	if !ok {
		return nil, "", mediastore.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), "image/png", nil
}

var generatedName = regexp.MustCompile(`^[0-9a-f]{32}\.[a-z]+$`)

func TestMediaServiceUploadImage(t *testing.T) {
	stg := newStubMediaStore()
	svc := NewMediaService(stg, slog.Default())

	key, err := svc.UploadImage(context.Background(), "Holiday.JPEG", bytes.NewReader([]byte("arbitrary bytes")))
	require.NoError(t, err)
	assert.Regexp(t, generatedName, key)
	assert.Equal(t, ".jpeg", key[len(key)-5:])
	assert.Equal(t, []byte("arbitrary bytes"), stg.saved[key])
}

func TestMediaServiceUploadImageUniqueNames(t *testing.T) {
	svc := NewMediaService(newStubMediaStore(), slog.Default())
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 20 {
		key, err := svc.UploadImage(ctx, "x.png", bytes.NewReader(nil))
		require.NoError(t, err)
		assert.False(t, seen[key], key)
		seen[key] = true
	}
}

func TestMediaServiceUploadImageRejectsExtension(t *testing.T) {
	stg := newStubMediaStore()
	svc := NewMediaService(stg, slog.Default())

	for _, name := range []string{"x.exe", "x", "x.png.exe", "image.svg"} {
		_, err := svc.UploadImage(context.Background(), name, bytes.NewReader([]byte("data")))
		assert.ErrorIs(t, err, domain.ErrUnsupportedMedia, name)
	}
	assert.Empty(t, stg.saved)
}

func TestMediaServiceUploadImageStoreError(t *testing.T) {
	stg := newStubMediaStore()
	stg.saveErr = errors.New("disk full")
	svc := NewMediaService(stg, slog.Default())

	_, err := svc.UploadImage(context.Background(), "x.gif", bytes.NewReader(nil))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestMediaServiceOpenMedia(t *testing.T) {
	svc := NewMediaService(newStubMediaStore(), slog.Default())
	ctx := context.Background()

	key, err := svc.UploadImage(ctx, "a.png", bytes.NewReader([]byte("png")))
	require.NoError(t, err)

	rc, contentType, err := svc.OpenMedia(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "image/png", contentType)

	_, _, err = svc.OpenMedia(ctx, "missing.png")
	assert.ErrorIs(t, err, mediastore.ErrNotFound)
}
