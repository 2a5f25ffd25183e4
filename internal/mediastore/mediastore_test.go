package mediastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".PNG", ".JpEg"} {
		assert.True(t, Allowed(ext), ext)
	}
	for _, ext := range []string{".exe", ".svg", ".pdf", "", "png", ".png.exe"} {
		assert.False(t, Allowed(ext), ext)
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentType(".JPG"))
	assert.Equal(t, "image/webp", ContentType(".webp"))
	assert.Equal(t, "application/octet-stream", ContentType(".bin"))
}
