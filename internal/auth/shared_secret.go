// Package auth guards mutating routes with a single shared secret.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// DefaultHeader carries the shared secret on protected requests.
const DefaultHeader = "X-API-Key"

var ErrNoSecret = errors.New("shared secret must not be empty")

// SharedSecret compares a request header against one configured secret.
type SharedSecret struct {
	header string
	secret []byte
	logger *slog.Logger
}

// NewSharedSecret returns ErrNoSecret for an empty secret. An empty header means DefaultHeader.
func NewSharedSecret(header, secret string, logger *slog.Logger) (*SharedSecret, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if header == "" {
		header = DefaultHeader
	}
	return &SharedSecret{header: header, secret: []byte(secret), logger: logger}, nil
}

// Header returns the name of the header checked by Require.
func (s *SharedSecret) Header() string { return s.header }

// Allows reports whether r carries the exact secret.
func (s *SharedSecret) Allows(r *http.Request) bool {
	values := r.Header.Values(s.header)
	if len(values) != 1 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(values[0]), s.secret) == 1
}

// Require rejects requests without the secret with 401 before next runs.
func (s *SharedSecret) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.Allows(r) {
			s.logger.Warn("rejected request without valid API key",
				"method", r.Method,
				"path", r.URL.Path,
				"ip", r.RemoteAddr,
			)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid or missing API key"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
