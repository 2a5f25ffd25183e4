package web

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vbonduro/homebase/internal/domain"
	"github.com/vbonduro/homebase/internal/mediastore"
)

type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// apiJSON writes a JSON response with the given status code.
func (s *Server) apiJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) apiError(w http.ResponseWriter, msg string, code int) {
	s.apiJSON(w, errorBody{Error: msg}, code)
}

// fail maps err onto a status code. Errors outside the domain taxonomy are
// logged and reported as a bare 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		s.apiJSON(w, errorBody{Error: domain.ErrValidation.Error(), Details: ve.Fields}, http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, mediastore.ErrNotFound):
		s.apiError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrUnsupportedMedia), errors.Is(err, domain.ErrInvalidEncoding):
		s.apiError(w, err.Error(), http.StatusBadRequest)
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		s.apiError(w, "internal server error", http.StatusInternalServerError)
	}
}

// readJSON decodes a size-limited JSON request body into v.
func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.apiError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		s.apiError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// parseMultipart parses a size-limited multipart form.
func (s *Server) parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.opts.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.apiError(w, "upload too large", http.StatusRequestEntityTooLarge)
			return false
		}
		s.apiError(w, "failed to parse form", http.StatusBadRequest)
		return false
	}
	return true
}

// parseID extracts the {id} path variable and returns it as int64.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
