package web

import (
	"io"
	"net/http"
)

// handleUploadImage stores the multipart file "file" and returns its public URL.
func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	if !s.parseMultipart(w, r) {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.apiError(w, "file required", http.StatusBadRequest)
		return
	}
	defer closeWithLog(file, "image upload", s.logger)

	key, err := s.media.UploadImage(r.Context(), header.Filename, file)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.apiJSON(w, map[string]string{"url": baseURL(r) + s.opts.MediaURLPrefix + "/" + key}, http.StatusCreated)
}

func (s *Server) handleGetMedia(w http.ResponseWriter, r *http.Request) {
	reader, contentType, err := s.media.OpenMedia(r.Context(), r.PathValue("name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer closeWithLog(reader, "media reader", s.logger)

	w.Header().Set("Content-Type", contentType)
	// Names are random and files are never rewritten.
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write media failed", "name", r.PathValue("name"), "error", err)
	}
}

// baseURL is the scheme and host the client used to reach this server.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
