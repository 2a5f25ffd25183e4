package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/vbonduro/homebase/internal/domain"
)

// handleCreatePost accepts multipart form fields title and publish_date plus
// the Markdown file md_file. title and publish_date may also come from the query string.
func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if !s.parseMultipart(w, r) {
		return
	}

	var publishDate *domain.Date
	if raw := strings.TrimSpace(r.FormValue("publish_date")); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			s.fail(w, r, &domain.ValidationError{Fields: []string{"publish_date must be a date (YYYY-MM-DD)"}})
			return
		}
		publishDate = &d
	}

	file, _, err := r.FormFile("md_file")
	if err != nil {
		s.fail(w, r, &domain.ValidationError{Fields: []string{"md_file is required"}})
		return
	}
	defer closeWithLog(file, "markdown upload", s.logger)

	body, err := io.ReadAll(file)
	if err != nil {
		s.apiError(w, "failed to read file", http.StatusBadRequest)
		return
	}

	post, err := s.posts.CreatePost(r.Context(), r.FormValue("title"), publishDate, body)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.apiJSON(w, post, http.StatusCreated)
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.ListPosts(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.apiJSON(w, posts, http.StatusOK)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.apiError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := s.posts.GetPost(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.apiJSON(w, post, http.StatusOK)
}

// handleReplacePost replaces the whole post from a JSON body; it is not a partial patch.
func (s *Server) handleReplacePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.apiError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var in domain.PostUpdate
	if !s.readJSON(w, r, &in) {
		return
	}

	post, err := s.posts.ReplacePost(r.Context(), id, in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.apiJSON(w, post, http.StatusOK)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.apiError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	if err := s.posts.DeletePost(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
