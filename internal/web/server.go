package web

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vbonduro/homebase/internal/auth"
	"github.com/vbonduro/homebase/internal/logging"
	"github.com/vbonduro/homebase/internal/service"
)

// Options holds the URL layout and request limits of the HTTP surface.
type Options struct {
	APIPrefix      string
	MediaURLPrefix string
	MaxUploadBytes int64
}

type Server struct {
	posts   *service.PostService
	visits  *service.VisitService
	media   *service.MediaService
	guard   *auth.SharedSecret
	opts    Options
	mux     *http.ServeMux
	handler http.Handler
	logger  *slog.Logger
}

func NewServer(
	posts *service.PostService,
	visits *service.VisitService,
	media *service.MediaService,
	guard *auth.SharedSecret,
	opts Options,
	logger *slog.Logger,
) *Server {
	opts.APIPrefix = strings.TrimRight(opts.APIPrefix, "/")
	opts.MediaURLPrefix = strings.TrimRight(opts.MediaURLPrefix, "/")
	if opts.MediaURLPrefix == "" {
		opts.MediaURLPrefix = "/media"
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}

	s := &Server{
		posts:  posts,
		visits: visits,
		media:  media,
		guard:  guard,
		opts:   opts,
		mux:    http.NewServeMux(),
		logger: logger,
	}
	s.registerRoutes()
	s.handler = logging.RequestLogger(logger, securityHeaders(s.mux))
	return s
}

// route declares one endpoint. Protected routes require the shared secret.
type route struct {
	method    string
	path      string
	handler   http.HandlerFunc
	protected bool
}

func (s *Server) routes() []route {
	api := s.opts.APIPrefix
	return []route{
		{method: "POST", path: api + "/posts/", handler: s.handleCreatePost, protected: true},
		{method: "GET", path: api + "/posts/", handler: s.handleListPosts},
		{method: "GET", path: api + "/posts/{id}", handler: s.handleGetPost},
		{method: "PUT", path: api + "/posts/{id}", handler: s.handleReplacePost, protected: true},
		{method: "DELETE", path: api + "/posts/{id}", handler: s.handleDeletePost, protected: true},
		{method: "POST", path: api + "/images/", handler: s.handleUploadImage, protected: true},
		{method: "POST", path: api + "/visits/", handler: s.handleCreateVisit},
		{method: "GET", path: api + "/visits/", handler: s.handleListVisits},
		{method: "POST", path: api + "/visits/{id}/requirements", handler: s.handleAddRequirement},
		{method: "GET", path: s.opts.MediaURLPrefix + "/{name}", handler: s.handleGetMedia},
	}
}

func (s *Server) registerRoutes() {
	for _, rt := range s.routes() {
		var h http.Handler = rt.handler
		if rt.protected {
			h = s.guard.Require(h)
		}
		for _, pattern := range patterns(rt.method, rt.path) {
			s.mux.Handle(pattern, h)
		}
	}
}

// patterns expands a collection path ending in "/" so it matches exactly,
// with or without the trailing slash, instead of the whole subtree.
func patterns(method, path string) []string {
	if !strings.HasSuffix(path, "/") {
		return []string{method + " " + path}
	}
	return []string{
		method + " " + path + "{$}",
		method + " " + strings.TrimSuffix(path, "/"),
	}
}

// securityHeaders sets the fixed response headers sent with every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; img-src 'self'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr, "api_prefix", s.opts.APIPrefix, "media_prefix", s.opts.MediaURLPrefix)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
