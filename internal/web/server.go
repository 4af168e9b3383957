// Package web serves the read-only content API: posts, projects,
// aggregates, and the search corpus.
package web

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/codestz/codegarden/internal/config"
	"github.com/codestz/codegarden/internal/content"
	"github.com/codestz/codegarden/internal/search"
	"github.com/codestz/codegarden/internal/service"
)

// Server holds the API's dependencies. Construct one at startup and pass
// it where needed; there are no package-level singletons.
type Server struct {
	svc     *service.Content
	cfg     config.Config
	logger  *zap.Logger
	version string
}

// NewServer builds a Server over svc.
func NewServer(svc *service.Content, cfg config.Config, logger *zap.Logger, version string) *Server {
	return &Server{svc: svc, cfg: cfg, logger: logger, version: version}
}

// Router assembles middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(securityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/search-content", s.handleSearchContent)
		r.Get("/search", s.handleSearch)
		r.Get("/posts", s.handlePosts)
		r.Get("/posts/featured", s.handleFeaturedPosts)
		r.Get("/posts/{slug}", s.handlePostBySlug)
		r.Get("/projects", s.handleProjects)
		r.Get("/projects/featured", s.handleFeaturedProjects)
		r.Get("/projects/{slug}", s.handleProjectBySlug)
		r.Get("/categories", s.handleCategories)
		r.Get("/technologies", s.handleTechnologies)
		r.Get("/current-work", s.handleCurrentWork)
	})

	return r
}

// ListenAndServe runs the server on cfg.Addr until it fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("content API listening",
		zap.String("addr", s.cfg.Addr),
		zap.String("content_dir", s.cfg.ContentDir))
	return srv.ListenAndServe()
}

// --- Middleware ---

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}

// --- Handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	postCount, projectCount := 0, 0
	if posts, err := s.svc.AllPosts(); err == nil {
		postCount = len(posts)
	}
	if projects, err := s.svc.AllProjects(); err == nil {
		projectCount = len(projects)
	}
	writeJSON(w, map[string]any{
		"post_count":    postCount,
		"project_count": projectCount,
		"content_dir":   filepath.Base(s.cfg.ContentDir),
		"version":       s.version,
	})
}

// handleSearchContent ships the denormalized corpus for client-side
// indexing. Aggregation is best-effort: a failed sub-fetch leaves that
// sub-list empty and the response stays 200, even when both fail.
func (s *Server) handleSearchContent(w http.ResponseWriter, r *http.Request) {
	corpus := search.BuildCorpus(s.svc, s.cfg.PostURLPrefix, s.cfg.ProjectURLPrefix)
	writeJSON(w, corpus)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query")
		return
	}

	ix := search.NewIndex(search.BuildCorpus(s.svc, s.cfg.PostURLPrefix, s.cfg.ProjectURLPrefix))
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			ix.MaxResults = n
		}
	}

	results := ix.Search(query)
	if results == nil {
		results = []search.Match{}
	}
	writeJSON(w, map[string]any{
		"query":   query,
		"results": results,
	})
}

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	var (
		posts []content.Post
		err   error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		posts, err = s.svc.PostsByCategory(category)
	} else {
		posts, err = s.svc.AllPosts()
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, posts)
}

func (s *Server) handlePostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := s.svc.PostBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, post)
}

func (s *Server) handleFeaturedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.svc.FeaturedPosts(parseLimit(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, posts)
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	var (
		projects []content.Project
		err      error
	)
	if tech := r.URL.Query().Get("technology"); tech != "" {
		projects, err = s.svc.ProjectsByTechnology(tech)
	} else {
		projects, err = s.svc.AllProjects()
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, projects)
}

func (s *Server) handleProjectBySlug(w http.ResponseWriter, r *http.Request) {
	project, err := s.svc.ProjectBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, project)
}

func (s *Server) handleFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.svc.FeaturedProjects(parseLimit(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, projects)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.svc.Categories()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, categories)
}

func (s *Server) handleTechnologies(w http.ResponseWriter, r *http.Request) {
	technologies, err := s.svc.Technologies()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if technologies == nil {
		technologies = []string{}
	}
	writeJSON(w, technologies)
}

func (s *Server) handleCurrentWork(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.svc.CurrentWork())
}

// --- Helpers ---

// parseLimit reads ?limit=, returning 0 (service default) when absent or
// out of the 1..100 range.
func parseLimit(r *http.Request) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 100 {
		return 0
	}
	return n
}

// writeServiceError maps the error taxonomy onto HTTP statuses:
// InvalidArgument 400, NotFound 404, everything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch content.KindOf(err) {
	case content.KindInvalidArgument:
		writeError(w, http.StatusBadRequest, err.Error())
	case content.KindNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
