package api

import (
	"log/slog"
	"net/http"

	"annotext/internal/config"
	"annotext/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// Server is the HTTP server for annotext: one HTML page plus the JSON API
// it drives.
type Server struct {
	router   chi.Router
	sessions *session.Store
	validate *validator.Validate
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(sessions *session.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		sessions: sessions,
		validate: validator.New(),
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(s.sessions))

		r.Get("/", s.handleIndex)

		r.Post("/api/document", s.handleUpload)
		r.Get("/api/document", s.handleDocument)
		r.Get("/api/pages/{index}", s.handlePage)

		r.Post("/api/annotations", s.handleAddAnnotation)
		r.Get("/api/annotations", s.handleListAnnotations)
		r.Delete("/api/annotations", s.handleClearAnnotations)
		r.Delete("/api/annotations/{index}", s.handleRemoveAnnotation)

		r.Get("/api/export", s.handleExport)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
