package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/citator/internal/config"
	"github.com/dgallion1/citator/internal/library"
	"github.com/dgallion1/citator/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// Server is the HTTP API server for citator.
type Server struct {
	router  chi.Router
	library *library.Library
	stats   *stats.Latency
	limiter *rate.Limiter
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(lib *library.Library, st *stats.Latency, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		library: lib,
		stats:   st,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		log:     log,
		cfg:     cfg,
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

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/plays", s.handleOpenPlay)
		r.Get("/api/plays/{playID}", s.handleOutline)
		r.Delete("/api/plays/{playID}", s.handleClosePlay)
		r.Get("/api/plays/{playID}/scenes/{sceneID}", s.handleScene)
		r.With(RateLimit(s.limiter)).Post("/api/plays/{playID}/scenes/{sceneID}/cite", s.handleCite)

		r.Get("/api/stats/locate", s.handleLocateStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
