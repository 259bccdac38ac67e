package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pulsecheck/pulsecheck/internal/config"
	"github.com/pulsecheck/pulsecheck/internal/rules"
)

// Server represents the API server
type Server struct {
	config   *config.Config
	router   chi.Router
	handlers *Handlers
}

// NewServer creates a new API server around a fixed rule corpus. The
// corpus is read-only for the process lifetime, so handlers share it
// without locking.
func NewServer(cfg *config.Config, ruleset []rules.Rule) *Server {
	s := &Server{
		config:   cfg,
		router:   chi.NewRouter(),
		handlers: NewHandlers(ruleset),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handlers.HealthCheck)

	// Patient-facing form, same URL for render and submit
	s.router.Get("/", s.handlers.ShowForm)
	s.router.Post("/", s.handlers.SubmitForm)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/diagnose", s.handlers.Diagnose)
		r.Get("/rules", s.handlers.ListRules)
	})
}

// Router returns the configured chi router
func (s *Server) Router() chi.Router {
	return s.router
}
