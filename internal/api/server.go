// Package api provides the HTTP API server and handlers for the Outfitly application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/outfitly/outfitly-server/internal/http/response"
	"github.com/outfitly/outfitly-server/internal/service"
	"github.com/outfitly/outfitly-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	authService  *service.AuthService
	comboService *service.CombinationService
	tagService   *service.TagService
	validator    *validation.Validator
	authLimiter  *RateLimiter
	router       *chi.Mux
	logger       *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(authService *service.AuthService, comboService *service.CombinationService, tagService *service.TagService, authLimiter *RateLimiter, logger *slog.Logger) *Server {
	s := &Server{
		authService:  authService,
		comboService: comboService,
		tagService:   tagService,
		validator:    validation.New(),
		authLimiter:  authLimiter,
		router:       chi.NewRouter(),
		logger:       logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints (public, rate limited by client IP).
		r.Route("/auth", func(r chi.Router) {
			r.Use(RateLimitMiddleware(s.authLimiter, s.logger))
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
		})

		// Protected user endpoints.
		r.Route("/users", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/me", s.handleGetCurrentUser)
		})

		// Combinations: reads are public, writes require a session.
		r.Route("/combos", func(r chi.Router) {
			r.Get("/", s.handleListCombos)
			r.Get("/{id}", s.handleGetCombo)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Post("/", s.handleCreateCombo)
				r.Put("/{id}", s.handleUpdateCombo)
				r.Delete("/{id}", s.handleDeleteCombo)
			})
		})

		// Tags.
		r.Route("/tags", func(r chi.Router) {
			r.Get("/", s.handleListTags)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Post("/", s.handleCreateTag)
			})
		})
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
