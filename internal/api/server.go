package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/explainable-reasoning/argument-search/internal/auth"
	"github.com/explainable-reasoning/argument-search/internal/engine"
	"github.com/explainable-reasoning/argument-search/internal/storage"
)

// ServerConfig carries the dependencies a Server needs.
type ServerConfig struct {
	DB        *sql.DB
	JWTSecret string
	CacheSize int
}

// Server routes HTTP requests to the argumentation engine and its storage.
type Server struct {
	router       *chi.Mux
	authService  auth.Service
	rulebaseRepo storage.RulebaseRepository
	premiseRepo  storage.PremiseRepository
	engine       *engine.Service
}

// NewServer wires repositories, auth and the query engine into a router.
func NewServer(cfg ServerConfig) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authConfig := auth.DefaultConfig()
	if cfg.JWTSecret != "" {
		authConfig.SecretKey = cfg.JWTSecret
	}

	s := &Server{
		router:       r,
		authService:  auth.NewTokenService(authConfig, auth.NewPostgresUserRepository(cfg.DB)),
		rulebaseRepo: storage.NewPostgresRulebaseRepository(cfg.DB),
		premiseRepo:  storage.NewPostgresPremiseRepository(cfg.DB),
		engine:       engine.NewService(cfg.CacheSize),
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API v1
	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth routes (public)
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		// Ad-hoc queries need no stored rulebase and no account
		r.Post("/explain", s.handleExplain)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(s.authService))

			r.Route("/rulebases", func(r chi.Router) {
				r.Get("/", s.handleListRulebases)
				r.Post("/", s.handleCreateRulebase)
				r.Get("/{rulebaseID}", s.handleGetRulebase)
				r.Delete("/{rulebaseID}", s.handleDeleteRulebase)

				r.Get("/{rulebaseID}/premises", s.handleListPremises)
				r.Post("/{rulebaseID}/premises", s.handleAddPremise)

				r.Post("/{rulebaseID}/explain", s.handleExplainRulebase)
			})
		})
	})
}

// Handler returns the root http.Handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on addr and blocks.
func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

// Helper to send JSON responses
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
