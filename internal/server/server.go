package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spark-portfolio/spark/internal/config"
	"github.com/spark-portfolio/spark/internal/evidence"
	"github.com/spark-portfolio/spark/internal/server/middleware"
	"github.com/spark-portfolio/spark/internal/store"
	"github.com/spark-portfolio/spark/internal/tags"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      store.DocumentStore
	dataset    *store.Dataset
	ruleset    *tags.Ruleset
	catalog    evidence.Catalog
	jwtService *JWTService
}

// Config holds server configuration.
type Config struct {
	Port         int
	FixturesPath string
	TagRulesPath string
	CatalogPath  string
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	dataset, err := store.LoadDataset(cfg.FixturesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	ruleset := tags.DefaultRuleset()
	if cfg.TagRulesPath != "" {
		ruleset, err = tags.LoadRuleset(cfg.TagRulesPath)
		if err != nil {
			return nil, err
		}
	}

	catalog := evidence.DefaultCatalog()
	if cfg.CatalogPath != "" {
		catalog, err = evidence.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		store:      store.NewMemoryStore(),
		dataset:    dataset,
		ruleset:    ruleset,
		catalog:    catalog,
		jwtService: NewJWTService(jwtConfig),
	}

	mux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	// Everything else requires a session token.
	protected := http.NewServeMux()

	// Student / profile endpoints
	protected.HandleFunc("GET /api/me", s.handleMe)
	protected.HandleFunc("GET /api/me/profile", s.handleGetProfile)
	protected.HandleFunc("PUT /api/me/profile", s.handleUpdateProfile)

	// Course and assessment endpoints
	protected.HandleFunc("GET /api/courses", s.handleListCourses)
	protected.HandleFunc("GET /api/courses/{id}", s.handleGetCourse)
	protected.HandleFunc("GET /api/projects", s.handleListProjects)

	// Evidence endpoints
	protected.HandleFunc("GET /api/evidence", s.handleEvidence)
	protected.HandleFunc("GET /api/evidence/suggestions", s.handleSuggestions)

	// Portfolio document endpoints
	protected.HandleFunc("POST /api/portfolio/documents", s.handleCreateDocument)
	protected.HandleFunc("GET /api/portfolio/documents", s.handleListDocuments)
	protected.HandleFunc("GET /api/portfolio/documents/{id}", s.handleGetDocument)
	protected.HandleFunc("PATCH /api/portfolio/documents/{id}", s.handleRenameDocument)
	protected.HandleFunc("DELETE /api/portfolio/documents/{id}", s.handleDeleteDocument)
	protected.HandleFunc("GET /api/portfolio/documents/{id}/render", s.handleRenderDocument)
	protected.HandleFunc("GET /api/portfolio/documents/{id}/export/word", s.handleExportWord)
	protected.HandleFunc("GET /api/portfolio/documents/{id}/export/pdf", s.handleExportPDF)

	authMiddleware := middleware.Auth(s.jwtService.AsTokenValidator())
	mux.Handle("/api/", authMiddleware(protected))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests.
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
