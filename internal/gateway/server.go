package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ipedrax/pitch-perfect/internal/ollama"
)

// Upstream is the slice of the Ollama client the relay needs.
type Upstream interface {
	Generate(ctx context.Context, req ollama.GenerateRequest) (*ollama.GenerateResponse, error)
	ListTags(ctx context.Context) (*ollama.TagsResponse, error)
	BaseURL() string
}

// Config holds relay server configuration.
type Config struct {
	Port int
	// Interval is the minimum spacing enforced between inbound requests.
	Interval time.Duration
	// DefaultModel is used when a chat request does not name a model.
	DefaultModel string
}

// Server is the relay between browser clients and the Ollama API.
type Server struct {
	cfg        Config
	upstream   Upstream
	pacer      *Pacer
	router     chi.Router
	httpServer *http.Server
}

// New creates a relay server forwarding to the given upstream.
func New(cfg Config, upstream Upstream) *Server {
	s := &Server{
		cfg:      cfg,
		upstream: upstream,
		pacer:    NewPacer(cfg.Interval),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Every inbound request waits out the pacer before anything else,
	// matching the original relay's behavior of delaying even preflights.
	r.Use(s.paced)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	// Bare OPTIONS requests (not CORS preflights, which the cors handler
	// already answered) get an empty 200.
	r.Use(optionsOK)

	r.Post("/api/chat", s.handleChat)
	r.Post("/api/ollama/chat", s.handleChat)
	r.Get("/api/models", s.handleModels)
	r.Get("/api/ollama/models", s.handleModels)
	r.Get("/api/test", s.handleTest)
	r.Get("/api/ollama/test", s.handleTest)

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)

	return r
}

func (s *Server) paced(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.pacer.Wait(r.Context()); err != nil {
			// Client gave up while queued; nothing left to answer.
			return
		}
		next.ServeHTTP(w, r)
	})
}

func optionsOK(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Endpoint not found"})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port. It blocks until the
// server stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("gateway: relay listening on %s (upstream %s)", addr, s.upstream.BaseURL())
	log.Printf("gateway: POST /api/chat    - chat with the model")
	log.Printf("gateway: GET  /api/models  - list available models")
	log.Printf("gateway: GET  /api/test    - test upstream connection")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
