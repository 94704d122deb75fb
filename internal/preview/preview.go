// Package preview serves a read-only browser view of the deck being
// edited, plus the session log for diagnostics.
package preview

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ipedrax/pitch-perfect/internal/deck"
	"github.com/ipedrax/pitch-perfect/internal/theme"
)

// Server serves the deck preview on a local port.
type Server struct {
	router     chi.Router
	store      *deck.Store
	themes     *theme.Registry
	sessionLog *deck.SessionLog
	md         goldmark.Markdown
	httpServer *http.Server
	port       int
}

// New creates a preview server for the given deck store.
func New(port int, store *deck.Store, themes *theme.Registry, sessionLog *deck.SessionLog) *Server {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	s := &Server{
		router:     chi.NewRouter(),
		store:      store,
		themes:     themes,
		sessionLog: sessionLog,
		md:         md,
		port:       port,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Get("/", s.handleIndex)
	r.Get("/api/deck", s.handleDeck)
	r.Get("/api/log", s.handleLog)
	r.Get("/ws/log", s.handleLogSocket)
}

// Handler returns the preview's HTTP handler, mostly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start runs the preview server until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("preview: serving deck on http://localhost:%d", s.port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("preview server: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
