// internal/server/server.go
// Package server exposes the dashboard over HTTP: the raw CSV files, a JSON
// API over the loaded datasets and a server-rendered HTML dashboard.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mwiater/gapdash/internal/dashboard"
	"github.com/mwiater/gapdash/internal/dataset"
	"github.com/mwiater/gapdash/internal/logging"
)

// Config wires a Server to its datasets.
type Config struct {
	Fetcher dataset.Fetcher
	Sources dashboard.Sources
	// DataDir is served under /data/. Empty disables the static route.
	DataDir string
	View    dashboard.View
}

// Server holds the most recent load result. Requests only read it; Reload
// replaces it wholesale.
type Server struct {
	cfg Config

	mu    sync.RWMutex
	state dashboard.State
}

// New returns a server in the loading state. Call Reload before serving.
func New(cfg Config) *Server {
	return &Server{cfg: cfg, state: dashboard.NewState(cfg.View)}
}

// Reload runs a full load and stores the outcome, success or failure.
func (s *Server) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.state = s.state.Retry()
	gen := s.state.Generation()
	s.mu.Unlock()

	data, err := dashboard.Load(ctx, s.cfg.Fetcher, s.cfg.Sources)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = s.state.Failed(gen, err)
		return err
	}
	s.state = s.state.Loaded(gen, data)
	return nil
}

func (s *Server) snapshot() dashboard.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logging.Logger(), NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleIndex)
	r.Post("/reload", s.handleReloadForm)
	r.Get("/health", s.handleHealth)

	if s.cfg.DataDir != "" {
		fs := http.StripPrefix("/data/", http.FileServer(http.Dir(s.cfg.DataDir)))
		r.Get("/data/*", fs.ServeHTTP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/reload", s.handleReload)
		r.Route("/{view}", func(r chi.Router) {
			r.Use(s.requireReady)
			r.Get("/tasks", s.handleTasks)
			r.Get("/groups", s.handleGroups)
			r.Get("/patterns", s.handlePatterns)
			r.Get("/patterns.svg", s.handlePatternChart)
			r.Get("/patterns.png", s.handlePatternChart)
		})
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.LogEvent("Serving dashboard on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logging.LogEvent("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}
