// Package server provides the HTTP REST API for the letter service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/letter-service/internal/cleanup"
	"github.com/jonathan/letter-service/internal/registry"
	"github.com/jonathan/letter-service/internal/rendering"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	renderer   *rendering.Renderer
	registry   *registry.Store
	sweeper    *cleanup.Sweeper
	logger     *zap.Logger
	startedAt  time.Time
}

// Config holds server construction parameters.
type Config struct {
	Port     int
	Renderer *rendering.Renderer
	Registry *registry.Store
	Sweeper  *cleanup.Sweeper
	Logger   *zap.Logger
}

// New creates a new server instance.
func New(cfg Config) *Server {
	s := &Server{
		renderer:  cfg.Renderer,
		registry:  cfg.Registry,
		sweeper:   cfg.Sweeper,
		logger:    cfg.Logger,
		startedAt: time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/v1/letters/surat-tugas", s.handleSuratTugas)
	mux.HandleFunc("POST /api/v1/letters/lembar-persetujuan", s.handleLembarPersetujuan)
	mux.HandleFunc("POST /api/v1/letters/generate", s.handleGenerate)

	mux.HandleFunc("GET /api/v1/letters/download/{ref}", s.handleDownload)
	mux.HandleFunc("GET /api/v1/letters/preview/{doc_id}", s.handlePreview)
	mux.HandleFunc("GET /api/v1/letters/templates", s.handleTemplates)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.withDownloadGuard(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // headless-Chrome renders can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests, launches the cleanup sweeper, and
// blocks until SIGINT/SIGTERM triggers a graceful shutdown.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.sweeper.Start()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := s.sweeper.Stop(shutdownCtx); err != nil {
			s.logger.Warn("cleanup sweeper stop", zap.Error(err))
		}
		return nil
	})

	err := g.Wait()
	s.logger.Info("server stopped")
	return err
}

// Handler exposes the full middleware-wrapped handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// handleRoot returns a service banner.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.errorResponse(w, http.StatusNotFound, codeNotFound, "not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "PDF Letter Service is running"})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"version": Version,
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
	})
}

// handleTemplates returns the fixed allow-list of supported templates.
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": rendering.SupportedTemplates,
		"count":     len(rendering.SupportedTemplates),
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes a structured error payload with a machine-readable
// code. Response bodies never include stack traces or filesystem paths.
func (s *Server) errorResponse(w http.ResponseWriter, status int, code, message string) {
	s.jsonResponse(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
