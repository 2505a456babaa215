// Package server provides the HTTP API for Oboeru.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hoshizora/oboeru/internal/config"
	"github.com/hoshizora/oboeru/internal/index"
	"github.com/hoshizora/oboeru/internal/memory"
	"github.com/hoshizora/oboeru/internal/pipeline"
)

// Server is the HTTP server for the Oboeru API.
type Server struct {
	pipeline *pipeline.Pipeline
	store    *index.Store
	notebook *memory.Store
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	p *pipeline.Pipeline,
	store *index.Store,
	notebook *memory.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		pipeline: p,
		store:    store,
		notebook: notebook,
		config:   cfg,
		logger:   logger,
	}
}

// Router builds the chi router with all API routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", s.handleHealth)
	r.Get("/api/v1/status", s.handleStatus)
	r.Post("/api/v1/chat", s.handleChat)
	r.Post("/api/v1/search", s.handleSearch)
	r.Post("/api/v1/documents", s.handleAddDocument)
	r.Get("/api/v1/documents/{id}", s.handleGetDocument)
	r.Put("/api/v1/documents/{id}", s.handleUpdateDocument)
	r.Post("/api/v1/ingest/url", s.handleIngestURL)
	r.Post("/api/v1/ingest/file", s.handleIngestFile)
	r.Get("/api/v1/history", s.handleHistory)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
