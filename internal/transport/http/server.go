// Package http exposes the advisory and document-generation API.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nyayasetu/nyayasetu/internal/config"
	"github.com/nyayasetu/nyayasetu/internal/service/docgen"
	"github.com/nyayasetu/nyayasetu/internal/service/pipeline"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

// Server is the HTTP front of the service. It satisfies srv.Service so the
// command layer can manage its lifecycle alongside the other services.
type Server struct {
	advisor   *pipeline.Pipeline
	analyzer  *pipeline.Pipeline
	generator *docgen.Generator
	cfg       *config.AppConfig
	server    *http.Server
}

func NewServer(advisor, analyzer *pipeline.Pipeline, generator *docgen.Generator, cfg *config.AppConfig) *Server {
	return &Server{
		advisor:   advisor,
		analyzer:  analyzer,
		generator: generator,
		cfg:       cfg,
	}
}

func (s *Server) router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(requestLogger(ctx))

	r.Post("/api/query", s.handleQuery)
	r.Post("/api/analyze", s.handleAnalyze)
	r.Get("/api/analyze", s.handleAnalyze)
	r.Post("/api/generate-document", s.handleGenerateDocument)
	r.Get("/health", s.handleHealth)
	return r
}

// Start begins serving and blocks until the listener stops. A graceful
// shutdown is not reported as a failure.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:        s.cfg.ListenAddr,
		Handler:     s.router(ctx),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	log.FromCtx(ctx).Info().Str("addr", s.cfg.ListenAddr).Msg("http server listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// requestLogger attaches the service logger to every request context and
// emits one line per request.
func requestLogger(ctx context.Context) func(http.Handler) http.Handler {
	logger := log.FromCtx(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			reqCtx := logger.WithContext(r.Context())
			next.ServeHTTP(ww, r.WithContext(reqCtx))
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		})
	}
}
