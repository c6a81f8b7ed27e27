// Package api implements the drawkit HTTP API.
//
// Requests carry documents as canonical text (text/plain, 1 MiB limit);
// responses are JSON except for convert, which answers in the requested
// document form. The API is stateless: every request carries its document.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// shutdownTimeout bounds connection draining on graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Server hosts the drawkit HTTP API.
type Server struct {
	logger *log.Logger
	router chi.Router
}

// NewServer builds the API router with its middleware stack and routes.
func NewServer(logger *log.Logger) *Server {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/validate", s.handleValidate)
		r.Post("/stats", s.handleStats)
		r.Post("/convert", s.handleConvert)
		r.Post("/hittest", s.handleHitTest)
	})

	s.router = r
	return s
}

// Handler returns the routed handler. Tests drive it with httptest.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight connections for up to shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.logger.Infof("API listening on %s", addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
