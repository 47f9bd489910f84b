// Package server exposes the preview pipeline over HTTP.
//
// Endpoints:
//
//	GET    /healthz                     liveness probe
//	GET    /v1/variants                 variant catalog
//	POST   /v1/render                   render an inline or stored creative
//	POST   /v1/creatives                store a creative record
//	GET    /v1/creatives                list stored creatives
//	GET    /v1/creatives/{id}           fetch one stored creative
//	DELETE /v1/creatives/{id}           delete a stored creative
//	GET    /v1/creatives/{id}/preview   render a stored creative to a document
//
// The render endpoints delegate to [pipeline.Runner], so caching and
// validation behave exactly as in the CLI.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adproof/adproof/pkg/pipeline"
	"github.com/adproof/adproof/pkg/store"
)

// Config configures the HTTP server.
type Config struct {
	Addr string // defaults to ":8080"

	// RequestTimeout bounds each request. Defaults to 30 seconds.
	RequestTimeout time.Duration
}

// Server serves the preview API.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	http   *http.Server
}

// New creates a server. The store may be nil, in which case only
// inline-record rendering is available and the creatives endpoints
// return 503.
func New(cfg Config, runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{cfg: cfg, runner: runner, store: st, logger: logger}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the chi router. Exposed separately so tests can drive
// the handlers through httptest without binding a socket.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/variants", s.handleListVariants)
		r.Post("/render", s.handleRender)

		r.Route("/creatives", func(r chi.Router) {
			r.Post("/", s.handleCreateCreative)
			r.Get("/", s.handleListCreatives)
			r.Get("/{id}", s.handleGetCreative)
			r.Delete("/{id}", s.handleDeleteCreative)
			r.Get("/{id}/preview", s.handlePreview)
		})
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled, then drains
// in-flight requests for up to 10 seconds.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}
