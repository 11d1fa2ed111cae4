// Package server exposes the codec over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/catspeak-dev/catspeak/internal/alphabet"
	"github.com/catspeak-dev/catspeak/internal/codec"
	"github.com/catspeak-dev/catspeak/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type options struct {
	maxInputBytes  int
	requestTimeout time.Duration
	version        string
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		maxInputBytes:  config.DefaultMaxInputBytes,
		requestTimeout: 30 * time.Second,
		version:        "dev",
		logger:         slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxInputBytes caps the length of the text field in encode and decode
// requests.
func WithMaxInputBytes(n int) Option {
	return func(o *options) { o.maxInputBytes = n }
}

// WithRequestTimeout sets the per-request deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithVersion sets the version reported by /health.
func WithVersion(v string) Option {
	return func(o *options) { o.version = v }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Defaults are used for fields a request leaves empty.
type Defaults struct {
	Base int
	Mode codec.Mode
}

// NewHandler returns an http.Handler serving GET /health, GET /alphabet,
// POST /encode and POST /decode.
func NewHandler(alpha alphabet.Alphabet, defaults Defaults, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		alpha:    alpha,
		defaults: defaults,
		opts:     opts,
		log:      opts.logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Timeout(opts.requestTimeout))
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/health", h.handleHealth)
	r.Get("/alphabet", h.handleAlphabet)
	r.Post("/encode", h.handleEncode)
	r.Post("/decode", h.handleDecode)

	return r
}

// Server runs the handler on the configured listen address.
type Server struct {
	cfg             *config.Config
	version         string
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New creates a Server from a loaded config.
func New(cfg *config.Config, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:             cfg,
		version:         version,
		logger:          logger,
		shutdownTimeout: 10 * time.Second,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// Handler builds the HTTP handler for the server's config.
func (s *Server) Handler() (http.Handler, error) {
	alpha, err := s.cfg.BuildAlphabet()
	if err != nil {
		return nil, err
	}

	return NewHandler(alpha,
		Defaults{Base: s.cfg.Base, Mode: s.cfg.CodecMode()},
		WithMaxInputBytes(s.cfg.Server.MaxInputBytes),
		WithVersion(s.version),
		WithLogger(s.logger),
	), nil
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	h, err := s.Handler()
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", s.cfg.Server.ListenAddr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
