// Package web serves the grammar-parsing HTTP API and the bundled UI.
//
// The package is transport glue only: it hands raw request bodies to the
// bnf package and serializes whatever comes back. All parse failures are
// treated uniformly as "could not parse".
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/grammarkit/bnf/internal/logging"
)

// Config holds server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// ShutdownTimeout bounds graceful shutdown. Zero means 5s.
	ShutdownTimeout time.Duration
}

// Server is the bnf HTTP server.
type Server struct {
	cfg  Config
	http *http.Server
}

// New builds a Server with all routes and middleware attached.
func New(cfg Config) *Server {
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", handleParse)
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/ws", handleWebSocket)
	mux.HandleFunc("/", handleStatic)

	handler := securityHeaders(requestLogger(mux))
	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
	}
}

// Handler exposes the fully assembled handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe runs the server until it fails or ctx is cancelled, in
// which case it shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errs := make(chan error, 1)
	go func() {
		errs <- s.http.ListenAndServe()
	}()
	logging.Info("server listening", "addr", s.cfg.Addr)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		logging.Info("server shutting down")
		return s.http.Shutdown(shutdownCtx)
	}
}
