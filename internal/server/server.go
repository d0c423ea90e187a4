// Package server implements the HTTP front end of the placeholder image
// service. It owns request parsing, limits, and response plumbing; the PNG
// bytes themselves come from pkg/png.
package server

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Faultbox/pixhold/internal/config"
	"github.com/Faultbox/pixhold/internal/logger"
	"github.com/Faultbox/pixhold/pkg/png"
)

// Server serves placeholder images over HTTP.
type Server struct {
	cfg  *config.Config
	mux  *http.ServeMux
	http *http.Server
}

// New creates a Server from the given configuration.
func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/", s.handleImage)

	s.http = &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      s.mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s
}

// Handler returns the request handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run listens until ctx is cancelled, then shuts down gracefully within the
// configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", s.http.Addr))
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutCtx)
}

// maxWidth returns the effective width limit: the configured cap, never
// above the encoder's hard limit.
func (s *Server) maxWidth() int {
	if s.cfg.Image.MaxWidth > 0 && s.cfg.Image.MaxWidth < png.MaxDim {
		return s.cfg.Image.MaxWidth
	}
	return png.MaxDim
}

// maxHeight returns the effective height limit.
func (s *Server) maxHeight() int {
	if s.cfg.Image.MaxHeight > 0 && s.cfg.Image.MaxHeight < png.MaxDim {
		return s.cfg.Image.MaxHeight
	}
	return png.MaxDim
}
