package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/haulpath/tripplan/internal/infrastructure/config"
)

// Server wraps the HTTP listener with configured timeouts and graceful
// shutdown
type Server struct {
	http *http.Server
}

// NewServer creates a server for the given handler using the configured
// bind address and timeouts
func NewServer(cfg *config.ServerConfig, handler http.Handler) *Server {
	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.http.Addr
}

// Start serves requests until Shutdown is called or the listener fails
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting new requests and drains in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
