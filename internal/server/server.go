// Package server exposes the webhook routes over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/review-relay/internal/config"
	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/prompt"
)

const (
	readTimeout  = 10 * time.Second
	idleTimeout  = 120 * time.Second
	drainTimeout = 30 * time.Second

	// writeTimeout must outlast the router's request timeout so the 500 it
	// writes still reaches the client.
	writeTimeout = requestTimeout + 5*time.Second
)

type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer builds the listener configuration. Request contexts derive from
// ctx, so cancelling it aborts webhook handling still in progress.
func NewServer(ctx context.Context, cfg *config.Config, clients core.PlatformClientFactory, builder *prompt.Builder, dispatcher core.JobDispatcher, logger *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      NewRouter(cfg, clients, builder, dispatcher, logger),
			BaseContext:  func(net.Listener) context.Context { return ctx },
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		logger: logger,
	}
}

// Start serves until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("listening for webhooks", "address", s.server.Addr)

	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
}

// Stop refuses new connections and waits up to drainTimeout for in-flight
// requests. Background reviews are not covered; the dispatcher drains those.
func (s *Server) Stop() error {
	s.logger.Info("draining HTTP connections", "timeout", drainTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
