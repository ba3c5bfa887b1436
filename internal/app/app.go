// Package app holds the assembled review relay and controls its lifecycle.
package app

import (
	"log/slog"
	"strings"

	"github.com/sevigo/review-relay/internal/ai"
	"github.com/sevigo/review-relay/internal/config"
	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/server"
)

// App holds the main application components.
type App struct {
	cfg        *config.Config
	server     *server.Server
	dispatcher core.JobDispatcher
	logger     *slog.Logger
}

// NewApp creates the application from its wired components.
func NewApp(cfg *config.Config, srv *server.Server, dispatcher core.JobDispatcher, logger *slog.Logger) *App {
	return &App{
		cfg:        cfg,
		server:     srv,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	provider := a.cfg.AI.Provider()
	a.logger.Info("starting review relay",
		"server_port", a.cfg.Server.Port,
		"platforms", strings.Join(a.cfg.Platforms(), ", "),
		"ai_provider", provider,
		"ai_model", a.cfg.AI.Model,
		"review_timeout", a.cfg.Review.Timeout,
	)
	a.logger.Debug("supported models", "provider", provider, "models", ai.SupportedModels(provider))

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the server first so no new webhooks are accepted, then
// waits for in-flight reviews.
func (a *App) Stop() error {
	a.logger.Info("shutting down review relay")

	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
	}

	a.dispatcher.Stop()

	if serverErr != nil {
		return serverErr
	}
	a.logger.Info("review relay stopped")
	return nil
}
