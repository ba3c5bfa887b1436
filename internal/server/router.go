package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/review-relay/internal/config"
	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/prompt"
	"github.com/sevigo/review-relay/internal/server/handler"
)

const requestTimeout = 60 * time.Second

// NewRouter mounts the root and health endpoints plus the three webhook entry
// points.
func NewRouter(cfg *config.Config, clients core.PlatformClientFactory, builder *prompt.Builder, dispatcher core.JobDispatcher, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]bool{"root": true})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	webhookHandler := handler.NewWebhookHandler(cfg, clients, builder, dispatcher, logger)
	r.Route("/webhook", func(r chi.Router) {
		r.Post("/", webhookHandler.Handle)
		r.With(handler.ForcePlatform(core.PlatformGitHub)).Post("/github", webhookHandler.Handle)
		r.With(handler.ForcePlatform(core.PlatformGitLab)).Post("/gitlab", webhookHandler.Handle)
	})

	return r
}
