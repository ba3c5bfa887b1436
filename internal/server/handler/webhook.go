// Package handler provides HTTP handlers for the review relay.
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/sevigo/review-relay/internal/config"
	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/platform"
	"github.com/sevigo/review-relay/internal/prompt"
	"github.com/sevigo/review-relay/internal/webhook"
)

const maxBodyBytes = 25 << 20

// WebhookHandler runs the synchronous half of a review: detect the platform,
// verify the delivery, build the review request and hand it to the
// dispatcher. The response is written before any AI work starts.
type WebhookHandler struct {
	cfg        *config.Config
	clients    core.PlatformClientFactory
	builder    *prompt.Builder
	dispatcher core.JobDispatcher
	logger     *slog.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(cfg *config.Config, clients core.PlatformClientFactory, builder *prompt.Builder, dispatcher core.JobDispatcher, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		cfg:        cfg,
		clients:    clients,
		builder:    builder,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ForcePlatform marks every request as coming from p, overriding detection.
func ForcePlatform(p core.Platform) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Header.Set(platform.HeaderPlatform, p.String())
			next.ServeHTTP(w, r)
		})
	}
}

// Handle processes a webhook delivery from any supported platform.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("failed to read webhook body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing request body"})
		return
	}

	p, ok := platform.Detect(r.Header)
	if !ok {
		h.logger.Warn("could not detect webhook platform", "user_agent", r.UserAgent())
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown platform"})
		return
	}
	logger := h.logger.With("platform", p)
	logger.Info("received webhook event")

	if !platform.Verify(p, r.Header.Get(platform.SignatureHeader(p)), body, h.secret(p)) {
		logger.Warn("webhook signature verification failed")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid signature"})
		return
	}

	event := &core.WebhookEvent{Headers: r.Header.Clone(), Body: body}
	client, err := h.clients.NewClient(ctx, p, event)
	if err != nil {
		logger.Error("failed to create platform client", "error", err)
		writeInternalError(w)
		return
	}

	wh := h.webhookHandler(p, client, logger)
	req, err := wh.Handle(ctx, body)
	if err != nil {
		if errors.Is(err, core.ErrInvalidPayload) {
			logger.Warn("could not parse webhook", "error", err)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid payload"})
			return
		}
		logger.Error("webhook handling failed", "error", err)
		writeInternalError(w)
		return
	}
	if req == nil {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Event ignored"})
		return
	}

	if err := h.dispatcher.Dispatch(ctx, &core.ReviewTask{Request: req, Platform: client}); err != nil {
		logger.Error("failed to dispatch review task", "error", err, "target", req.Key())
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "Processing"})
}

func (h *WebhookHandler) secret(p core.Platform) string {
	if p == core.PlatformGitLab {
		return h.cfg.GitLab.Secret()
	}
	return h.cfg.GitHub.Secret()
}

func (h *WebhookHandler) webhookHandler(p core.Platform, client core.PlatformClient, logger *slog.Logger) core.WebhookHandler {
	if p == core.PlatformGitLab {
		return webhook.NewGitLabHandler(client, h.builder, logger)
	}
	return webhook.NewGitHubHandler(client, h.builder, logger)
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
