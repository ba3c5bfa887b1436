package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sevigo/review-relay/internal/config"
	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/github"
	"github.com/sevigo/review-relay/internal/gitlab"
)

// Factory builds a fresh platform client per webhook from the static
// configuration.
type Factory struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *slog.Logger
}

var _ core.PlatformClientFactory = (*Factory)(nil)

func NewFactory(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) *Factory {
	return &Factory{cfg: cfg, httpClient: httpClient, logger: logger}
}

// NewClient returns the client for platform. For GitHub, App credentials are
// used when configured and the payload names an installation; otherwise the
// personal access token is used.
func (f *Factory) NewClient(ctx context.Context, p core.Platform, event *core.WebhookEvent) (core.PlatformClient, error) {
	switch p {
	case core.PlatformGitHub:
		return f.newGitHubClient(ctx, event)
	case core.PlatformGitLab:
		return f.newGitLabClient()
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedPlatform, p)
	}
}

func (f *Factory) newGitHubClient(ctx context.Context, event *core.WebhookEvent) (core.PlatformClient, error) {
	cfg := f.cfg.GitHub
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: github", core.ErrPlatformNotConfigured)
	}

	if cfg.AppEnabled() && event != nil {
		if installationID := peekInstallationID(event.Body); installationID != 0 {
			client, err := github.NewInstallationClient(cfg.AppID, installationID, cfg.PrivateKeyPath, cfg.APIURL, f.logger)
			if err != nil {
				return nil, err
			}
			return client, nil
		}
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: github payload has no installation and GITHUB_TOKEN is empty", core.ErrPlatformNotConfigured)
	}
	client, err := github.NewPATClient(ctx, cfg.Token, cfg.APIURL, f.logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (f *Factory) newGitLabClient() (core.PlatformClient, error) {
	cfg := f.cfg.GitLab
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: gitlab", core.ErrPlatformNotConfigured)
	}
	client, err := gitlab.NewClient(cfg.Token, cfg.URL, f.httpClient, f.logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func peekInstallationID(body []byte) int64 {
	var payload struct {
		Installation *struct {
			ID int64 `json:"id"`
		} `json:"installation"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Installation == nil {
		return 0
	}
	return payload.Installation.ID
}
