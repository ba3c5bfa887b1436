package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/prompt"
)

// GitHubHandler reviews pull requests when they are opened or receive new
// commits.
type GitHubHandler struct {
	client  core.PlatformClient
	builder *prompt.Builder
	logger  *slog.Logger
}

var _ core.WebhookHandler = (*GitHubHandler)(nil)

func NewGitHubHandler(client core.PlatformClient, builder *prompt.Builder, logger *slog.Logger) *GitHubHandler {
	return &GitHubHandler{client: client, builder: builder, logger: logger}
}

func (h *GitHubHandler) Handle(ctx context.Context, body []byte) (*core.ReviewRequest, error) {
	var event github.PullRequestEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidPayload, err)
	}

	action := event.GetAction()
	if action != "opened" && action != "synchronize" {
		h.logger.Debug("ignoring pull request action", "action", action)
		return nil, nil
	}

	pr := event.GetPullRequest()
	repo := event.GetRepo()
	c := change{
		info: core.RepoInfo{
			Owner:      repo.GetOwner().GetLogin(),
			Repo:       repo.GetName(),
			PullNumber: pr.GetNumber(),
		},
		base: pr.GetBase().GetSHA(),
		head: pr.GetHead().GetSHA(),
	}
	if c.info.Owner == "" || c.info.Repo == "" || c.info.PullNumber <= 0 || c.base == "" || c.head == "" {
		h.logger.Warn("ignoring pull request event without coordinates",
			"owner", c.info.Owner,
			"repo", c.info.Repo,
			"number", c.info.PullNumber,
		)
		return nil, nil
	}

	h.logger.Info("reviewing pull request", "repo", repo.GetFullName(), "pr", c.info.PullNumber, "action", action)
	return collect(ctx, core.PlatformGitHub, h.client, h.builder, h.logger, c)
}
