package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/prompt"
)

// ownerRepo splits the project path at its last slash so nested groups stay
// in the owner part.
func ownerRepo(e *gitlab.MergeEvent) (string, string) {
	p := e.Project
	if i := strings.LastIndex(p.PathWithNamespace, "/"); i > 0 && i < len(p.PathWithNamespace)-1 {
		return p.PathWithNamespace[:i], p.PathWithNamespace[i+1:]
	}
	return p.Namespace, p.Name
}

// GitLabHandler reviews merge requests when they are updated.
type GitLabHandler struct {
	client  core.PlatformClient
	builder *prompt.Builder
	logger  *slog.Logger
}

var _ core.WebhookHandler = (*GitLabHandler)(nil)

func NewGitLabHandler(client core.PlatformClient, builder *prompt.Builder, logger *slog.Logger) *GitLabHandler {
	return &GitLabHandler{client: client, builder: builder, logger: logger}
}

func (h *GitLabHandler) Handle(ctx context.Context, body []byte) (*core.ReviewRequest, error) {
	var event gitlab.MergeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidPayload, err)
	}

	if event.ObjectKind != "merge_request" || event.ObjectAttributes.Action != "update" {
		h.logger.Debug("ignoring gitlab event", "kind", event.ObjectKind, "action", event.ObjectAttributes.Action)
		return nil, nil
	}

	owner, repo := ownerRepo(&event)
	mr := event.ObjectAttributes
	c := change{
		info: core.RepoInfo{Owner: owner, Repo: repo, PullNumber: mr.IID},
		base: mr.TargetBranch,
		head: mr.SourceBranch,
		rev:  mr.LastCommit.ID,
	}
	if owner == "" || repo == "" || mr.IID <= 0 || c.base == "" || c.head == "" {
		h.logger.Warn("ignoring merge request event without coordinates", "owner", owner, "repo", repo, "iid", mr.IID)
		return nil, nil
	}

	h.logger.Info("reviewing merge request", "project", owner+"/"+repo, "mr", mr.IID)
	return collect(ctx, core.PlatformGitLab, h.client, h.builder, h.logger, c)
}
