// Package webhook turns verified platform webhooks into review requests.
package webhook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/prompt"
)

// change is the platform-neutral description of a pull/merge request update.
type change struct {
	info core.RepoInfo
	base string
	head string
	// rev pins the pushed revision when head is a branch name.
	rev string
}

// collect fetches the diff and the original files of a change and renders
// the review prompt. It returns nil when the diff is empty.
func collect(ctx context.Context, p core.Platform, client core.PlatformClient, builder *prompt.Builder, logger *slog.Logger, c change) (*core.ReviewRequest, error) {
	owner, repo := c.info.Owner, c.info.Repo

	diffs, err := client.GetCodeDiff(ctx, owner, repo, c.base, c.head)
	if err != nil {
		return nil, fmt.Errorf("get code diff: %w", err)
	}
	if len(diffs) == 0 {
		logger.Info("no changes to review", "platform", p, "owner", owner, "repo", repo, "number", c.info.PullNumber)
		return nil, nil
	}

	paths := make([]string, 0, len(diffs))
	for _, d := range diffs {
		paths = append(paths, d.Filename)
	}

	oldFiles, err := client.GetFileContent(ctx, owner, repo, paths, c.base)
	if err != nil {
		return nil, fmt.Errorf("get original files: %w", err)
	}

	messages, err := builder.BuildPrompt(oldFiles, diffs)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	logger.Debug("review prompt built",
		"platform", p,
		"owner", owner,
		"repo", repo,
		"number", c.info.PullNumber,
		"diffs", len(diffs),
		"original_files", len(oldFiles),
	)

	rev := c.rev
	if rev == "" {
		rev = c.head
	}
	return &core.ReviewRequest{
		Platform: p,
		RepoInfo: c.info,
		Head:     rev,
		Messages: messages,
	}, nil
}
