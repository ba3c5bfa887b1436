// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/review-relay/internal/core"
)

const signaturePrefix = "sha256="

// Client implements core.PlatformClient on top of the GitHub REST API.
type Client struct {
	client *github.Client
	logger *slog.Logger
}

var _ core.PlatformClient = (*Client)(nil)

// NewClient wraps an already authenticated go-github client.
func NewClient(client *github.Client, logger *slog.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// GetCodeDiff compares base and head and returns the per-file patches.
func (c *Client) GetCodeDiff(ctx context.Context, owner, repo, base, head string) ([]core.CodeDiff, error) {
	comparison, _, err := c.client.Repositories.CompareCommits(ctx, owner, repo, base, head, nil)
	if err != nil {
		c.logger.Error("failed to compare commits", "owner", owner, "repo", repo, "base", base, "head", head, "error", err)
		return nil, fmt.Errorf("failed to compare %s...%s: %w", base, head, err)
	}

	diffs := make([]core.CodeDiff, 0, len(comparison.Files))
	for _, f := range comparison.Files {
		diffs = append(diffs, core.CodeDiff{
			Filename: f.GetFilename(),
			Patch:    f.GetPatch(),
			Status:   diffStatus(f.GetStatus()),
		})
	}
	return diffs, nil
}

// GetFileContent fetches each path at ref. Files that cannot be read at ref,
// typically because the change adds them, are left out of the result.
func (c *Client) GetFileContent(ctx context.Context, owner, repo string, paths []string, ref string) ([]core.FileContent, error) {
	results := make([]core.FileContent, 0, len(paths))
	opts := &github.RepositoryContentGetOptions{Ref: ref}

	for _, path := range paths {
		file, _, resp, err := c.client.Repositories.GetContents(ctx, owner, repo, path, opts)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				c.logger.Debug("file not present at ref, skipping", "path", path, "ref", ref)
			} else {
				c.logger.Warn("failed to get file content, skipping", "path", path, "ref", ref, "error", err)
			}
			continue
		}
		if file == nil {
			// path is a directory
			continue
		}

		content, err := file.GetContent()
		if err != nil {
			c.logger.Warn("failed to decode file content, skipping", "path", path, "ref", ref, "error", err)
			continue
		}
		results = append(results, core.FileContent{Filename: path, Content: content})
	}

	return results, nil
}

// PostComment creates a COMMENT review carrying the review body.
func (c *Client) PostComment(ctx context.Context, comment core.Comment) error {
	review := &github.PullRequestReviewRequest{
		Body:  github.Ptr(comment.Body),
		Event: github.Ptr("COMMENT"),
	}

	_, _, err := c.client.PullRequests.CreateReview(ctx, comment.Owner, comment.Repo, comment.PullNumber, review)
	if err != nil {
		c.logger.Error("failed to create pull request review", "owner", comment.Owner, "repo", comment.Repo, "pr", comment.PullNumber, "error", err)
		return fmt.Errorf("failed to create review on %s/%s#%d: %w", comment.Owner, comment.Repo, comment.PullNumber, err)
	}
	return nil
}

// VerifyWebhook checks an X-Hub-Signature-256 value against the HMAC-SHA256
// of body. It never succeeds without a secret.
func (c *Client) VerifyWebhook(signature string, body []byte, secret string) bool {
	return VerifySignature(signature, body, secret)
}

// VerifySignature reports whether signature equals "sha256=" followed by the
// hex HMAC-SHA256 of body keyed with secret. The comparison is constant-time.
func VerifySignature(signature string, body []byte, secret string) bool {
	if secret == "" || !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}
	return github.ValidateSignature(signature, body, []byte(secret)) == nil
}

func diffStatus(status string) core.DiffStatus {
	switch status {
	case "added":
		return core.DiffAdded
	case "removed":
		return core.DiffRemoved
	case "renamed":
		return core.DiffRenamed
	default:
		return core.DiffModified
	}
}
