// Package gitlab implements the platform client for GitLab merge requests.
package gitlab

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/sevigo/review-relay/internal/core"
)

const apiPath = "/api/v4"

// Client implements core.PlatformClient on top of the GitLab REST API.
// Owner is the full namespace path of the project and repo its path.
type Client struct {
	client *gitlab.Client
	logger *slog.Logger
}

var _ core.PlatformClient = (*Client)(nil)

// NewClient creates a client authenticated with a private token. baseURL may
// point at the instance root or at its /api/v4 endpoint.
func NewClient(token, baseURL string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	opts := []gitlab.ClientOptionFunc{
		gitlab.WithBaseURL(APIURL(baseURL)),
	}
	if httpClient != nil {
		opts = append(opts, gitlab.WithHTTPClient(httpClient))
	}

	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}
	return &Client{client: client, logger: logger}, nil
}

// APIURL normalizes an instance URL to its REST API base.
func APIURL(baseURL string) string {
	u := strings.TrimSuffix(baseURL, "/")
	if !strings.HasSuffix(u, apiPath) {
		u += apiPath
	}
	return u
}

func projectID(owner, repo string) string {
	return owner + "/" + repo
}

// GetCodeDiff compares two refs of the project.
func (c *Client) GetCodeDiff(ctx context.Context, owner, repo, base, head string) ([]core.CodeDiff, error) {
	pid := projectID(owner, repo)
	opts := &gitlab.CompareOptions{
		From:    gitlab.Ptr(base),
		To:      gitlab.Ptr(head),
		Unidiff: gitlab.Ptr(true),
	}

	compare, _, err := c.client.Repositories.Compare(pid, opts, gitlab.WithContext(ctx))
	if err != nil {
		c.logger.Error("failed to compare refs", "project", pid, "from", base, "to", head, "error", err)
		return nil, fmt.Errorf("failed to compare %s...%s in %s: %w", base, head, pid, err)
	}
	if compare == nil {
		return nil, nil
	}

	diffs := make([]core.CodeDiff, 0, len(compare.Diffs))
	for _, d := range compare.Diffs {
		diffs = append(diffs, core.CodeDiff{
			Filename: d.NewPath,
			Patch:    d.Diff,
			Status:   diffStatus(d),
		})
	}
	return diffs, nil
}

// GetFileContent fetches the raw content of each path at ref. Paths that do
// not exist at ref are left out of the result.
func (c *Client) GetFileContent(ctx context.Context, owner, repo string, paths []string, ref string) ([]core.FileContent, error) {
	pid := projectID(owner, repo)
	results := make([]core.FileContent, 0, len(paths))
	opts := &gitlab.GetRawFileOptions{Ref: gitlab.Ptr(ref)}

	for _, path := range paths {
		raw, resp, err := c.client.RepositoryFiles.GetRawFile(pid, path, opts, gitlab.WithContext(ctx))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				c.logger.Debug("file not present at ref, skipping", "project", pid, "path", path, "ref", ref)
			} else {
				c.logger.Warn("failed to get file content, skipping", "project", pid, "path", path, "ref", ref, "error", err)
			}
			continue
		}
		results = append(results, core.FileContent{Filename: path, Content: string(raw)})
	}

	return results, nil
}

// PostComment adds a note to the merge request.
func (c *Client) PostComment(ctx context.Context, comment core.Comment) error {
	pid := projectID(comment.Owner, comment.Repo)
	opts := &gitlab.CreateMergeRequestNoteOptions{Body: gitlab.Ptr(comment.Body)}

	_, _, err := c.client.Notes.CreateMergeRequestNote(pid, comment.PullNumber, opts, gitlab.WithContext(ctx))
	if err != nil {
		c.logger.Error("failed to create merge request note", "project", pid, "mr", comment.PullNumber, "error", err)
		return fmt.Errorf("failed to post note on %s!%d: %w", pid, comment.PullNumber, err)
	}
	return nil
}

// VerifyWebhook compares the X-Gitlab-Token header with the configured secret.
// GitLab sends the shared token verbatim, there is no signature to compute.
func (c *Client) VerifyWebhook(signature string, _ []byte, secret string) bool {
	return VerifyToken(signature, secret)
}

// VerifyToken reports whether token equals a non-empty secret.
func VerifyToken(token, secret string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}

func diffStatus(d *gitlab.Diff) core.DiffStatus {
	switch {
	case d.NewFile:
		return core.DiffAdded
	case d.DeletedFile:
		return core.DiffRemoved
	case d.RenamedFile:
		return core.DiffRenamed
	default:
		return core.DiffModified
	}
}
