package jobs

import (
	"fmt"

	"github.com/sevigo/review-relay/internal/core"
)

// ValidateTask checks that a task carries everything the background phase
// needs before it is accepted.
func ValidateTask(task *core.ReviewTask) error {
	if task == nil {
		return fmt.Errorf("review task is nil")
	}
	if task.Platform == nil {
		return fmt.Errorf("review task has no platform client")
	}

	req := task.Request
	if req == nil {
		return fmt.Errorf("review task has no request")
	}
	if _, ok := core.ParsePlatform(string(req.Platform)); !ok {
		return fmt.Errorf("%w: %q", core.ErrUnsupportedPlatform, req.Platform)
	}
	if req.RepoInfo.Owner == "" || req.RepoInfo.Repo == "" {
		return fmt.Errorf("review request for %s has no repository", req.Platform)
	}
	if req.RepoInfo.PullNumber <= 0 {
		return fmt.Errorf("review request for %s/%s has invalid number %d", req.RepoInfo.Owner, req.RepoInfo.Repo, req.RepoInfo.PullNumber)
	}
	if len(req.Messages) == 0 {
		return fmt.Errorf("review request for %s has no messages", req.Key())
	}
	return nil
}
