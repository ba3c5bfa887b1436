package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/prompt"
)

// ReviewJob asks the AI backend for a review and posts it on the change.
type ReviewJob struct {
	ai     core.AIClient
	model  string
	logger *slog.Logger
}

// NewReviewJob creates a ReviewJob that requests completions from model.
func NewReviewJob(ai core.AIClient, model string, logger *slog.Logger) core.Job {
	if ai == nil {
		panic("AI client cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ReviewJob{ai: ai, model: model, logger: logger}
}

// Run executes the background phase for one task. Nothing is posted unless
// the completion produced a non-empty answer.
func (j *ReviewJob) Run(ctx context.Context, task *core.ReviewTask) error {
	if err := ValidateTask(task); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	req := task.Request
	info := req.RepoInfo

	j.logger.Info("generating AI review", "task_id", task.ID, "target", req.Key(), "model", j.model, "messages", len(req.Messages))

	resp, err := j.ai.GenerateCompletion(ctx, req.Messages, j.model)
	if err != nil {
		return fmt.Errorf("AI completion failed: %w", err)
	}
	if resp.Usage != nil {
		j.logger.Info("AI review generated",
			"task_id", task.ID,
			"model", resp.Model,
			"prompt_tokens", resp.Usage.PromptTokens,
			"completion_tokens", resp.Usage.CompletionTokens,
			"total_tokens", resp.Usage.TotalTokens,
		)
	}

	body, err := prompt.BuildAnswer(resp)
	if err != nil {
		return fmt.Errorf("failed to build review comment: %w", err)
	}

	comment := core.Comment{
		Owner:      info.Owner,
		Repo:       info.Repo,
		PullNumber: info.PullNumber,
		Body:       body,
	}
	if err := task.Platform.PostComment(ctx, comment); err != nil {
		return fmt.Errorf("failed to post review comment: %w", err)
	}

	j.logger.Info("review comment posted", "task_id", task.ID, "platform", req.Platform, "target", req.Key())
	return nil
}
