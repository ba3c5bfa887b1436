// Package wire assembles the application's dependency graph.
package wire

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/sevigo/review-relay/internal/ai"
	"github.com/sevigo/review-relay/internal/config"
	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/jobs"
	"github.com/sevigo/review-relay/internal/logger"
	"github.com/sevigo/review-relay/internal/prompt"
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

// provideLogWriter returns the log destination and closes it on cleanup when
// it is a file.
func provideLogWriter(cfg logger.Config) (io.Writer, func()) {
	w := logger.NewWriter(cfg)
	cleanup := func() {}
	if f, ok := w.(io.Closer); ok && cfg.Output == "file" {
		cleanup = func() { _ = f.Close() }
	}
	return w, cleanup
}

func provideSlogLogger(cfg logger.Config, w io.Writer) *slog.Logger {
	l := logger.NewLogger(cfg, w)
	slog.SetDefault(l)
	return l
}

func provideHTTPClient() *http.Client {
	return ai.NewHTTPClient()
}

func provideAIClient(cfg *config.Config, httpClient *http.Client) (core.AIClient, error) {
	return ai.NewClient(cfg.AI, httpClient)
}

func providePromptBuilder(pm *prompt.Manager, cfg *config.Config) *prompt.Builder {
	return prompt.NewBuilder(pm, prompt.Variant(cfg.AI.Provider()))
}

func provideReviewJob(client core.AIClient, cfg *config.Config, l *slog.Logger) core.Job {
	return jobs.NewReviewJob(client, cfg.AI.Model, l)
}

func provideDispatcher(ctx context.Context, job core.Job, cfg *config.Config, l *slog.Logger) core.JobDispatcher {
	return jobs.NewDispatcher(ctx, job, cfg.Review, l)
}
