//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/review-relay/internal/app"
	"github.com/sevigo/review-relay/internal/config"
	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/platform"
	"github.com/sevigo/review-relay/internal/prompt"
	"github.com/sevigo/review-relay/internal/server"
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		server.NewServer,
		config.LoadConfig,
		prompt.NewManager,
		platform.NewFactory,
		wire.Bind(new(core.PlatformClientFactory), new(*platform.Factory)),
		provideLoggerConfig,
		provideLogWriter,
		provideSlogLogger,
		provideHTTPClient,
		provideAIClient,
		providePromptBuilder,
		provideReviewJob,
		provideDispatcher,
	)
	return &app.App{}, nil, nil
}
