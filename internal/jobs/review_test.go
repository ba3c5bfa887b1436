package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func TestReviewJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	ai := mocks.NewMockAIClient(ctrl)
	client := mocks.NewMockPlatformClient(ctrl)
	task := validTask(client)

	ai.EXPECT().GenerateCompletion(gomock.Any(), task.Request.Messages, "gpt-4o-mini").
		Return(&core.AIResponse{
			Content: strPtr("Looks good."),
			Model:   "gpt-4o-mini",
			Usage:   &core.Usage{PromptTokens: 10, CompletionTokens: 3, TotalTokens: 13},
		}, nil).Times(1)
	client.EXPECT().PostComment(gomock.Any(), core.Comment{
		Owner:      "acme",
		Repo:       "svc",
		PullNumber: 7,
		Body:       "Looks good.",
	}).Return(nil).Times(1)

	job := NewReviewJob(ai, "gpt-4o-mini", testLogger())
	require.NoError(t, job.Run(context.Background(), task))
}

func TestReviewJob_Run_Failures(t *testing.T) {
	upstream := &core.CompletionError{Provider: "openai", StatusCode: 502, Err: errors.New("bad gateway")}

	tests := []struct {
		name    string
		setup   func(ai *mocks.MockAIClient, client *mocks.MockPlatformClient)
		wantErr error
	}{
		{
			name: "completion error",
			setup: func(ai *mocks.MockAIClient, client *mocks.MockPlatformClient) {
				ai.EXPECT().GenerateCompletion(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstream)
				client.EXPECT().PostComment(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: upstream,
		},
		{
			name: "empty completion",
			setup: func(ai *mocks.MockAIClient, client *mocks.MockPlatformClient) {
				ai.EXPECT().GenerateCompletion(gomock.Any(), gomock.Any(), gomock.Any()).Return(&core.AIResponse{Model: "qwen-plus"}, nil)
				client.EXPECT().PostComment(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: core.ErrEmptyCompletion,
		},
		{
			name: "post failure",
			setup: func(ai *mocks.MockAIClient, client *mocks.MockPlatformClient) {
				ai.EXPECT().GenerateCompletion(gomock.Any(), gomock.Any(), gomock.Any()).Return(&core.AIResponse{Content: strPtr("review")}, nil)
				client.EXPECT().PostComment(gomock.Any(), gomock.Any()).Return(errors.New("forbidden"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ai := mocks.NewMockAIClient(ctrl)
			client := mocks.NewMockPlatformClient(ctrl)
			tt.setup(ai, client)

			err := NewReviewJob(ai, "model", testLogger()).Run(context.Background(), validTask(client))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestReviewJob_Run_InvalidTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	ai := mocks.NewMockAIClient(ctrl)
	ai.EXPECT().GenerateCompletion(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := NewReviewJob(ai, "model", testLogger()).Run(context.Background(), &core.ReviewTask{})
	assert.Error(t, err)
}
