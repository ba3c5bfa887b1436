package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/mocks"
)

func validTask(client core.PlatformClient) *core.ReviewTask {
	return &core.ReviewTask{
		Request: &core.ReviewRequest{
			Platform: core.PlatformGitHub,
			RepoInfo: core.RepoInfo{Owner: "acme", Repo: "svc", PullNumber: 7},
			Head:     "head-sha",
			Messages: []core.ChatMessage{{Role: core.RoleUser, Content: "diff"}},
		},
		Platform: client,
	}
}

func TestValidateTask(t *testing.T) {
	client := mocks.NewMockPlatformClient(gomock.NewController(t))

	tests := []struct {
		name    string
		mutate  func(task *core.ReviewTask) *core.ReviewTask
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(task *core.ReviewTask) *core.ReviewTask { return task },
		},
		{
			name:    "nil task",
			mutate:  func(*core.ReviewTask) *core.ReviewTask { return nil },
			wantErr: true,
		},
		{
			name: "no platform client",
			mutate: func(task *core.ReviewTask) *core.ReviewTask {
				task.Platform = nil
				return task
			},
			wantErr: true,
		},
		{
			name: "no request",
			mutate: func(task *core.ReviewTask) *core.ReviewTask {
				task.Request = nil
				return task
			},
			wantErr: true,
		},
		{
			name: "unknown platform",
			mutate: func(task *core.ReviewTask) *core.ReviewTask {
				task.Request.Platform = "bitbucket"
				return task
			},
			wantErr: true,
		},
		{
			name: "missing repo",
			mutate: func(task *core.ReviewTask) *core.ReviewTask {
				task.Request.RepoInfo.Repo = ""
				return task
			},
			wantErr: true,
		},
		{
			name: "zero number",
			mutate: func(task *core.ReviewTask) *core.ReviewTask {
				task.Request.RepoInfo.PullNumber = 0
				return task
			},
			wantErr: true,
		},
		{
			name: "no messages",
			mutate: func(task *core.ReviewTask) *core.ReviewTask {
				task.Request.Messages = nil
				return task
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTask(tt.mutate(validTask(client)))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
