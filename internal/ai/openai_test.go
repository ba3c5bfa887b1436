package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-relay/internal/core"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Stream      bool    `json:"stream"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestOpenAIClient_GenerateCompletion(t *testing.T) {
	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "LGTM"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 2, "total_tokens": 14}
		}`))
	}))
	defer server.Close()

	client, err := NewOpenAIClient(ProviderCustom, "sk-test", server.URL, 0.2, server.Client())
	require.NoError(t, err)

	resp, err := client.GenerateCompletion(context.Background(), reviewMessages, "gpt-4o")
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", got.Model)
	assert.False(t, got.Stream)
	assert.InDelta(t, 0.2, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "assistant", got.Messages[2].Role)
	assert.Equal(t, "Review this diff.", got.Messages[1].Content)

	require.NotNil(t, resp.Content)
	assert.Equal(t, "LGTM", *resp.Content)
	assert.Equal(t, &core.Usage{PromptTokens: 12, CompletionTokens: 2, TotalTokens: 14}, resp.Usage)
}

func TestOpenAIClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
	}))
	defer server.Close()

	client, err := NewOpenAIClient(ProviderOpenAI, "sk-test", server.URL, DefaultTemperature, server.Client())
	require.NoError(t, err)

	_, err = client.GenerateCompletion(context.Background(), reviewMessages, "gpt-4o")
	var cerr *core.CompletionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "openai", cerr.Provider)
}

func TestUsageFromGenerationInfo(t *testing.T) {
	assert.Nil(t, usageFromGenerationInfo(nil))
	assert.Nil(t, usageFromGenerationInfo(map[string]any{"StopReason": "stop"}))
	assert.Equal(t,
		&core.Usage{PromptTokens: 5, CompletionTokens: 1, TotalTokens: 6},
		usageFromGenerationInfo(map[string]any{"PromptTokens": 5, "CompletionTokens": int64(1), "TotalTokens": float64(6)}),
	)
}
