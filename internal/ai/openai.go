package ai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/sevigo/review-relay/internal/core"
)

// OpenAIClient talks to any endpoint that speaks the OpenAI chat-completions
// protocol. Messages are passed through unchanged.
type OpenAIClient struct {
	llm         *openai.LLM
	provider    Provider
	temperature float64
}

// NewOpenAIClient creates a client for the OpenAI API, or for a compatible
// endpoint when baseURL is non-empty.
func NewOpenAIClient(provider Provider, apiKey, baseURL string, temperature float64, httpClient *http.Client) (*OpenAIClient, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, openai.WithHTTPClient(httpClient))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", provider, err)
	}
	return &OpenAIClient{llm: llm, provider: provider, temperature: temperature}, nil
}

// GenerateCompletion sends a non-streaming chat completion and returns the
// first choice.
func (c *OpenAIClient) GenerateCompletion(ctx context.Context, messages []core.ChatMessage, model string) (*core.AIResponse, error) {
	resp, err := c.llm.GenerateContent(ctx, toMessageContents(messages),
		llms.WithModel(model),
		llms.WithTemperature(c.temperature),
	)
	if err != nil {
		return nil, &core.CompletionError{Provider: string(c.provider), Err: err}
	}

	// langchaingo drops the model name from the completion, so the requested
	// one is reported.
	out := &core.AIResponse{Model: model}
	if len(resp.Choices) == 0 {
		return out, nil
	}

	choice := resp.Choices[0]
	if choice.Content != "" {
		content := choice.Content
		out.Content = &content
	}
	out.Usage = usageFromGenerationInfo(choice.GenerationInfo)
	return out, nil
}

func toMessageContents(messages []core.ChatMessage) []llms.MessageContent {
	contents := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		contents = append(contents, llms.TextParts(chatMessageType(m.Role), m.Content))
	}
	return contents
}

func chatMessageType(role string) llms.ChatMessageType {
	switch role {
	case core.RoleSystem:
		return llms.ChatMessageTypeSystem
	case core.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

// usageFromGenerationInfo copies the token counters langchaingo attaches to a
// choice. It returns nil when the backend reported none.
func usageFromGenerationInfo(info map[string]any) *core.Usage {
	if info == nil {
		return nil
	}
	prompt, okPrompt := intValue(info["PromptTokens"])
	completion, okCompletion := intValue(info["CompletionTokens"])
	total, okTotal := intValue(info["TotalTokens"])
	if !okPrompt && !okCompletion && !okTotal {
		return nil
	}
	return &core.Usage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      total,
	}
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
