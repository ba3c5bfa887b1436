package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/sevigo/review-relay/internal/core"
)

const (
	tongyiTopP      = 0.8
	tongyiMaxTokens = 2000
)

// TongyiClient calls the DashScope text-generation endpoint, which accepts a
// single prompt string instead of a message list.
type TongyiClient struct {
	client      *resty.Client
	apiKey      string
	url         string
	temperature float64
}

type tongyiRequest struct {
	Model      string           `json:"model"`
	Input      tongyiInput      `json:"input"`
	Parameters tongyiParameters `json:"parameters"`
}

type tongyiInput struct {
	Prompt string `json:"prompt"`
}

type tongyiParameters struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
}

type tongyiResponse struct {
	Output struct {
		Text         string `json:"text"`
		FinishReason string `json:"finish_reason"`
	} `json:"output"`
	Usage *struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
	RequestID string `json:"request_id"`
}

// NewTongyiClient creates a DashScope client. An empty url selects the public endpoint.
func NewTongyiClient(apiKey, url string, temperature float64, httpClient *http.Client) *TongyiClient {
	if url == "" {
		url = DefaultTongyiURL
	}
	var rc *resty.Client
	if httpClient != nil {
		rc = resty.NewWithClient(httpClient)
	} else {
		rc = resty.New()
	}
	return &TongyiClient{
		client:      rc,
		apiKey:      apiKey,
		url:         url,
		temperature: temperature,
	}
}

// GenerateCompletion flattens messages into one prompt and requests a completion.
func (c *TongyiClient) GenerateCompletion(ctx context.Context, messages []core.ChatMessage, model string) (*core.AIResponse, error) {
	body := tongyiRequest{
		Model: model,
		Input: tongyiInput{Prompt: FlattenMessages(messages)},
		Parameters: tongyiParameters{
			Temperature: c.temperature,
			TopP:        tongyiTopP,
			MaxTokens:   tongyiMaxTokens,
		},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&tongyiResponse{}).
		ForceContentType("application/json").
		Post(c.url)
	if err != nil {
		cerr := &core.CompletionError{Provider: string(ProviderTongyi), Err: err}
		if resp != nil && resp.RawResponse != nil {
			cerr.StatusCode = resp.StatusCode()
		}
		return nil, cerr
	}
	if !resp.IsSuccess() {
		return nil, &core.CompletionError{
			Provider:   string(ProviderTongyi),
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("DashScope API call failed: %s: %s", resp.Status(), strings.TrimSpace(resp.String())),
		}
	}

	data, ok := resp.Result().(*tongyiResponse)
	if !ok || data == nil {
		return nil, &core.CompletionError{
			Provider:   string(ProviderTongyi),
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("unexpected response type %T", resp.Result()),
		}
	}

	out := &core.AIResponse{Model: model}
	if data.Output.Text != "" {
		text := data.Output.Text
		out.Content = &text
	}
	if data.Usage != nil {
		out.Usage = &core.Usage{
			PromptTokens:     data.Usage.InputTokens,
			CompletionTokens: data.Usage.OutputTokens,
			TotalTokens:      data.Usage.TotalTokens,
		}
	}
	return out, nil
}

// FlattenMessages renders each message as "[label]: content" and joins them
// with blank lines. Roles other than system and user are labelled assistant.
func FlattenMessages(messages []core.ChatMessage) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, fmt.Sprintf("[%s]: %s", roleLabel(m.Role), m.Content))
	}
	return strings.Join(parts, "\n\n")
}

func roleLabel(role string) string {
	switch role {
	case core.RoleSystem:
		return "system"
	case core.RoleUser:
		return "user"
	default:
		return "assistant"
	}
}
