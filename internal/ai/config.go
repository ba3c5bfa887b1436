// Package ai implements completion clients for the supported language-model
// backends behind the core.AIClient contract.
package ai

import "fmt"

const (
	DefaultTemperature = 0.2
	DefaultTongyiURL   = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"
)

// Config carries the AI settings read at startup.
type Config struct {
	Model         string
	Temperature   float64
	OpenAIAPIKey  string
	OpenAIAPIURL  string
	OpenAIAuthKey string
	TongyiAPIKey  string
	TongyiAPIURL  string
}

// Provider returns the backend family selected by the configured model.
func (c Config) Provider() Provider {
	return DetectProvider(c.Model)
}

func (c Config) hasCustomEndpoint() bool {
	return c.OpenAIAPIURL != "" && c.OpenAIAuthKey != ""
}

// Validate checks that the credentials required by the selected provider exist.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("AI_MODEL must be set")
	}
	switch c.Provider() {
	case ProviderTongyi:
		if c.TongyiAPIKey == "" {
			return fmt.Errorf("model %s requires TONGYI_API_KEY", c.Model)
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" && !c.hasCustomEndpoint() {
			return fmt.Errorf("model %s requires OPENAI_API_KEY or OPENAI_API_URL with OPENAI_AUTH_KEY", c.Model)
		}
	case ProviderCustom:
		if !c.hasCustomEndpoint() {
			return fmt.Errorf("custom model %s requires OPENAI_API_URL and OPENAI_AUTH_KEY", c.Model)
		}
	}
	return nil
}
