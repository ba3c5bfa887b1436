package ai

import (
	"net"
	"net/http"
	"time"

	"github.com/sevigo/review-relay/internal/core"
)

// NewHTTPClient returns the transport shared by the AI clients. Its timeout
// bounds how long a single completion may hang.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxConnsPerHost:     10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: 5 * time.Minute,
	}
}

// NewClient creates the AI client for the provider selected by cfg.Model.
func NewClient(cfg Config, httpClient *http.Client) (core.AIClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider := cfg.Provider()
	if provider == ProviderTongyi {
		return NewTongyiClient(cfg.TongyiAPIKey, cfg.TongyiAPIURL, cfg.Temperature, httpClient), nil
	}

	apiKey, baseURL := cfg.OpenAIAPIKey, ""
	if cfg.hasCustomEndpoint() {
		apiKey, baseURL = cfg.OpenAIAuthKey, cfg.OpenAIAPIURL
	}
	client, err := NewOpenAIClient(provider, apiKey, baseURL, cfg.Temperature, httpClient)
	if err != nil {
		return nil, err
	}
	return client, nil
}
