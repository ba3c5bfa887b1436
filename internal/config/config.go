// Package config loads the process-wide configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/review-relay/internal/ai"
	"github.com/sevigo/review-relay/internal/logger"
)

// Config holds the application's configuration values. It is treated as
// immutable once LoadConfig returns.
type Config struct {
	Server  ServerConfig
	Logging logger.Config
	AI      ai.Config
	Review  ReviewConfig
	GitHub  GitHubConfig
	GitLab  GitLabConfig
}

type ServerConfig struct {
	Port string
}

// ReviewConfig controls the background review phase.
type ReviewConfig struct {
	Timeout        time.Duration
	DedupeInFlight bool
}

type GitHubConfig struct {
	Token          string
	WebhookSecret  string
	APIURL         string
	AppID          int64
	PrivateKeyPath string
}

type GitLabConfig struct {
	Token         string
	URL           string
	WebhookSecret string
}

// Enabled reports whether enough is configured to talk to GitHub.
func (c GitHubConfig) Enabled() bool {
	return c.Token != "" || c.AppEnabled()
}

// AppEnabled reports whether GitHub App credentials are configured.
func (c GitHubConfig) AppEnabled() bool {
	return c.AppID != 0 && c.PrivateKeyPath != ""
}

// Secret returns the webhook secret, falling back to the API token.
func (c GitHubConfig) Secret() string {
	if c.WebhookSecret != "" {
		return c.WebhookSecret
	}
	return c.Token
}

// Enabled reports whether enough is configured to talk to GitLab.
func (c GitLabConfig) Enabled() bool {
	return c.Token != "" && c.URL != ""
}

// Secret returns the webhook token, falling back to the private token.
func (c GitLabConfig) Secret() string {
	if c.WebhookSecret != "" {
		return c.WebhookSecret
	}
	return c.Token
}

// Platforms lists the names of the configured platforms.
func (c *Config) Platforms() []string {
	var names []string
	if c.GitLab.Enabled() {
		names = append(names, "GitLab")
	}
	if c.GitHub.Enabled() {
		names = append(names, "GitHub")
	}
	return names
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")
	viper.SetDefault("AI_TEMPERATURE", ai.DefaultTemperature)
	viper.SetDefault("TONGYI_API_URL", ai.DefaultTongyiURL)
	viper.SetDefault("REVIEW_TIMEOUT", "5m")
	viper.SetDefault("REVIEW_DEDUPE_IN_FLIGHT", true)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Logging: logger.Config{
			Level:  strings.ToLower(viper.GetString("LOG_LEVEL")),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
		AI: ai.Config{
			Model:         viper.GetString("AI_MODEL"),
			Temperature:   viper.GetFloat64("AI_TEMPERATURE"),
			OpenAIAPIKey:  viper.GetString("OPENAI_API_KEY"),
			OpenAIAPIURL:  viper.GetString("OPENAI_API_URL"),
			OpenAIAuthKey: viper.GetString("OPENAI_AUTH_KEY"),
			TongyiAPIKey:  viper.GetString("TONGYI_API_KEY"),
			TongyiAPIURL:  viper.GetString("TONGYI_API_URL"),
		},
		Review: ReviewConfig{
			Timeout:        viper.GetDuration("REVIEW_TIMEOUT"),
			DedupeInFlight: viper.GetBool("REVIEW_DEDUPE_IN_FLIGHT"),
		},
		GitHub: GitHubConfig{
			Token:          viper.GetString("GITHUB_TOKEN"),
			WebhookSecret:  viper.GetString("GITHUB_WEBHOOK_SECRET"),
			APIURL:         viper.GetString("GITHUB_API_URL"),
			AppID:          viper.GetInt64("GITHUB_APP_ID"),
			PrivateKeyPath: viper.GetString("GITHUB_PRIVATE_KEY_PATH"),
		},
		GitLab: GitLabConfig{
			Token:         viper.GetString("GITLAB_TOKEN"),
			URL:           viper.GetString("GITLAB_URL"),
			WebhookSecret: viper.GetString("GITLAB_WEBHOOK_SECRET"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is complete enough to serve webhooks.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must be set")
	}
	if len(c.Platforms()) == 0 {
		return fmt.Errorf("at least one platform must be configured: GitLab needs GITLAB_TOKEN and GITLAB_URL, GitHub needs GITHUB_TOKEN or GITHUB_APP_ID with GITHUB_PRIVATE_KEY_PATH")
	}
	if c.Review.Timeout <= 0 {
		return fmt.Errorf("REVIEW_TIMEOUT must be positive, got %s", c.Review.Timeout)
	}
	if err := c.AI.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}
	return nil
}
