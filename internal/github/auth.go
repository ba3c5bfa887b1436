package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"
)

// NewPATClient creates a client authenticated with a personal access token.
// apiURL selects a GitHub Enterprise instance; empty means github.com.
func NewPATClient(ctx context.Context, token, apiURL string, logger *slog.Logger) (*Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	client, err := withBaseURL(github.NewClient(oauth2.NewClient(ctx, ts)), apiURL)
	if err != nil {
		return nil, err
	}
	return NewClient(client, logger), nil
}

// NewInstallationClient creates a client that acts as the given GitHub App
// installation. Tokens are minted and refreshed by the transport.
func NewInstallationClient(appID, installationID int64, privateKeyPath, apiURL string, logger *slog.Logger) (*Client, error) {
	logger.Debug("creating GitHub installation client", "app_id", appID, "installation_id", installationID)

	privateKey, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key from %s: %w", privateKeyPath, err)
	}

	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub App installation transport: %w", err)
	}
	if apiURL != "" {
		itr.BaseURL = strings.TrimSuffix(apiURL, "/")
	}

	client, err := withBaseURL(github.NewClient(&http.Client{Transport: itr}), apiURL)
	if err != nil {
		return nil, err
	}
	return NewClient(client, logger), nil
}

func withBaseURL(client *github.Client, apiURL string) (*github.Client, error) {
	if apiURL == "" {
		return client, nil
	}
	enterprise, err := client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
	}
	return enterprise, nil
}
