package core

import "context"

// PlatformClient is the capability every source-control platform exposes:
// reading diffs and file contents, posting a review, and checking webhook
// authenticity.
//
//go:generate mockgen -destination=../../mocks/mock_platform_client.go -package=mocks . PlatformClient,PlatformClientFactory
type PlatformClient interface {
	// GetCodeDiff returns one CodeDiff per file changed between base and head.
	// An empty result means there is nothing to review.
	GetCodeDiff(ctx context.Context, owner, repo, base, head string) ([]CodeDiff, error)
	// GetFileContent fetches each path at ref. Paths that do not exist at ref
	// are skipped, so the result may be shorter than paths.
	GetFileContent(ctx context.Context, owner, repo string, paths []string, ref string) ([]FileContent, error)
	// PostComment publishes a review body on the change.
	PostComment(ctx context.Context, comment Comment) error
	// VerifyWebhook reports whether signature authenticates body under secret.
	VerifyWebhook(signature string, body []byte, secret string) bool
}

// PlatformClientFactory builds a PlatformClient for a single webhook invocation.
type PlatformClientFactory interface {
	NewClient(ctx context.Context, platform Platform, event *WebhookEvent) (PlatformClient, error)
}

// WebhookHandler turns a verified webhook body into a ReviewRequest. The body
// is authenticated before a handler is built.
type WebhookHandler interface {
	// Handle returns nil without error when the event is not relevant or
	// there is nothing to review.
	Handle(ctx context.Context, body []byte) (*ReviewRequest, error)
}

// AIClient sends a chat-style message sequence to a completion backend.
//
//go:generate mockgen -destination=../../mocks/mock_ai_client.go -package=mocks . AIClient
type AIClient interface {
	GenerateCompletion(ctx context.Context, messages []ChatMessage, model string) (*AIResponse, error)
}
