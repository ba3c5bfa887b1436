package platform

import (
	"github.com/sevigo/review-relay/internal/core"
	"github.com/sevigo/review-relay/internal/github"
	"github.com/sevigo/review-relay/internal/gitlab"
)

// Verify authenticates a webhook body for p without building a client, so a
// forged delivery is rejected before any credentials are loaded. It applies
// the same check as the platform client's VerifyWebhook and is false for an
// empty secret or an unknown platform.
func Verify(p core.Platform, signature string, body []byte, secret string) bool {
	switch p {
	case core.PlatformGitHub:
		return github.VerifySignature(signature, body, secret)
	case core.PlatformGitLab:
		return gitlab.VerifyToken(signature, secret)
	default:
		return false
	}
}
