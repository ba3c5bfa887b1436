// Package platform classifies inbound webhooks and builds the matching
// platform client for each one.
package platform

import (
	"net/http"
	"strings"

	"github.com/sevigo/review-relay/internal/core"
)

const (
	HeaderPlatform        = "X-Platform"
	HeaderGitHubEvent     = "X-GitHub-Event"
	HeaderGitHubSignature = "X-Hub-Signature-256"
	HeaderGitLabEvent     = "X-Gitlab-Event"
	HeaderGitLabToken     = "X-Gitlab-Token"
	HeaderUserAgent       = "User-Agent"
)

// Detect classifies a webhook by its headers. The first rule that matches
// wins: an explicit X-Platform override, then GitHub headers, then GitLab
// headers, then the user agent. An override naming an unknown platform is
// treated as no match.
func Detect(h http.Header) (core.Platform, bool) {
	if override := h.Get(HeaderPlatform); override != "" {
		return core.ParsePlatform(override)
	}

	if h.Get(HeaderGitHubEvent) != "" || h.Get(HeaderGitHubSignature) != "" {
		return core.PlatformGitHub, true
	}
	if h.Get(HeaderGitLabEvent) != "" || h.Get(HeaderGitLabToken) != "" {
		return core.PlatformGitLab, true
	}

	ua := strings.ToLower(h.Get(HeaderUserAgent))
	switch {
	case strings.Contains(ua, "github"):
		return core.PlatformGitHub, true
	case strings.Contains(ua, "gitlab"):
		return core.PlatformGitLab, true
	}
	return "", false
}

// SignatureHeader names the header carrying the webhook signature or token.
func SignatureHeader(p core.Platform) string {
	if p == core.PlatformGitLab {
		return HeaderGitLabToken
	}
	return HeaderGitHubSignature
}
