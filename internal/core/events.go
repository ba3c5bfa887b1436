// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"net/http"
	"strings"
)

// Platform identifies the source-control platform that sent a webhook.
type Platform string

const (
	PlatformGitHub Platform = "github"
	PlatformGitLab Platform = "gitlab"
)

// ParsePlatform maps a case-insensitive platform name onto a known Platform.
// The second return value is false for anything other than "github" or "gitlab".
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformGitHub:
		return PlatformGitHub, true
	case PlatformGitLab:
		return PlatformGitLab, true
	default:
		return "", false
	}
}

// String returns the lowercase platform name.
func (p Platform) String() string {
	return string(p)
}

// WebhookEvent is the raw inbound notification exactly as it was received.
// Detection, verification and handling only ever read from it.
type WebhookEvent struct {
	Headers http.Header
	Body    []byte
}
