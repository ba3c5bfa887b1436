package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPayload        = errors.New("invalid webhook payload")
	ErrUnsupportedPlatform   = errors.New("unsupported platform")
	ErrPlatformNotConfigured = errors.New("platform is not configured")
	ErrDispatcherStopped     = errors.New("dispatcher is stopped")
	ErrEmptyCompletion       = errors.New("completion returned no content")
)

// CompletionError reports a failed call to an AI backend. StatusCode is zero
// when the request never produced an HTTP response.
type CompletionError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s completion failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}
