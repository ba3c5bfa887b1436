// Package prompt turns changed files into the chat messages sent to the AI
// backend, and turns the backend's answer into the comment that is posted.
package prompt

import (
	"fmt"
	"strings"

	"github.com/sevigo/review-relay/internal/core"
)

// Builder renders review prompts for one AI provider.
type Builder struct {
	manager *Manager
	variant Variant
}

// NewBuilder creates a Builder. variant is usually the AI provider name; an
// unknown variant uses the default templates.
func NewBuilder(manager *Manager, variant Variant) *Builder {
	if variant == "" {
		variant = DefaultVariant
	}
	return &Builder{manager: manager, variant: variant}
}

// BuildPrompt produces the message sequence for a review: the system
// instructions, one user message per original file, then one user message
// holding every diff. Output depends only on the inputs and their order.
func (b *Builder) BuildPrompt(oldFiles []core.FileContent, diffs []core.CodeDiff) ([]core.ChatMessage, error) {
	system, err := b.manager.Render(ReviewSystemPrompt, b.variant, nil)
	if err != nil {
		return nil, err
	}

	messages := make([]core.ChatMessage, 0, len(oldFiles)+2)
	messages = append(messages, core.ChatMessage{Role: core.RoleSystem, Content: strings.TrimSpace(system)})

	for _, f := range oldFiles {
		text, err := b.manager.Render(OriginalFilePrompt, b.variant, f)
		if err != nil {
			return nil, fmt.Errorf("render original file %s: %w", f.Filename, err)
		}
		messages = append(messages, core.ChatMessage{Role: core.RoleUser, Content: strings.TrimSpace(text)})
	}

	changes, err := b.manager.Render(ChangesPrompt, b.variant, diffs)
	if err != nil {
		return nil, err
	}
	messages = append(messages, core.ChatMessage{Role: core.RoleUser, Content: strings.TrimSpace(changes)})

	return messages, nil
}

// BuildAnswer extracts the comment body from a completion.
func BuildAnswer(resp *core.AIResponse) (string, error) {
	if resp == nil || resp.Content == nil || strings.TrimSpace(*resp.Content) == "" {
		return "", core.ErrEmptyCompletion
	}
	return *resp.Content, nil
}
