package core

import "fmt"

// DiffStatus describes how a single file changed between two refs.
type DiffStatus string

const (
	DiffAdded    DiffStatus = "added"
	DiffRemoved  DiffStatus = "removed"
	DiffModified DiffStatus = "modified"
	DiffRenamed  DiffStatus = "renamed"
)

// CodeDiff is the unified-format patch of one changed file.
type CodeDiff struct {
	Filename string
	Patch    string
	Status   DiffStatus
}

// FileContent is the content of a file at a specific ref.
type FileContent struct {
	Filename string
	Content  string
}

// Chat roles understood by every AI backend.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single entry of a chat-style prompt.
type ChatMessage struct {
	Role    string
	Content string
}

// RepoInfo identifies the change under review within its platform.
type RepoInfo struct {
	Owner      string
	Repo       string
	PullNumber int
}

// ReviewRequest is everything the background phase needs to produce and
// publish a review. It is built once by a WebhookHandler and never modified.
type ReviewRequest struct {
	Platform Platform
	RepoInfo RepoInfo
	// Head is the revision the diff was taken at.
	Head     string
	Messages []ChatMessage
}

// Key identifies the revision a request reviews. Two requests with the same
// key would post the same review to the same pull/merge request thread; a new
// push changes Head and so the key.
func (r *ReviewRequest) Key() string {
	return fmt.Sprintf("%s:%s/%s#%d@%s", r.Platform, r.RepoInfo.Owner, r.RepoInfo.Repo, r.RepoInfo.PullNumber, r.Head)
}

// Usage holds token counters reported by an AI backend.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// AIResponse is the provider-independent result of a completion call.
// Content is nil when the backend returned no text.
type AIResponse struct {
	Content *string
	Model   string
	Usage   *Usage
}

// Comment is a review body to be published on a pull/merge request.
type Comment struct {
	Owner      string
	Repo       string
	PullNumber int
	Body       string
}
