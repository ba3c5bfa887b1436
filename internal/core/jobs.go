package core

import (
	"context"
)

// ReviewTask is the value handed from the request-handling phase to the
// background phase. It carries the finished request together with the platform
// client that was constructed for this invocation.
type ReviewTask struct {
	ID       string
	Request  *ReviewRequest
	Platform PlatformClient
}

// JobDispatcher defines the contract for a system that can accept background
// review tasks for asynchronous processing. This interface decouples the
// webhook handler from the job execution mechanism.
type JobDispatcher interface {
	// Dispatch hands a task off for background processing and returns
	// immediately. It returns an error only if the task cannot be accepted,
	// for example because the dispatcher is shutting down.
	Dispatch(ctx context.Context, task *ReviewTask) error
	// Stop refuses new tasks and waits for running ones to finish.
	Stop()
}

// Job represents a single, executable unit of background work.
type Job interface {
	// Run executes the job's logic. It receives a context for managing its
	// lifecycle and the task containing the data needed to perform its work.
	Run(ctx context.Context, task *ReviewTask) error
}
