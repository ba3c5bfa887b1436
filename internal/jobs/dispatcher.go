// Package jobs runs the background phase of a review: completion, answer
// extraction and comment posting.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/sevigo/review-relay/internal/config"
	"github.com/sevigo/review-relay/internal/core"
)

// dispatcher implements core.JobDispatcher. Every accepted task runs on its
// own goroutine under a context derived from the application context, never
// from the webhook request.
type dispatcher struct {
	ctx       context.Context
	reviewJob core.Job
	timeout   time.Duration
	dedupe    bool
	inFlight  singleflight.Group
	mu        sync.Mutex
	stopped   bool
	wg        sync.WaitGroup
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher whose tasks run under ctx, each bounded
// by cfg.Timeout. With cfg.DedupeInFlight, a task for a pull request that is
// already being reviewed joins the running review instead of starting another.
func NewDispatcher(ctx context.Context, reviewJob core.Job, cfg config.ReviewConfig, logger *slog.Logger) core.JobDispatcher {
	return &dispatcher{
		ctx:       ctx,
		reviewJob: reviewJob,
		timeout:   cfg.Timeout,
		dedupe:    cfg.DedupeInFlight,
		logger:    logger,
	}
}

// Dispatch starts the task in the background and returns immediately. The
// request context is not propagated.
func (d *dispatcher) Dispatch(_ context.Context, task *core.ReviewTask) error {
	if err := ValidateTask(task); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return core.ErrDispatcherStopped
	}

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	key := task.Request.Key()
	d.logger.Info("dispatching review task", "task_id", task.ID, "target", key)

	d.wg.Add(1)
	if !d.dedupe {
		go func() {
			defer d.wg.Done()
			d.report(task, d.execute(task), false)
		}()
		return nil
	}

	ch := d.inFlight.DoChan(key, func() (any, error) {
		return task.ID, d.execute(task)
	})
	go func() {
		defer d.wg.Done()
		res := <-ch
		owner, _ := res.Val.(string)
		d.report(task, res.Err, owner != task.ID)
	}()
	return nil
}

// execute runs the review job and converts a panic into an error so one bad
// task cannot take the process down.
func (d *dispatcher) execute(task *core.ReviewTask) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("review task panicked: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(d.ctx, d.timeout)
	defer cancel()

	start := time.Now()
	err = d.reviewJob.Run(ctx, task)
	d.logger.Debug("review task finished", "task_id", task.ID, "duration", time.Since(start))
	return err
}

func (d *dispatcher) report(task *core.ReviewTask, err error, joined bool) {
	target := task.Request.Key()
	if joined {
		d.logger.Info("review task joined an in-flight review", "task_id", task.ID, "target", target)
		return
	}
	if err != nil {
		d.logger.Error("review task failed", "task_id", task.ID, "target", target, "error", err)
		return
	}
	d.logger.Info("review task completed", "task_id", task.ID, "target", target)
}

// Stop refuses new tasks and waits for the running ones to finish.
func (d *dispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	d.logger.Info("stopping dispatcher and waiting for reviews to finish")
	d.wg.Wait()
	d.logger.Info("all review tasks have finished")
}
