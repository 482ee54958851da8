package collections

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// TaskRunner runs independent jobs on their own goroutines, bounded by a limit, and collects
// the first failure. The harness uses it to run test suites side by side; each job must own
// the containers it touches.
type TaskRunner struct {
	group *errgroup.Group
	ctx   context.Context
}

// NewTaskRunner returns a TaskRunner bound to ctx. A limit <= 0 means unbounded.
func NewTaskRunner(ctx context.Context, limit int) *TaskRunner {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	return &TaskRunner{group: g, ctx: gctx}
}

// Context is done when the parent context ends or a job returns an error.
func (r *TaskRunner) Context() context.Context {
	return r.ctx
}

// Go starts job, blocking while the limit is reached. job receives the runner's context.
func (r *TaskRunner) Go(job func(ctx context.Context) error) {
	r.group.Go(func() error {
		return job(r.ctx)
	})
}

// Wait blocks until all started jobs return and reports the first error.
func (r *TaskRunner) Wait() error {
	return r.group.Wait()
}
