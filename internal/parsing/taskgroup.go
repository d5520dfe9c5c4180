package parsing

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// TaskGroup runs named tasks concurrently and collects per-task failures.
// Unlike a bare errgroup, one task failing never cancels its siblings: each
// field group degrades on its own, so a failure in one must not starve the
// others.
type TaskGroup struct {
	group *errgroup.Group
	ctx   context.Context

	mu       sync.Mutex
	failures map[string]error
}

// NewTaskGroup returns a TaskGroup whose tasks observe ctx for deadlines but
// never cancel each other.
func NewTaskGroup(ctx context.Context) *TaskGroup {
	group, _ := errgroup.WithContext(ctx)
	return &TaskGroup{
		group:    group,
		ctx:      ctx,
		failures: make(map[string]error),
	}
}

// Go starts fn under the given name. A returned error is recorded against the
// name; it is never propagated as a group cancellation.
func (g *TaskGroup) Go(name string, fn func(ctx context.Context) error) {
	g.group.Go(func() error {
		if err := fn(g.ctx); err != nil {
			g.mu.Lock()
			g.failures[name] = err
			g.mu.Unlock()
		}
		return nil
	})
}

// Wait blocks until every task has finished and returns the failures by task
// name. An empty map means every task succeeded.
func (g *TaskGroup) Wait() map[string]error {
	g.group.Wait() //nolint:errcheck // tasks never return errors to the errgroup

	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string]error, len(g.failures))
	for k, v := range g.failures {
		out[k] = v
	}
	return out
}
