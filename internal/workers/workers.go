package workers

import (
	"context"
	"fmt"
)

// Workers runs its workers in the order they were given.
type Workers struct {
	workers []Worker
}

// New returns an aggregate of ws.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run runs every worker in turn. It stops at the first error, or when ctx is
// done before the next worker starts.
func (w *Workers) Run(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := worker.Run(ctx); err != nil {
			return fmt.Errorf("worker %d: %w", i, err)
		}
	}
	return nil
}
