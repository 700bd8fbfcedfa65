// Package workers provides abstractions for running the start-up and
// shutdown steps of the client in a unified way.
//
// It defines the Worker interface and a Workers aggregate that runs a list
// of workers in order and stops at the first failure.
package workers

import "context"

// Worker is the interface that must be implemented by any lifecycle step.
//
// Implementations are expected to return once their step is done. Long
// running work is spawned internally.
//
// Example implementation:
//
//	type restoreSession struct{ tokens service.TokenManager }
//
//	func (w *restoreSession) Run(ctx context.Context) error {
//	    w.tokens.Start(ctx)
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts an ordinary function to the [Worker] interface.
type Func func(ctx context.Context) error

// Run calls f(ctx).
func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
