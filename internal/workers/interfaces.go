// Package workers runs the terminal's background loops: the connectivity
// monitor and the periodic reconciliation job.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is done or the worker
// fails; a nil return means a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// OnlineSetter receives connectivity transitions.
type OnlineSetter interface {
	SetOnline(ctx context.Context, online bool)
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
