// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers as one unit.
package workers

import "context"

// Worker is a background component with an explicit lifecycle.
//
// Start must not block for the lifetime of the worker: long-running work is
// expected to run in goroutines owned by the worker. Stop waits until that
// work has finished.
type Worker interface {
	Start(ctx context.Context) error
	Stop()
}
