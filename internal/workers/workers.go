package workers

import (
	"context"
	"fmt"
)

// Workers starts workers in registration order and stops them in reverse
// order.
type Workers struct {
	workers []Worker
	started int
}

// NewWorkers groups ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Start starts every worker. If one fails, the workers already started are
// stopped and the error is returned.
func (w *Workers) Start(ctx context.Context) error {
	for w.started < len(w.workers) {
		idx := w.started
		if err := w.workers[idx].Start(ctx); err != nil {
			w.Stop()
			return fmt.Errorf("error starting worker %d: %w", idx, err)
		}
		w.started++
	}

	return nil
}

// Stop stops the started workers, last started first.
func (w *Workers) Stop() {
	for i := w.started - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.started = 0
}
