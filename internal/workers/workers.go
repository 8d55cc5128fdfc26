package workers

import (
	"context"
	"errors"
	"sync"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine, waits for all of them and
// returns their errors joined.
func (w *Workers) Run(ctx context.Context) error {
	errs := make([]error, len(w.workers))

	var wg sync.WaitGroup
	for i, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = worker.Run(ctx)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}
