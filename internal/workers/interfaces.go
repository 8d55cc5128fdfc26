// Package workers runs long-lived background jobs side by side.
package workers

import "context"

// Worker is a job that blocks until its work is done or ctx is cancelled.
type Worker interface {
	Run(ctx context.Context) error
}
