package smoke

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
)

// Job runs the scenario and prints each report. With a zero interval it runs
// once; otherwise it repeats until ctx is done.
type Job struct {
	runner   *Runner
	interval time.Duration
	out      io.Writer

	logger *logger.Logger
}

func NewJob(runner *Runner, interval time.Duration, out io.Writer, log *logger.Logger) *Job {
	if log == nil {
		log = logger.Nop()
	}
	return &Job{
		runner:   runner,
		interval: interval,
		out:      out,
		logger:   log,
	}
}

// Run implements workers.Worker. It returns [ErrScenarioFailed] when the
// last completed run failed.
func (j *Job) Run(ctx context.Context) error {
	ok := j.runOnce(ctx)
	if j.interval <= 0 {
		return scenarioError(ok)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("smoke job stopped")
			return scenarioError(ok)
		case <-ticker.C:
			ok = j.runOnce(ctx)
		}
	}
}

func (j *Job) runOnce(ctx context.Context) bool {
	results := j.runner.Run(ctx)
	if err := Print(j.out, results); err != nil {
		j.logger.Err(err).Msg("error printing smoke report")
	}

	j.logger.Info().
		Bool("ok", results.OK()).
		Int("failures", results.Failures).
		Dur("duration", results.Duration).
		Msg("smoke run finished")
	return results.OK()
}

func scenarioError(ok bool) error {
	if ok {
		return nil
	}
	return ErrScenarioFailed
}
