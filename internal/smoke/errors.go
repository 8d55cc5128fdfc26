package smoke

import "errors"

var (
	// ErrScenarioFailed is returned by [Job.Run] when the last scenario run
	// had a failing step.
	ErrScenarioFailed = errors.New("smoke scenario failed")

	// ErrUnexpectedData reports a step whose response did not carry what the
	// step asked for.
	ErrUnexpectedData = errors.New("unexpected response data")
)
