package smoke

import "time"

// StepStatus is the outcome of one scenario step.
type StepStatus string

const (
	StepPassed  StepStatus = "PASS"
	StepFailed  StepStatus = "FAIL"
	StepSkipped StepStatus = "SKIP"
)

// StepResult records a single step.
type StepResult struct {
	Name     string
	Status   StepStatus
	Duration time.Duration
	Err      error
}

// Results is one run of the scenario.
type Results struct {
	Target   string
	Started  time.Time
	Duration time.Duration
	Steps    []StepResult
	Failures int
}

// OK reports whether at least one step ran and none failed.
func (r Results) OK() bool {
	return len(r.Steps) > 0 && r.Failures == 0
}

// Passed counts the steps that passed.
func (r Results) Passed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == StepPassed {
			n++
		}
	}
	return n
}
