package smoke

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	results := Results{
		Target:   "stub",
		Duration: 1500 * time.Millisecond,
		Steps: []StepResult{
			{Name: "health check", Status: StepPassed, Duration: 12 * time.Millisecond},
			{Name: "login", Status: StepFailed, Duration: 30 * time.Millisecond, Err: errors.New("unexpected status 401")},
			{Name: "profile", Status: StepSkipped},
		},
		Failures: 1,
	}

	report := Report(results)

	for _, want := range []string{
		"Notes API smoke: stub",
		"PASS", "FAIL", "SKIP",
		"health check", "login", "profile",
		"unexpected status 401",
		"FAILED", "1/3 passed in 1.5s",
	} {
		assert.Contains(t, report, want)
	}
}

func TestReport_OK(t *testing.T) {
	report := Report(Results{
		Target: "remote",
		Steps:  []StepResult{{Name: "health check", Status: StepPassed}},
	})

	assert.Contains(t, report, "OK")
	assert.NotContains(t, report, "FAILED")
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Print(&buf, Results{Target: "stub"}))

	assert.Contains(t, buf.String(), "Notes API smoke: stub")
}
