package config

import (
	"fmt"
	"time"
)

// SuiteConfig is the view used by the e2e tests, the fixtures and the smoke
// command.
type SuiteConfig struct {
	// API contains the base URL and request timeout of the Notes API.
	API API
	// Credentials contains the test account parameters.
	Credentials Credentials
	// Target is [TargetStub] or [TargetRemote].
	Target string
	// SmokeInterval repeats the smoke scenario; zero runs it once.
	SmokeInterval time.Duration
	// LogLevel is the zerolog level name.
	LogLevel string
}

// GetSuiteConfig builds and validates a [SuiteConfig] from the merged
// structured configuration. args are the command-line arguments without
// the program name.
func GetSuiteConfig(args []string) (*SuiteConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	suiteCfg := &SuiteConfig{
		API:           cfg.API,
		Credentials:   cfg.Credentials,
		Target:        cfg.Suite.Target,
		SmokeInterval: cfg.Suite.SmokeInterval,
		LogLevel:      cfg.Log.Level,
	}

	if err = suiteCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating suite config: %w", err)
	}

	return suiteCfg, nil
}

// Remote reports whether the suite targets the remote service.
func (cfg *SuiteConfig) Remote() bool {
	return cfg.Target == TargetRemote
}
