package config

import "fmt"

// StubConfig is the view used by the notes-stub command.
type StubConfig struct {
	// Address is the "host:port" to listen on.
	Address string
	// DSN is the SQLite data source.
	DSN string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// GetStubConfig builds and validates a [StubConfig] from the merged
// structured configuration.
func GetStubConfig(args []string) (*StubConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubConfig{
		Address:  cfg.Stub.Address,
		DSN:      cfg.Stub.DSN,
		LogLevel: cfg.Log.Level,
	}

	if err = stubCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating stub config: %w", err)
	}

	return stubCfg, nil
}
