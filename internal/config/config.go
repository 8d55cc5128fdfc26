// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Target values accepted by [Suite.Target].
const (
	// TargetStub runs against an in-process stub of the Notes API.
	TargetStub = "stub"
	// TargetRemote runs against [API.BaseURL].
	TargetRemote = "remote"
)

// Defaults applied by [GetStructuredConfig] to fields left empty by every source.
const (
	DefaultBaseURL        = "https://practice.expandtesting.com/notes/api"
	DefaultRequestTimeout = 30 * time.Second
	DefaultStubAddress    = "localhost:3000"
	DefaultStubDSN        = ":memory:"
	DefaultLogLevel       = "info"
	DefaultDotEnvPath     = ".env"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from a .env
// file, environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the address and timeout of the Notes API under test.
	API API `envPrefix:"API_"`

	// Credentials holds the test account parameters. The variables carry no
	// prefix: EMAIL, NEW_EMAIL, PASSWORD, NEW_PASSWORD.
	Credentials Credentials

	// Suite selects what the suite and the smoke command run against.
	Suite Suite `envPrefix:"SUITE_"`

	// Stub holds settings of the stand-in Notes API service.
	Stub Stub `envPrefix:"STUB_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file that was loaded, if any.
	DotEnvPath string `env:"DOTENV"`
}

// API holds network settings used by the REST client.
type API struct {
	// BaseURL is the root of the Notes API, e.g.
	// "https://practice.expandtesting.com/notes/api".
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Credentials holds the e-mail/password pairs the test cases log in with.
type Credentials struct {
	// Email is an existing account named "test_rest_api".
	// Env: EMAIL
	Email string `env:"EMAIL"`

	// NewEmail is used to register a throwaway account. When empty a unique
	// address is generated per registration.
	// Env: NEW_EMAIL
	NewEmail string `env:"NEW_EMAIL"`

	// Password is the password of Email (and of registered throwaway accounts).
	// Env: PASSWORD
	Password string `env:"PASSWORD"`

	// NewPassword is a valid password different from Password.
	// Env: NEW_PASSWORD
	NewPassword string `env:"NEW_PASSWORD"`
}

// Suite selects the run target.
type Suite struct {
	// Target is either [TargetStub] or [TargetRemote].
	// Env: SUITE_TARGET
	Target string `env:"TARGET"`

	// SmokeInterval makes the smoke command repeat its scenario. Zero runs
	// it once.
	// Env: SUITE_SMOKE_INTERVAL
	SmokeInterval time.Duration `env:"SMOKE_INTERVAL"`
}

// Stub holds settings of the stand-in Notes API service.
type Stub struct {
	// Address is the "host:port" the stub command listens on.
	// Env: STUB_ADDRESS
	Address string `env:"ADDRESS"`

	// DSN is the SQLite data source; ":memory:" keeps everything in RAM.
	// Env: STUB_DATABASE_DSN
	DSN string `env:"DATABASE_DSN"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (last source wins for non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags parsed from args (without the program name)
//  4. JSON file (path resolved from sources 1-3)
//
// Fields that remain empty are filled from the package defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Suite: Suite{Target: TargetStub},
		Stub: Stub{
			Address: DefaultStubAddress,
			DSN:     DefaultStubDSN,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
