package config

import "errors"

// Validation errors returned by the config views when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates a missing base URL or request timeout.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidTarget indicates a suite target other than "stub" or "remote".
	ErrInvalidTarget = errors.New("invalid suite target")
	// ErrMissingCredentials indicates that EMAIL or PASSWORD is empty while
	// the remote service is targeted.
	ErrMissingCredentials = errors.New("missing test account credentials")
	// ErrInvalidStubConfigs indicates an empty stub address or DSN.
	ErrInvalidStubConfigs = errors.New("invalid stub configuration")
)
