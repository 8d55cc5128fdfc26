// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the merged [StructuredConfig] is self-consistent.
// Per-binary requirements are checked by the views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Suite.Target != "" && cfg.Suite.Target != TargetStub && cfg.Suite.Target != TargetRemote {
		return ErrInvalidTarget
	}

	return nil
}

func (cfg *SuiteConfig) validate() error {
	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	switch cfg.Target {
	case TargetStub:
	case TargetRemote:
		if cfg.Credentials.Email == "" || cfg.Credentials.Password == "" {
			return ErrMissingCredentials
		}
	default:
		return ErrInvalidTarget
	}

	return nil
}

func (cfg *StubConfig) validate() error {
	if cfg.Address == "" || cfg.DSN == "" {
		return ErrInvalidStubConfigs
	}

	return nil
}
