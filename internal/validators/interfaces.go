// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads received by the stub service
// against the rules the Notes API enforces.
//
// Every rule violation is reported as one of the sentinel errors in
// errors.go. The error text is the exact message the API answers with, so
// callers can put err.Error() straight into a 400 response. Rules are
// evaluated in a fixed order and the first violation wins.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
