// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stub

import (
	"errors"

	"github.com/MKhiriev/go-notes-api-tests/internal/app"
)

// Errors raised by the handlers themselves. Their text is the message
// returned to the caller.
var (
	ErrNoToken            = errors.New(app.MsgNoToken)
	ErrTokenInvalid       = errors.New(app.MsgTokenInvalid)
	ErrIncorrectLogin     = errors.New(app.MsgIncorrectLogin)
	ErrIncorrectPassword  = errors.New(app.MsgIncorrectPassword)
	ErrNoAccountForEmail  = errors.New(app.MsgNoAccountForEmail)
	ErrInvalidResetToken  = errors.New(app.MsgInvalidResetToken)
	ErrInvalidRequestBody = errors.New(app.MsgInvalidRequestBody)
)
