// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	ErrNoHandler    = errors.New("no http handler is set")
	ErrNoAddress    = errors.New("no listen address is set")
	ErrListen       = errors.New("error listening on address")
	ErrServe        = errors.New("error serving http")
	ErrShutdownHTTP = errors.New("error shutting down http server")
)
