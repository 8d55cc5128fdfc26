// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Response is the envelope every Notes API endpoint answers with.
//
// Data is typed by the caller. Error responses carry no data, in which case
// Data keeps its zero value and only Status and Message are meaningful.
type Response[T any] struct {
	// Success reports whether the service considered the call successful.
	Success bool `json:"success"`

	// Status mirrors the HTTP status code of the response.
	Status int `json:"status"`

	// Message is a human-readable outcome, e.g. "Note successfully created".
	Message string `json:"message"`

	// Data is the endpoint-specific payload.
	Data T `json:"data"`
}

// MessageResponse is a [Response] whose payload is irrelevant or absent.
type MessageResponse = Response[json.RawMessage]
