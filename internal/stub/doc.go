// Package stub implements an in-process replica of the Notes REST API.
//
// It serves the same routes, envelopes and messages as the public service
// under [BasePath], keeps its state in SQLite through package store and
// captures password-reset tokens in a [Mailbox] instead of sending e-mails.
// The e2e suite runs against it by default; cmd/notes-stub serves it
// standalone.
package stub
