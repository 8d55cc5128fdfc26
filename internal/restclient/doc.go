// Package restclient is a thin wrapper around resty that sends one request
// per call to the Notes API and checks the returned HTTP status against the
// expected set.
//
// Every response body is decoded into an [Envelope]. A status outside the
// expected set is never reported as success: the call returns the [Result]
// together with a [*StatusMismatchError] so callers can still inspect the
// message the server sent.
package restclient
