package restclient

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnexpectedStatus is matched by every [*StatusMismatchError].
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrDecodeResponse means the status matched but the body is not a JSON
	// envelope.
	ErrDecodeResponse = errors.New("error decoding response envelope")
	// ErrInvalidBaseURL is returned by [New] for an empty or host-less URL.
	ErrInvalidBaseURL = errors.New("invalid base url")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// StatusMismatchError reports a response whose status is not in the
// expected set.
type StatusMismatchError struct {
	Method   string
	Path     string
	Expected []int
	Actual   int
	// Message is the envelope message, or the trimmed raw body when the
	// response was not an envelope.
	Message string
}

func (e *StatusMismatchError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, code := range e.Expected {
		expected[i] = strconv.Itoa(code)
	}

	msg := fmt.Sprintf("%s %s: unexpected status %d (expected %s)",
		e.Method, e.Path, e.Actual, strings.Join(expected, " or "))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap lets errors.Is match both [ErrUnexpectedStatus] and the sentinel of
// the actual status (for example [ErrNotFound]).
func (e *StatusMismatchError) Unwrap() []error {
	errs := []error{ErrUnexpectedStatus}
	if sentinel := sentinelForStatus(e.Actual); sentinel != nil {
		errs = append(errs, sentinel)
	}
	return errs
}
