package restclient

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMismatchError_Error(t *testing.T) {
	err := &StatusMismatchError{
		Method:   http.MethodGet,
		Path:     "notes/abc",
		Expected: []int{200, 404},
		Actual:   400,
		Message:  "Note ID must be a valid ID",
	}
	assert.Equal(t, "GET notes/abc: unexpected status 400 (expected 200 or 404): Note ID must be a valid ID", err.Error())

	err.Message = ""
	assert.Equal(t, "GET notes/abc: unexpected status 400 (expected 200 or 404)", err.Error())
}

func TestStatusMismatchError_Unwrap(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := error(&StatusMismatchError{Actual: tt.status, Expected: []int{200}})
			assert.ErrorIs(t, err, ErrUnexpectedStatus)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestStatusMismatchError_UnwrapUnmappedStatus(t *testing.T) {
	err := error(&StatusMismatchError{Actual: http.StatusTeapot, Expected: []int{200}})
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	for _, sentinel := range []error{ErrBadRequest, ErrNotFound, ErrConflict} {
		assert.False(t, errors.Is(err, sentinel))
	}
	// 200 was expected but 201 came back: still a mismatch.
	created := error(&StatusMismatchError{Actual: http.StatusCreated, Expected: []int{200}})
	assert.ErrorIs(t, created, ErrUnexpectedStatus)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://practice.expandtesting.com/notes/api", want: "https://practice.expandtesting.com/notes/api"},
		{name: "trailing slash", raw: "https://practice.expandtesting.com/notes/api/", want: "https://practice.expandtesting.com/notes/api"},
		{name: "no scheme", raw: "localhost:3000", want: "http://localhost:3000"},
		{name: "whitespace", raw: "  http://127.0.0.1:3000/  ", want: "http://127.0.0.1:3000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBaseURL)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
