package stub

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-api-tests/internal/app"
	"github.com/MKhiriev/go-notes-api-tests/internal/store"
	"github.com/MKhiriev/go-notes-api-tests/internal/validators"
)

func TestFailureFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"no token", ErrNoToken, http.StatusUnauthorized, app.MsgNoToken},
		{"wrapped conflict", fmt.Errorf("create: %w", store.ErrEmailAlreadyExists), http.StatusConflict, app.MsgEmailAlreadyExists},
		{"note not found", store.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},
		{"unknown session", store.ErrSessionNotFound, http.StatusUnauthorized, app.MsgTokenInvalid},
		{"expired reset token", store.ErrResetTokenNotFound, http.StatusUnauthorized, app.MsgInvalidResetToken},
		{"incorrect password", ErrIncorrectPassword, http.StatusBadRequest, app.MsgIncorrectPassword},
		{"invalid body", errors.Join(ErrInvalidRequestBody, errors.New("eof")), http.StatusBadRequest, app.MsgInvalidRequestBody},
		{"validation", validators.ErrInvalidTitle, http.StatusBadRequest, app.MsgInvalidTitle},
		{"storage failure", fmt.Errorf("%w: disk", store.ErrExecutingStatement), http.StatusInternalServerError, app.MsgInternalError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := failureFromError(tt.err)
			assert.Equal(t, tt.wantStatus, got.status)
			assert.Equal(t, tt.wantMessage, got.message)
		})
	}
}
