package stub

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-api-tests/internal/app"
	"github.com/MKhiriev/go-notes-api-tests/internal/store"
	"github.com/MKhiriev/go-notes-api-tests/internal/validators"
)

type failure struct {
	status  int
	message string
}

var errorFailureMap = map[error]failure{
	ErrNoToken:            {http.StatusUnauthorized, app.MsgNoToken},
	ErrTokenInvalid:       {http.StatusUnauthorized, app.MsgTokenInvalid},
	ErrIncorrectLogin:     {http.StatusUnauthorized, app.MsgIncorrectLogin},
	ErrNoAccountForEmail:  {http.StatusUnauthorized, app.MsgNoAccountForEmail},
	ErrInvalidResetToken:  {http.StatusUnauthorized, app.MsgInvalidResetToken},
	ErrIncorrectPassword:  {http.StatusBadRequest, app.MsgIncorrectPassword},
	ErrInvalidRequestBody: {http.StatusBadRequest, app.MsgInvalidRequestBody},

	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrNoteNotFound:       {http.StatusNotFound, app.MsgNoteNotFound},
	store.ErrSessionNotFound:    {http.StatusUnauthorized, app.MsgTokenInvalid},
	store.ErrResetTokenNotFound: {http.StatusUnauthorized, app.MsgInvalidResetToken},
	store.ErrUserNotFound:       {http.StatusUnauthorized, app.MsgTokenInvalid},
}

// failureFromError maps err to the status and message of an error envelope.
// Validation errors carry their own message; anything unknown is a 500.
func failureFromError(err error) failure {
	for target, f := range errorFailureMap {
		if errors.Is(err, target) {
			return f
		}
	}
	if validators.IsValidationError(err) {
		return failure{http.StatusBadRequest, err.Error()}
	}
	return failure{http.StatusInternalServerError, app.MsgInternalError}
}
