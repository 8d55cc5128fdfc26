package validators

import (
	"errors"

	"github.com/MKhiriev/go-notes-api-tests/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidName            = errors.New(app.MsgInvalidName)
	ErrInvalidEmail           = errors.New(app.MsgInvalidEmail)
	ErrInvalidPassword        = errors.New(app.MsgInvalidPassword)
	ErrInvalidPhone           = errors.New(app.MsgInvalidPhone)
	ErrInvalidCompany         = errors.New(app.MsgInvalidCompany)
	ErrInvalidToken           = errors.New(app.MsgInvalidToken)
	ErrInvalidCurrentPassword = errors.New(app.MsgInvalidCurrentPassword)
	ErrInvalidNewPassword     = errors.New(app.MsgInvalidNewPassword)
	ErrSamePassword           = errors.New(app.MsgSamePassword)
	ErrInvalidTitle           = errors.New(app.MsgInvalidTitle)
	ErrInvalidDescription     = errors.New(app.MsgInvalidDescription)
	ErrInvalidCategory        = errors.New(app.MsgInvalidCategory)
	ErrInvalidCompleted       = errors.New(app.MsgInvalidCompleted)
	ErrInvalidNoteID          = errors.New(app.MsgInvalidNoteID)
)

// IsValidationError reports whether err is a rule violation (as opposed to
// [ErrUnsupportedType] or an unrelated failure).
func IsValidationError(err error) bool {
	for _, known := range []error{
		ErrInvalidName, ErrInvalidEmail, ErrInvalidPassword, ErrInvalidPhone,
		ErrInvalidCompany, ErrInvalidToken, ErrInvalidCurrentPassword,
		ErrInvalidNewPassword, ErrSamePassword, ErrInvalidTitle,
		ErrInvalidDescription, ErrInvalidCategory, ErrInvalidCompleted,
		ErrInvalidNoteID,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
