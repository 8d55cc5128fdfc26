package validators

import (
	"context"

	"github.com/MKhiriev/go-notes-api-tests/models"
)

// Field names accepted by [UserValidator.Validate] to restrict checks.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPhone           = "phone"
	FieldCompany         = "company"
	FieldToken           = "token"
	FieldNewPassword     = "newPassword"
	FieldCurrentPassword = "currentPassword"
)

// ResetRequest is the body of forgot-password, verify-reset-password-token
// and reset-password. Which fields are checked is chosen by the caller.
type ResetRequest struct {
	Email       string
	Token       string
	NewPassword string
}

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value)
	case *models.RegisterRequest:
		return v.validateRegister(*value)

	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value)

	case models.PasswordChange:
		return v.validatePasswordChange(value)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value)

	case ResetRequest:
		return v.validateResetRequest(value, fields...)
	case *ResetRequest:
		return v.validateResetRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest) error {
	if !lengthBetween(req.Name, minNameLength, maxNameLength) {
		return ErrInvalidName
	}
	if !validEmail(req.Email) {
		return ErrInvalidEmail
	}
	if !lengthBetween(req.Password, minPasswordLength, maxPasswordLength) {
		return ErrInvalidPassword
	}
	return nil
}

func (v *UserValidator) validateCredentials(creds models.Credentials) error {
	if !validEmail(creds.Email) {
		return ErrInvalidEmail
	}
	if !lengthBetween(creds.Password, minPasswordLength, maxPasswordLength) {
		return ErrInvalidPassword
	}
	return nil
}

func (v *UserValidator) validateProfileUpdate(update models.ProfileUpdate) error {
	if !lengthBetween(update.Name, minNameLength, maxNameLength) {
		return ErrInvalidName
	}
	if update.Phone != "" && !validPhone(update.Phone) {
		return ErrInvalidPhone
	}
	if update.Company != "" && !lengthBetween(update.Company, minCompanyLength, maxCompanyLength) {
		return ErrInvalidCompany
	}
	return nil
}

// validatePasswordChange checks the lengths first, then that the new
// password differs. Whether the current password is correct is up to the
// caller.
func (v *UserValidator) validatePasswordChange(change models.PasswordChange) error {
	if !lengthBetween(change.CurrentPassword, minPasswordLength, maxPasswordLength) {
		return ErrInvalidCurrentPassword
	}
	if !lengthBetween(change.NewPassword, minPasswordLength, maxPasswordLength) {
		return ErrInvalidNewPassword
	}
	if change.CurrentPassword == change.NewPassword {
		return ErrSamePassword
	}
	return nil
}

func (v *UserValidator) validateResetRequest(req ResetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldNewPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if !validEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldToken:
			if !validToken(req.Token) {
				return ErrInvalidToken
			}
		case FieldNewPassword:
			if !lengthBetween(req.NewPassword, minPasswordLength, maxPasswordLength) {
				return ErrInvalidPassword
			}
		}
	}
	return nil
}
