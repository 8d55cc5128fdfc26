package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-api-tests/models"
	"github.com/stretchr/testify/assert"
)

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestUserValidator_Register(t *testing.T) {
	valid := models.RegisterRequest{Name: "test_rest_api", Email: "user@example.com", Password: "secret1"}

	tests := []struct {
		name   string
		modify func(*models.RegisterRequest)
		want   error
	}{
		{name: "valid", modify: func(*models.RegisterRequest) {}},
		{name: "short name", modify: func(r *models.RegisterRequest) { r.Name = "abc" }, want: ErrInvalidName},
		{name: "long name", modify: func(r *models.RegisterRequest) { r.Name = strings.Repeat("a", 31) }, want: ErrInvalidName},
		{name: "bad email", modify: func(r *models.RegisterRequest) { r.Email = "not-an-email" }, want: ErrInvalidEmail},
		{name: "email without tld", modify: func(r *models.RegisterRequest) { r.Email = "user@localhost" }, want: ErrInvalidEmail},
		{name: "display-name email", modify: func(r *models.RegisterRequest) { r.Email = "User <user@example.com>" }, want: ErrInvalidEmail},
		{name: "short password", modify: func(r *models.RegisterRequest) { r.Password = "pwd" }, want: ErrInvalidPassword},
		{name: "name checked first", modify: func(r *models.RegisterRequest) { r.Name = ""; r.Email = "" }, want: ErrInvalidName},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.modify(&req)
			err := v.Validate(context.Background(), &req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestUserValidator_Credentials(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "invalid@email.com", Password: "secret1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: "", Password: "secret1"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: "a@b.io", Password: "123"}), ErrInvalidPassword)
}

func TestUserValidator_ProfileUpdate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ProfileUpdate{Name: "test_rest_api", Phone: "0800208020", Company: "hillel IT school"}))
	assert.NoError(t, v.Validate(ctx, models.ProfileUpdate{Name: "test_rest_api"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{Name: "ab"}), ErrInvalidName)
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{Name: "test_rest_api", Phone: "1234"}), ErrInvalidPhone)
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{Name: "test_rest_api", Phone: "+380800208020"}), ErrInvalidPhone)
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileUpdate{Name: "test_rest_api", Company: "IT"}), ErrInvalidCompany)
}

func TestUserValidator_PasswordChange(t *testing.T) {
	tests := []struct {
		name   string
		change models.PasswordChange
		want   error
	}{
		{name: "valid", change: models.PasswordChange{CurrentPassword: "secret1", NewPassword: "secret2"}},
		{name: "cut current", change: models.PasswordChange{CurrentPassword: "pwd", NewPassword: "secret2"}, want: ErrInvalidCurrentPassword},
		{name: "cut new", change: models.PasswordChange{CurrentPassword: "secret1", NewPassword: "pwd"}, want: ErrInvalidNewPassword},
		{name: "identical", change: models.PasswordChange{CurrentPassword: "secret1", NewPassword: "secret1"}, want: ErrSamePassword},
		{name: "both cut reports current", change: models.PasswordChange{CurrentPassword: "a", NewPassword: "b"}, want: ErrInvalidCurrentPassword},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.change)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserValidator_ResetRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()
	token := strings.Repeat("ab", 32)

	assert.NoError(t, v.Validate(ctx, ResetRequest{Token: token, NewPassword: "secret2"}))
	assert.ErrorIs(t, v.Validate(ctx, ResetRequest{Token: "8bb383368052433799da088796d5d0aba0312d2ebb3446bca983d39", NewPassword: "secret2"}), ErrInvalidToken)
	assert.ErrorIs(t, v.Validate(ctx, ResetRequest{Token: token, NewPassword: "pwd"}), ErrInvalidPassword)

	assert.NoError(t, v.Validate(ctx, &ResetRequest{Token: token}, FieldToken))
	assert.NoError(t, v.Validate(ctx, ResetRequest{Email: "user@example.com"}, FieldEmail))
	assert.ErrorIs(t, v.Validate(ctx, ResetRequest{Email: "nope"}, FieldEmail), ErrInvalidEmail)
}

func TestValidationErrors_CarryAPIMessages(t *testing.T) {
	assert.Equal(t, "Token must be between 64 characters", ErrInvalidToken.Error())
	assert.Equal(t, "Note ID must be a valid ID", ErrInvalidNoteID.Error())
	assert.False(t, IsValidationError(ErrUnsupportedType))
	assert.False(t, IsValidationError(nil))
}
