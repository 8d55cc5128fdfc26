package service

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-notes-api-tests/internal/restclient"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

// NotesService is a facade with one method per Notes API endpoint.
//
// Every method sends exactly one request. The trailing options are applied
// after the method's own defaults, so [restclient.Expect] overrides the
// expected status. A Response is returned whenever the server answered,
// even when err reports a status mismatch, so callers can assert on the
// message.
//
// The session token is attached as the x-auth-token header whenever it is
// non-empty. A single instance is not meant to run requests concurrently.
type NotesService interface {
	// Token returns the current session token, or "".
	Token() string
	// SetToken replaces the session token. An empty token sends no header.
	SetToken(token string)

	// HealthCheck calls GET health-check.
	HealthCheck(ctx context.Context, opts ...restclient.Option) (models.MessageResponse, error)

	// Register calls POST users/register; expects 201.
	Register(ctx context.Context, req models.RegisterRequest, opts ...restclient.Option) (models.Response[models.User], error)
	// Login calls POST users/login and keeps the returned token when the
	// server answered 200.
	Login(ctx context.Context, creds models.Credentials, opts ...restclient.Option) (models.Response[models.Session], error)
	// Profile calls GET users/profile.
	Profile(ctx context.Context, opts ...restclient.Option) (models.Response[models.User], error)
	// UpdateProfile calls PATCH users/profile.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate, opts ...restclient.Option) (models.Response[models.User], error)
	// ForgotPassword calls POST users/forgot-password.
	ForgotPassword(ctx context.Context, email string, opts ...restclient.Option) (models.MessageResponse, error)
	// VerifyResetPasswordToken calls POST users/verify-reset-password-token.
	VerifyResetPasswordToken(ctx context.Context, token string, opts ...restclient.Option) (models.MessageResponse, error)
	// ResetPassword calls POST users/reset-password.
	ResetPassword(ctx context.Context, token, newPassword string, opts ...restclient.Option) (models.MessageResponse, error)
	// ChangePassword calls POST users/change-password.
	ChangePassword(ctx context.Context, currentPassword, newPassword string, opts ...restclient.Option) (models.MessageResponse, error)
	// Logout calls DELETE users/logout and forgets the token on 200.
	Logout(ctx context.Context, opts ...restclient.Option) (models.MessageResponse, error)
	// DeleteAccount calls DELETE users/delete-account and forgets the token on 200.
	DeleteAccount(ctx context.Context, opts ...restclient.Option) (models.MessageResponse, error)

	// CreateNote calls POST notes.
	CreateNote(ctx context.Context, note models.NoteInput, opts ...restclient.Option) (models.Response[models.Note], error)
	// Notes calls GET notes.
	Notes(ctx context.Context, opts ...restclient.Option) (models.Response[[]models.Note], error)
	// Note calls GET notes/{id}.
	Note(ctx context.Context, id string, opts ...restclient.Option) (models.Response[models.Note], error)
	// UpdateNote calls PUT notes/{id}.
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate, opts ...restclient.Option) (models.Response[models.Note], error)
	// SetNoteCompleted calls PATCH notes/{id}.
	SetNoteCompleted(ctx context.Context, id string, completed bool, opts ...restclient.Option) (models.Response[models.Note], error)
	// DeleteNote calls DELETE notes/{id}.
	DeleteNote(ctx context.Context, id string, opts ...restclient.Option) (models.MessageResponse, error)
}
