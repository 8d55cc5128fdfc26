package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-api-tests/models"
)

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser stores user, assigning ID and CreatedAt when empty.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// DeleteUser removes the account together with its sessions, reset
	// tokens and notes.
	DeleteUser(ctx context.Context, id string) error
}

// SessionRepository persists login sessions and password reset tokens.
type SessionRepository interface {
	// CreateSession issues a new 64-hex session token for userID.
	CreateSession(ctx context.Context, userID string) (string, error)
	FindUserIDByToken(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, token string) error

	// CreateResetToken issues a 64-hex reset token valid for ttl.
	CreateResetToken(ctx context.Context, userID string, ttl time.Duration) (string, error)
	// FindUserIDByResetToken returns [ErrResetTokenNotFound] for unknown and
	// expired tokens alike.
	FindUserIDByResetToken(ctx context.Context, token string) (string, error)
	DeleteResetToken(ctx context.Context, token string) error
}

// NoteRepository persists notes. Every method is scoped to the owning user.
type NoteRepository interface {
	// CreateNote stores note, assigning ID and timestamps.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	FindNote(ctx context.Context, userID, id string) (models.Note, error)
	// UpdateNote overwrites title, description, category and completed.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	SetCompleted(ctx context.Context, userID, id string, completed bool) (models.Note, error)
	DeleteNote(ctx context.Context, userID, id string) error
}
