package models

import "time"

// User represents a Notes API account as returned by the profile endpoints.
type User struct {
	// ID is the server-assigned identifier (24 hex characters).
	ID string `json:"id"`

	// Name is the display name of the account.
	Name string `json:"name"`

	// Email is the unique login e-mail.
	Email string `json:"email"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// Company is an optional company name.
	Company string `json:"company,omitempty"`

	// PasswordHash is the bcrypt hash kept by the stub service. It never
	// leaves the process.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation time.
	CreatedAt time.Time `json:"-"`
}

// Session is the payload of a successful login: the account plus the
// session token to be sent in the x-auth-token header.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// RegisterRequest carries the fields of POST users/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials carries the fields of POST users/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries the fields of PATCH users/profile.
type ProfileUpdate struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// PasswordChange carries the fields of POST users/change-password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// PasswordReset carries the fields of POST users/reset-password.
type PasswordReset struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}
