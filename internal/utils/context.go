// Package utils provides general-purpose helper utilities used by the stub
// service, the fixtures and the smoke command: type-safe context keys, JSON
// response writing, random identifiers and unique test e-mail addresses.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user identifier (24 hex chars).
	//
	//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, user.ID)
	UserIDCtxKey = contextKey("userID")

	// TokenCtxKey stores the x-auth-token the request was authenticated with.
	TokenCtxKey = contextKey("token")

	// TraceIDCtxKey stores the per-request trace identifier.
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  - value is found, is a string and is not empty
//   - ok == false - value is missing, empty or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, UserIDCtxKey)
}

// GetTokenFromContext retrieves the session token from the context.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, TokenCtxKey)
}

// GetTraceIDFromContext retrieves the trace identifier from the context.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, TraceIDCtxKey)
}

func stringFromContext(ctx context.Context, key contextKey) (string, bool) {
	value, ok := ctx.Value(key).(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
