package utils

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	// TokenLength is the length of session and password-reset tokens.
	TokenLength = 64
	// ObjectIDLength is the length of user and note identifiers.
	ObjectIDLength = 24
)

// NewToken returns a random 64-character lowercase hex string.
func NewToken() string {
	return randomHex(TokenLength / 2)
}

// NewObjectID returns a random 24-character lowercase hex identifier.
func NewObjectID() string {
	return randomHex(ObjectIDLength / 2)
}

// IsObjectID reports whether s looks like an identifier produced by
// [NewObjectID]: exactly 24 hex digits, either case.
func IsObjectID(s string) bool {
	if len(s) != ObjectIDLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
