package utils

import (
	"fmt"

	"github.com/google/uuid"
)

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// UniqueEmail returns "<prefix>+<uuid>@<domain>", unique per call.
func UniqueEmail(prefix, domain string) string {
	return fmt.Sprintf("%s+%s@%s", prefix, uuid.NewString(), domain)
}
