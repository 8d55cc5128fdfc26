package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/models"
	"github.com/stretchr/testify/require"
)

// newTestStorages opens a migrated in-memory database.
func newTestStorages(t *testing.T) *Storages {
	t.Helper()
	s, err := NewStorages(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// newMockDB wraps sqlmock in a *DB with a fixed clock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	fixed := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	return &DB{DB: conn, logger: logger.Nop(), now: func() time.Time { return fixed }}, mock
}

func createTestUser(t *testing.T, s *Storages, email string) models.User {
	t.Helper()
	user, err := s.UserRepository.CreateUser(context.Background(), models.User{
		Name:         "test_rest_api",
		Email:        email,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

