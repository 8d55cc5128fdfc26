package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
)

// Storages bundles the repositories of the stub service over one database.
type Storages struct {
	DB                *DB
	UserRepository    UserRepository
	SessionRepository SessionRepository
	NoteRepository    NoteRepository
}

// NewStorages connects to dsn, applies the schema and builds the
// repositories.
func NewStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		DB:                db,
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		NoteRepository:    NewNoteRepository(db, log),
	}, nil
}

// Close releases the database.
func (s *Storages) Close() error {
	return s.DB.Close()
}
