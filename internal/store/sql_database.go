package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
	now    func() time.Time
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Now returns the current time in UTC with millisecond precision.
func (db *DB) Now() time.Time {
	now := time.Now
	if db.now != nil {
		now = db.now
	}
	return now().UTC().Truncate(time.Millisecond)
}
