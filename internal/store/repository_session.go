package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/utils"
)

type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, userID string) (string, error) {
	token := utils.NewToken()

	query, args, err := insertSessionQuery(token, userID, r.db.Now())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return token, nil
}

func (r *sessionRepository) FindUserIDByToken(ctx context.Context, token string) (string, error) {
	query, args, err := builder.Select("user_id").From("sessions").Where(sq.Eq{"token": token}).ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUserID(ctx, query, args, ErrSessionNotFound)
}

func (r *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	return r.delete(ctx, "sessions", token, ErrSessionNotFound)
}

func (r *sessionRepository) CreateResetToken(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token := utils.NewToken()

	query, args, err := insertResetTokenQuery(token, userID, r.db.Now().Add(ttl))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.CreateResetToken").Msg("error inserting reset token")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return token, nil
}

func (r *sessionRepository) FindUserIDByResetToken(ctx context.Context, token string) (string, error) {
	query, args, err := selectResetTokenQuery(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		userID    string
		expiresAt time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&userID, &expiresAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrResetTokenNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.FindUserIDByResetToken").Msg("error scanning reset token")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if !r.db.Now().Before(expiresAt) {
		return "", ErrResetTokenNotFound
	}
	return userID, nil
}

func (r *sessionRepository) DeleteResetToken(ctx context.Context, token string) error {
	return r.delete(ctx, "reset_tokens", token, ErrResetTokenNotFound)
}

func (r *sessionRepository) scanUserID(ctx context.Context, query string, args []any, notFound error) (string, error) {
	var userID string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&userID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", notFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.scanUserID").Msg("error scanning user id")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return userID, nil
}

func (r *sessionRepository) delete(ctx context.Context, table, token string, notFound error) error {
	query, args, err := deleteQuery(table, sq.Eq{"token": token})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.delete").Str("table", table).Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound
	}
	return nil
}
